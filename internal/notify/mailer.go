package notify

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"resource-booker/internal/domain/booking"
	"resource-booker/internal/pkg/config"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// NewMailer picks the SendGrid sender when an API key is configured and
// falls back to log-only delivery otherwise.
func NewMailer(cfg config.MailConfig, logger *slog.Logger) Mailer {
	if cfg.SendGridAPIKey == "" {
		logger.Info("no SendGrid API key configured, mail delivery is log-only")
		return &LogMailer{logger: logger}
	}
	return &SendGridMailer{cfg: cfg}
}

type SendGridMailer struct {
	cfg config.MailConfig
}

func (m *SendGridMailer) SendConfirmation(_ context.Context, b *booking.Booking) error {
	subject := fmt.Sprintf("Booking confirmed: %s", b.Title())
	body := fmt.Sprintf(
		"Hello %s,\n\nYour booking %q is confirmed from %s to %s.\n",
		b.Requester().UserName(), b.Title(),
		b.TimeSlot().Start().Format(time.RFC1123), b.TimeSlot().End().Format(time.RFC1123),
	)
	return m.send(b, subject, body)
}

func (m *SendGridMailer) SendCancellation(_ context.Context, b *booking.Booking) error {
	subject := fmt.Sprintf("Booking cancelled: %s", b.Title())
	body := fmt.Sprintf(
		"Hello %s,\n\nYour booking %q from %s to %s has been cancelled.\n",
		b.Requester().UserName(), b.Title(),
		b.TimeSlot().Start().Format(time.RFC1123), b.TimeSlot().End().Format(time.RFC1123),
	)
	return m.send(b, subject, body)
}

func (m *SendGridMailer) SendReminder(_ context.Context, b *booking.Booking) error {
	subject := fmt.Sprintf("Upcoming booking: %s", b.Title())
	body := fmt.Sprintf(
		"Hello %s,\n\nReminder: your booking %q starts at %s.\n",
		b.Requester().UserName(), b.Title(),
		b.TimeSlot().Start().Format(time.RFC1123),
	)
	return m.send(b, subject, body)
}

func (m *SendGridMailer) send(b *booking.Booking, subject, plainText string) error {
	from := mail.NewEmail(m.cfg.FromName, m.cfg.FromEmail)
	recipient := mail.NewEmail(b.Requester().UserName(), b.Requester().UserEmail())

	message := mail.NewSingleEmail(from, subject, recipient, plainText, "")

	client := sendgrid.NewSendClient(m.cfg.SendGridAPIKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

// LogMailer writes mail intents to the log instead of delivering them.
type LogMailer struct {
	logger *slog.Logger
}

func (m *LogMailer) SendConfirmation(_ context.Context, b *booking.Booking) error {
	m.logger.Info("confirmation mail",
		"booking_id", b.ID(), "recipient", b.Requester().UserEmail())
	return nil
}

func (m *LogMailer) SendCancellation(_ context.Context, b *booking.Booking) error {
	m.logger.Info("cancellation mail",
		"booking_id", b.ID(), "recipient", b.Requester().UserEmail())
	return nil
}

func (m *LogMailer) SendReminder(_ context.Context, b *booking.Booking) error {
	m.logger.Info("reminder mail",
		"booking_id", b.ID(), "recipient", b.Requester().UserEmail())
	return nil
}
