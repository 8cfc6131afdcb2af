package notify

import (
	"context"
	"log/slog"

	"resource-booker/internal/domain/booking"

	"github.com/google/uuid"
)

// CalendarSink mirrors bookings into an external calendar. Implementations
// are collaborators outside the engine; every call is best-effort.
type CalendarSink interface {
	CreateEvent(ctx context.Context, b *booking.Booking) (string, error)
	UpdateEvent(ctx context.Context, eventID string, b *booking.Booking) error
	DeleteEvent(ctx context.Context, eventID string) error
}

type Mailer interface {
	SendConfirmation(ctx context.Context, b *booking.Booking) error
	SendCancellation(ctx context.Context, b *booking.Booking) error
	SendReminder(ctx context.Context, b *booking.Booking) error
}

// CalendarEventRecorder stores the external correlation id once the calendar
// sync has succeeded.
type CalendarEventRecorder interface {
	AttachCalendarEvent(id uuid.UUID, eventID string) error
}

// Dispatcher fans committed booking changes out to the calendar sink and the
// mailer. Failures are downgraded to warnings: the ledger has already
// committed and side effects must not unwind it.
type Dispatcher struct {
	calendar CalendarSink
	mailer   Mailer
	recorder CalendarEventRecorder
	logger   *slog.Logger
}

func NewDispatcher(calendar CalendarSink, mailer Mailer, recorder CalendarEventRecorder, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		calendar: calendar,
		mailer:   mailer,
		recorder: recorder,
		logger:   logger,
	}
}

func (d *Dispatcher) BookingCreated(ctx context.Context, b *booking.Booking) {
	eventID, err := d.calendar.CreateEvent(ctx, b)
	if err != nil {
		d.logger.Warn("calendar sync failed for new booking",
			"booking_id", b.ID(), "error", err)
	} else if err := d.recorder.AttachCalendarEvent(b.ID(), eventID); err != nil {
		d.logger.Warn("failed to record calendar event id",
			"booking_id", b.ID(), "event_id", eventID, "error", err)
	}

	if err := d.mailer.SendConfirmation(ctx, b); err != nil {
		d.logger.Warn("confirmation mail failed",
			"booking_id", b.ID(), "recipient", b.Requester().UserEmail(), "error", err)
	}
}

func (d *Dispatcher) BookingUpdated(ctx context.Context, b *booking.Booking) {
	if eventID := b.CalendarEventID(); eventID != "" {
		if err := d.calendar.UpdateEvent(ctx, eventID, b); err != nil {
			d.logger.Warn("calendar update failed",
				"booking_id", b.ID(), "event_id", eventID, "error", err)
		}
	}
}

func (d *Dispatcher) BookingCancelled(ctx context.Context, b *booking.Booking) {
	if eventID := b.CalendarEventID(); eventID != "" {
		if err := d.calendar.DeleteEvent(ctx, eventID); err != nil {
			d.logger.Warn("calendar delete failed",
				"booking_id", b.ID(), "event_id", eventID, "error", err)
		}
	}

	if err := d.mailer.SendCancellation(ctx, b); err != nil {
		d.logger.Warn("cancellation mail failed",
			"booking_id", b.ID(), "recipient", b.Requester().UserEmail(), "error", err)
	}
}
