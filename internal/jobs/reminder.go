package jobs

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"resource-booker/internal/domain/booking"
	"resource-booker/internal/notify"
	"resource-booker/internal/pkg/clock"

	"github.com/google/uuid"
)

type BookingSource interface {
	ListAll() []*booking.Booking
}

// ReminderJob mails requesters whose confirmed bookings start within the
// reminder window. Each booking is reminded at most once per process
// lifetime, which matches the ledger's own lifetime.
type ReminderJob struct {
	source BookingSource
	mailer notify.Mailer
	clock  clock.Clock
	window time.Duration
	logger *slog.Logger

	mu   sync.Mutex
	sent map[uuid.UUID]struct{}
}

func NewReminderJob(source BookingSource, mailer notify.Mailer, clk clock.Clock, window time.Duration, logger *slog.Logger) *ReminderJob {
	return &ReminderJob{
		source: source,
		mailer: mailer,
		clock:  clk,
		window: window,
		logger: logger,
		sent:   make(map[uuid.UUID]struct{}),
	}
}

func (j *ReminderJob) Run() {
	now := j.clock.Now()
	ctx := context.Background()

	for _, b := range j.source.ListAll() {
		if b.Status() != booking.StatusConfirmed {
			continue
		}
		start := b.TimeSlot().Start()
		if !start.After(now) || start.Sub(now) > j.window {
			continue
		}
		if !j.markSent(b.ID()) {
			continue
		}

		if err := j.mailer.SendReminder(ctx, b); err != nil {
			j.logger.Warn("reminder mail failed",
				"booking_id", b.ID(), "recipient", b.Requester().UserEmail(), "error", err)
			j.unmarkSent(b.ID())
			continue
		}
		j.logger.Info("reminder sent",
			"booking_id", b.ID(), "starts_at", start)
	}
}

// markSent reports whether this call claimed the booking for reminding.
func (j *ReminderJob) markSent(id uuid.UUID) bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	if _, done := j.sent[id]; done {
		return false
	}
	j.sent[id] = struct{}{}
	return true
}

func (j *ReminderJob) unmarkSent(id uuid.UUID) {
	j.mu.Lock()
	defer j.mu.Unlock()
	delete(j.sent, id)
}
