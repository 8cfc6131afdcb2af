package notify

import (
	"context"
	"log/slog"

	"resource-booker/internal/domain/booking"

	"github.com/google/uuid"
)

// StubCalendar stands in for the external Outlook integration. It fabricates
// correlation ids so the rest of the pipeline behaves as in production.
type StubCalendar struct {
	logger *slog.Logger
}

func NewStubCalendar(logger *slog.Logger) *StubCalendar {
	return &StubCalendar{logger: logger}
}

func (c *StubCalendar) CreateEvent(_ context.Context, b *booking.Booking) (string, error) {
	eventID := "outlook-" + uuid.NewString()
	c.logger.Info("calendar event created",
		"event_id", eventID, "booking_id", b.ID(), "slot", b.TimeSlot().String())
	return eventID, nil
}

func (c *StubCalendar) UpdateEvent(_ context.Context, eventID string, b *booking.Booking) error {
	c.logger.Info("calendar event updated",
		"event_id", eventID, "booking_id", b.ID(), "slot", b.TimeSlot().String())
	return nil
}

func (c *StubCalendar) DeleteEvent(_ context.Context, eventID string) error {
	c.logger.Info("calendar event deleted", "event_id", eventID)
	return nil
}
