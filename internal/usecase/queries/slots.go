package queries

import (
	"context"
	"time"

	"resource-booker/internal/domain/booking"
	"resource-booker/internal/pkg/config"
	"resource-booker/internal/pkg/errs"
)

type SlotQueries interface {
	GetAvailableSlots(ctx context.Context, resourceID string, date time.Time) ([]SlotView, error)
}

type slotQueriesImpl struct {
	bookings  BookingReadStore
	resources ResourceReadStore
	cfg       config.BookingConfig
}

func NewSlotQueries(bookings BookingReadStore, resources ResourceReadStore, cfg config.BookingConfig) SlotQueries {
	return &slotQueriesImpl{
		bookings:  bookings,
		resources: resources,
		cfg:       cfg,
	}
}

// GetAvailableSlots partitions the business window of the given local
// calendar day into fixed-width slots and marks each one available unless it
// overlaps an active booking.
//
// Only bookings whose start falls within the day are considered. A booking
// spanning midnight therefore does not block the following day's grid; that
// is long-standing documented behavior, kept until product says otherwise.
func (q *slotQueriesImpl) GetAvailableSlots(_ context.Context, resourceID string, date time.Time) ([]SlotView, error) {
	if _, err := q.resources.FindByID(resourceID); err != nil {
		return nil, errs.ErrResourceNotFound
	}

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	var dayBookings []*booking.Booking
	for _, b := range q.bookings.ListByResource(resourceID) {
		if !b.IsActive() {
			continue
		}
		start := b.TimeSlot().Start()
		if start.Before(dayStart) || !start.Before(dayEnd) {
			continue
		}
		dayBookings = append(dayBookings, b)
	}

	// Pinned to wall-clock hours so the window stays 08:00-18:00 even on
	// DST-transition days, where offsets from midnight would drift.
	open := time.Date(date.Year(), date.Month(), date.Day(), q.cfg.OpenHour, 0, 0, 0, date.Location())
	close := time.Date(date.Year(), date.Month(), date.Day(), q.cfg.CloseHour, 0, 0, 0, date.Location())

	slots := make([]SlotView, 0, int(close.Sub(open)/q.cfg.SlotGranularity))
	for cursor := open; cursor.Before(close); cursor = cursor.Add(q.cfg.SlotGranularity) {
		slot, err := booking.NewTimeSlot(cursor, cursor.Add(q.cfg.SlotGranularity))
		if err != nil {
			return nil, errs.Mark(err, errs.ErrDomainValidation)
		}

		available := true
		for _, b := range dayBookings {
			if slot.Overlaps(b.TimeSlot()) {
				available = false
				break
			}
		}

		slots = append(slots, SlotView{
			Start:     slot.Start(),
			End:       slot.End(),
			Available: available,
		})
	}

	return slots, nil
}
