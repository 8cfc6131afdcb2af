package queries

import (
	"context"
	"time"

	"resource-booker/internal/domain/booking"
	"resource-booker/internal/domain/resource"
	"resource-booker/internal/infra"
	"resource-booker/internal/pkg/errs"

	"github.com/google/uuid"
)

type BookingReadStore interface {
	FindByID(id uuid.UUID) (*booking.Booking, error)
	ListByResource(resourceID string) []*booking.Booking
	ListByUser(userID uuid.UUID) []*booking.Booking
	ListAll() []*booking.Booking
	HasConflict(resourceID string, slot booking.TimeSlot, excludeID *uuid.UUID) bool
}

type ResourceReadStore interface {
	FindByID(id string) (*resource.Resource, error)
	List() []*resource.Resource
}

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByResource(ctx context.Context, resourceID string) ([]*BookingView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingView, error)
	ListAll(ctx context.Context) ([]*BookingView, error)
	CheckConflict(ctx context.Context, resourceID string, start, end time.Time, excludeID *uuid.UUID) (bool, error)
	GetStats(ctx context.Context) (*StatsView, error)
}

type bookingQueriesImpl struct {
	bookings  BookingReadStore
	resources ResourceReadStore
}

func NewBookingQueries(bookings BookingReadStore, resources ResourceReadStore) BookingQueries {
	return &bookingQueriesImpl{
		bookings:  bookings,
		resources: resources,
	}
}

func (q *bookingQueriesImpl) GetByID(_ context.Context, id uuid.UUID) (*BookingView, error) {
	b, err := q.bookings.FindByID(id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}
	return q.toView(b), nil
}

func (q *bookingQueriesImpl) ListByResource(_ context.Context, resourceID string) ([]*BookingView, error) {
	if _, err := q.resources.FindByID(resourceID); err != nil {
		return nil, errs.ErrResourceNotFound
	}
	return q.toViews(q.bookings.ListByResource(resourceID)), nil
}

func (q *bookingQueriesImpl) ListByUser(_ context.Context, userID uuid.UUID) ([]*BookingView, error) {
	return q.toViews(q.bookings.ListByUser(userID)), nil
}

func (q *bookingQueriesImpl) ListAll(_ context.Context) ([]*BookingView, error) {
	return q.toViews(q.bookings.ListAll()), nil
}

// CheckConflict exposes the ledger's overlap predicate as a pre-check without
// committing anything. A nonexistent resource simply has no bookings and
// reports no conflict.
func (q *bookingQueriesImpl) CheckConflict(_ context.Context, resourceID string, start, end time.Time, excludeID *uuid.UUID) (bool, error) {
	slot, err := booking.NewTimeSlot(start, end)
	if err != nil {
		return false, errs.Mark(err, errs.ErrInvalidInterval)
	}
	return q.bookings.HasConflict(resourceID, slot, excludeID), nil
}

// GetStats is a pure read-side projection over active bookings: total count,
// per-resource counts over the whole catalog (zeroes included), and
// per-user counts in first-seen order.
func (q *bookingQueriesImpl) GetStats(_ context.Context) (*StatsView, error) {
	all := q.bookings.ListAll()

	stats := &StatsView{}

	byResource := make(map[string]int)
	byUser := make(map[uuid.UUID]*UserBookingCount)
	userOrder := make([]uuid.UUID, 0)

	for _, b := range all {
		if !b.IsActive() {
			continue
		}
		stats.TotalBookings++
		byResource[b.ResourceID()]++

		userID := b.Requester().UserID()
		if _, seen := byUser[userID]; !seen {
			byUser[userID] = &UserBookingCount{
				UserID:   userID,
				UserName: b.Requester().UserName(),
			}
			userOrder = append(userOrder, userID)
		}
		byUser[userID].Count++
	}

	for _, res := range q.resources.List() {
		stats.ByResource = append(stats.ByResource, ResourceBookingCount{
			ResourceID:   res.ID(),
			ResourceName: res.Name(),
			Count:        byResource[res.ID()],
		})
	}
	for _, userID := range userOrder {
		stats.ByUser = append(stats.ByUser, *byUser[userID])
	}

	return stats, nil
}

func (q *bookingQueriesImpl) toViews(bs []*booking.Booking) []*BookingView {
	views := make([]*BookingView, len(bs))
	for i, b := range bs {
		views[i] = q.toView(b)
	}
	return views
}

func (q *bookingQueriesImpl) toView(b *booking.Booking) *BookingView {
	view := &BookingView{
		ID:         b.ID(),
		ResourceID: b.ResourceID(),
		UserID:     b.Requester().UserID(),
		UserName:   b.Requester().UserName(),
		UserEmail:  b.Requester().UserEmail(),
		Start:      b.TimeSlot().Start(),
		End:        b.TimeSlot().End(),
		Title:      b.Title(),
		Status:     b.Status().String(),
		CreatedAt:  b.CreatedAt(),
		UpdatedAt:  b.UpdatedAt(),
	}
	if res, err := q.resources.FindByID(b.ResourceID()); err == nil {
		view.ResourceName = res.Name()
	}
	if d := b.Description(); d != "" {
		view.Description = &d
	}
	if ev := b.CalendarEventID(); ev != "" {
		view.CalendarEventID = &ev
	}
	return view
}
