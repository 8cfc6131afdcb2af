package memstore

import (
	"sync"
	"time"

	"resource-booker/internal/domain/booking"
	"resource-booker/internal/infra"

	"github.com/google/uuid"
)

// BookingStore is the authoritative in-memory booking ledger. It is the only
// writer of booking state: every mutation runs under the write lock, so the
// conflict scan and the commit are atomic with respect to each other and no
// two overlapping bookings can both pass the check for the same resource.
//
// Reads return clones in insertion order; callers never see live entities.
type BookingStore struct {
	mu    sync.RWMutex
	byID  map[uuid.UUID]*booking.Booking
	order []uuid.UUID
}

func NewBookingStore() *BookingStore {
	return &BookingStore{
		byID: make(map[uuid.UUID]*booking.Booking),
	}
}

// Create appends a new booking unless its interval overlaps an active booking
// on the same resource.
func (s *BookingStore) Create(b *booking.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[b.ID()]; exists {
		return infra.NewStoreErr(infra.KindDuplicateKey, "booking "+b.ID().String()+" already exists")
	}
	if s.overlapsActiveLocked(b.ResourceID(), b.TimeSlot(), nil) {
		return infra.NewStoreErr(infra.KindConflict, "interval overlaps an existing booking")
	}

	s.byID[b.ID()] = b.Clone()
	s.order = append(s.order, b.ID())
	return nil
}

func (s *BookingStore) FindByID(id uuid.UUID) (*booking.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.byID[id]
	if !ok {
		return nil, infra.NewStoreErr(infra.KindNotFound, "booking "+id.String()+" not found")
	}
	return b.Clone(), nil
}

func (s *BookingStore) ListByResource(resourceID string) []*booking.Booking {
	return s.list(func(b *booking.Booking) bool { return b.ResourceID() == resourceID })
}

func (s *BookingStore) ListByUser(userID uuid.UUID) []*booking.Booking {
	return s.list(func(b *booking.Booking) bool { return b.Requester().UserID() == userID })
}

func (s *BookingStore) ListAll() []*booking.Booking {
	return s.list(func(*booking.Booking) bool { return true })
}

// HasConflict exposes the overlap scan as a side-effect-free pre-check. A
// passing pre-check is advisory only; the authoritative check reruns under
// the write lock on commit.
func (s *BookingStore) HasConflict(resourceID string, slot booking.TimeSlot, excludeID *uuid.UUID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.overlapsActiveLocked(resourceID, slot, excludeID)
}

// Reschedule replaces a booking's interval and mutable fields, re-running the
// guard and the conflict scan against every other active booking on the
// resource within the same critical section as the write.
func (s *BookingStore) Reschedule(id uuid.UUID, slot booking.TimeSlot, title, description string, now time.Time, guard booking.MutationGuard) (*booking.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.byID[id]
	if !ok {
		return nil, infra.NewStoreErr(infra.KindNotFound, "booking "+id.String()+" not found")
	}
	if guard != nil {
		if err := guard(b); err != nil {
			return nil, err
		}
	}
	if s.overlapsActiveLocked(b.ResourceID(), slot, &id) {
		return nil, infra.NewStoreErr(infra.KindConflict, "updated interval overlaps an existing booking")
	}
	if err := b.Reschedule(slot, title, description, now); err != nil {
		return nil, err
	}
	return b.Clone(), nil
}

// Cancel flips the booking's status after the guard passes on the committed
// state. Already-cancelled bookings pass through unchanged with flipped=false.
func (s *BookingStore) Cancel(id uuid.UUID, now time.Time, guard booking.MutationGuard) (b *booking.Booking, flipped bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.byID[id]
	if !ok {
		return nil, false, infra.NewStoreErr(infra.KindNotFound, "booking "+id.String()+" not found")
	}
	if guard != nil {
		if err := guard(cur); err != nil {
			return nil, false, err
		}
	}
	if cur.IsCancelled() {
		return cur.Clone(), false, nil
	}
	cur.MarkCancelled(now)
	return cur.Clone(), true, nil
}

// AttachCalendarEvent records the external calendar correlation id after a
// successful best-effort sync.
func (s *BookingStore) AttachCalendarEvent(id uuid.UUID, eventID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.byID[id]
	if !ok {
		return infra.NewStoreErr(infra.KindNotFound, "booking "+id.String()+" not found")
	}
	b.AttachCalendarEvent(eventID)
	return nil
}

func (s *BookingStore) list(keep func(*booking.Booking) bool) []*booking.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*booking.Booking, 0)
	for _, id := range s.order {
		if b := s.byID[id]; keep(b) {
			out = append(out, b.Clone())
		}
	}
	return out
}

func (s *BookingStore) overlapsActiveLocked(resourceID string, slot booking.TimeSlot, excludeID *uuid.UUID) bool {
	for _, id := range s.order {
		b := s.byID[id]
		if b.ResourceID() != resourceID || !b.IsActive() {
			continue
		}
		if excludeID != nil && b.ID() == *excludeID {
			continue
		}
		if slot.Overlaps(b.TimeSlot()) {
			return true
		}
	}
	return false
}
