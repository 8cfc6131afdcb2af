package booking

import (
	"errors"
	"strings"
	"time"

	"resource-booker/internal/domain/resource"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle       = errors.New("booking title cannot be empty")
	ErrTitleTooLong     = errors.New("booking title is too long (max 255 characters)")
	ErrDurationExceeded = errors.New("booking duration exceeds resource limit")
)

const (
	MaxTitleLength = 255
)

// Booking is one reservation of a resource for a half-open time interval.
// Bookings are never deleted; cancellation is a forward-only status flip.
type Booking struct {
	id              uuid.UUID
	resourceID      string
	requester       Requester
	timeSlot        TimeSlot
	title           string
	description     string
	status          Status
	calendarEventID string
	createdAt       time.Time
	updatedAt       time.Time
}

func NewBooking(
	res *resource.Resource,
	requester Requester,
	slot TimeSlot,
	title string,
	description string,
	now time.Time,
) (*Booking, error) {
	title = strings.TrimSpace(title)
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	if err := res.ValidateBookingDuration(slot.Duration()); err != nil {
		return nil, ErrDurationExceeded
	}

	return &Booking{
		id:          uuid.New(),
		resourceID:  res.ID(),
		requester:   requester,
		timeSlot:    slot,
		title:       title,
		description: strings.TrimSpace(description),
		status:      StatusConfirmed,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructBooking(
	id uuid.UUID,
	resourceID string,
	requester Requester,
	timeSlot TimeSlot,
	title, description string,
	status Status,
	calendarEventID string,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:              id,
		resourceID:      resourceID,
		requester:       requester,
		timeSlot:        timeSlot,
		title:           title,
		description:     description,
		status:          status,
		calendarEventID: calendarEventID,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// IsActive reports whether the booking occupies its interval: every
// non-cancelled booking does, pending included.
func (b *Booking) IsActive() bool {
	return b.status != StatusCancelled
}

func (b *Booking) IsCancelled() bool {
	return b.status == StatusCancelled
}

func (b *Booking) IsOwnedBy(userID uuid.UUID) bool {
	return b.requester.UserID() == userID
}

// MutationGuard is a precondition on a booking's committed state. The store
// evaluates it inside the mutation's critical section; a non-nil error aborts
// the mutation and reaches the caller unchanged.
type MutationGuard func(*Booking) error

// MeetsCancellationDeadline reports whether the booking's stored start is
// still at least deadlineHours away from now.
func (b *Booking) MeetsCancellationDeadline(now time.Time, deadlineHours int) bool {
	return b.timeSlot.MeetsLeadTime(now, deadlineHours)
}

func (b *Booking) ConflictsWith(other *Booking) bool {
	return b.resourceID == other.resourceID &&
		b.id != other.id &&
		b.timeSlot.Overlaps(other.timeSlot)
}

// Reschedule replaces the mutable attributes. The caller has already run the
// conflict and deadline checks.
func (b *Booking) Reschedule(slot TimeSlot, title, description string, now time.Time) error {
	title = strings.TrimSpace(title)
	if err := validateTitle(title); err != nil {
		return err
	}
	b.timeSlot = slot
	b.title = title
	b.description = strings.TrimSpace(description)
	b.updatedAt = now
	return nil
}

// MarkCancelled flips the status forward. Cancelling an already cancelled
// booking is a no-op so the operation stays retryable.
func (b *Booking) MarkCancelled(now time.Time) {
	if b.status == StatusCancelled {
		return
	}
	b.status = StatusCancelled
	b.updatedAt = now
}

func (b *Booking) AttachCalendarEvent(eventID string) {
	b.calendarEventID = eventID
}

func (b *Booking) Clone() *Booking {
	c := *b
	return &c
}

func validateTitle(title string) error {
	if title == "" {
		return ErrEmptyTitle
	}
	if len(title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}

func (b *Booking) ID() uuid.UUID           { return b.id }
func (b *Booking) ResourceID() string      { return b.resourceID }
func (b *Booking) Requester() Requester    { return b.requester }
func (b *Booking) TimeSlot() TimeSlot      { return b.timeSlot }
func (b *Booking) Title() string           { return b.title }
func (b *Booking) Description() string     { return b.description }
func (b *Booking) Status() Status          { return b.status }
func (b *Booking) CalendarEventID() string { return b.calendarEventID }
func (b *Booking) CreatedAt() time.Time    { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time    { return b.updatedAt }
