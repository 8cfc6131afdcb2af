package booking

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidTimeSlot = errors.New("start time must be before end time")
	ErrEmptyRequester  = errors.New("requester id cannot be empty")
)

// TimeSlot is a half-open interval [start, end).
type TimeSlot struct {
	start time.Time
	end   time.Time
}

func NewTimeSlot(start, end time.Time) (TimeSlot, error) {
	if !start.Before(end) {
		return TimeSlot{}, ErrInvalidTimeSlot
	}
	return TimeSlot{
		start: start,
		end:   end,
	}, nil
}

func (ts TimeSlot) Start() time.Time {
	return ts.start
}

func (ts TimeSlot) End() time.Time {
	return ts.end
}

func (ts TimeSlot) Duration() time.Duration {
	return ts.end.Sub(ts.start)
}

// Overlaps reports whether two half-open intervals intersect. The single
// inequality form makes slot boundaries meet without conflict: an interval
// ending exactly when another starts does not overlap it.
func (ts TimeSlot) Overlaps(other TimeSlot) bool {
	return ts.start.Before(other.end) && other.start.Before(ts.end)
}

// MeetsLeadTime reports whether the slot starts at least deadlineHours after
// now.
func (ts TimeSlot) MeetsLeadTime(now time.Time, deadlineHours int) bool {
	return ts.start.Sub(now).Hours() >= float64(deadlineHours)
}

func (ts TimeSlot) String() string {
	return fmt.Sprintf("[%s,%s)", ts.start.Format(time.RFC3339), ts.end.Format(time.RFC3339))
}

// Requester is the booking-time snapshot of whoever asked for the booking.
// It is captured once at creation and never re-resolved.
type Requester struct {
	userID    uuid.UUID
	userName  string
	userEmail string
}

func NewRequester(userID uuid.UUID, userName, userEmail string) (Requester, error) {
	if userID == uuid.Nil {
		return Requester{}, ErrEmptyRequester
	}
	return Requester{
		userID:    userID,
		userName:  strings.TrimSpace(userName),
		userEmail: strings.TrimSpace(userEmail),
	}, nil
}

func (r Requester) UserID() uuid.UUID {
	return r.userID
}

func (r Requester) UserName() string {
	return r.userName
}

func (r Requester) UserEmail() string {
	return r.userEmail
}
