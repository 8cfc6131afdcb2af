package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type BookingView struct {
	ID              uuid.UUID `json:"id"`
	ResourceID      string    `json:"resource_id"`
	ResourceName    string    `json:"resource_name"`
	UserID          uuid.UUID `json:"user_id"`
	UserName        string    `json:"user_name"`
	UserEmail       string    `json:"user_email"`
	Start           time.Time `json:"start"`
	End             time.Time `json:"end"`
	Title           string    `json:"title"`
	Description     *string   `json:"description,omitempty"`
	Status          string    `json:"status"`
	CalendarEventID *string   `json:"calendar_event_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type ResourceView struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Type            string  `json:"type"`
	Description     *string `json:"description,omitempty"`
	MaxBookingHours *int    `json:"max_booking_hours,omitempty"`
}

// SlotView is one fixed-width candidate interval within business hours,
// derived fresh on every query and never persisted.
type SlotView struct {
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Available bool      `json:"available"`
}

type ResourceBookingCount struct {
	ResourceID   string `json:"resource_id"`
	ResourceName string `json:"resource_name"`
	Count        int    `json:"count"`
}

type UserBookingCount struct {
	UserID   uuid.UUID `json:"user_id"`
	UserName string    `json:"user_name"`
	Count    int       `json:"count"`
}

type StatsView struct {
	TotalBookings int                    `json:"total_bookings"`
	ByResource    []ResourceBookingCount `json:"by_resource"`
	ByUser        []UserBookingCount     `json:"by_user"`
}
