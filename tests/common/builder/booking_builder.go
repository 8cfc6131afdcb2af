//go:build unit || e2e

package builder

import (
	"time"

	dombooking "resource-booker/internal/domain/booking"
	domresource "resource-booker/internal/domain/resource"
	reqdto "resource-booker/internal/handler/dto/request"
	"resource-booker/internal/usecase/commands"
	"resource-booker/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ResourceID      string
	ResourceName    string
	ResourceType    domresource.Type
	MaxBookingHours int
	UserID          uuid.UUID
	UserName        string
	UserEmail       string
	Start           time.Time
	End             time.Time
	Title           string
	Description     string
	Now             time.Time
}

func NewBookingBuilder() *BookingBuilder {
	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		ResourceID:      "room-1",
		ResourceName:    "Sala 1",
		ResourceType:    domresource.TypeRoom,
		MaxBookingHours: 0,
		UserID:          uuid.New(),
		UserName:        "Test User",
		UserEmail:       "user@example.com",
		Start:           start,
		End:             start.Add(time.Hour),
		Title:           "Team sync",
		Description:     "",
		Now:             start.Add(-24 * time.Hour),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildResource() (*domresource.Resource, error) {
	return domresource.NewResource(b.ResourceID, b.ResourceName, b.ResourceType, "", b.MaxBookingHours)
}

func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	res, err := b.BuildResource()
	if err != nil {
		return nil, err
	}
	requester, err := dombooking.NewRequester(b.UserID, b.UserName, b.UserEmail)
	if err != nil {
		return nil, err
	}
	slot, err := dombooking.NewTimeSlot(b.Start, b.End)
	if err != nil {
		return nil, err
	}
	return dombooking.NewBooking(res, requester, slot, b.Title, b.Description, b.Now)
}

func (b *BookingBuilder) BuildParams() commands.CreateBookingParams {
	return commands.CreateBookingParams{
		ResourceID:  b.ResourceID,
		Start:       b.Start,
		End:         b.End,
		Title:       b.Title,
		Description: b.Description,
	}
}

func (b *BookingBuilder) BuildRequester() dombooking.Requester {
	requester, _ := dombooking.NewRequester(b.UserID, b.UserName, b.UserEmail)
	return requester
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	req := reqdto.CreateBookingRequest{
		ResourceID: b.ResourceID,
		Start:      b.Start,
		End:        b.End,
		Title:      b.Title,
	}
	if b.Description != "" {
		desc := b.Description
		req.Description = &desc
	}
	return req
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:           uuid.New(),
		ResourceID:   b.ResourceID,
		ResourceName: b.ResourceName,
		UserID:       b.UserID,
		UserName:     b.UserName,
		UserEmail:    b.UserEmail,
		Start:        b.Start,
		End:          b.End,
		Title:        b.Title,
		Status:       dombooking.StatusConfirmed.String(),
		CreatedAt:    b.Now,
		UpdatedAt:    b.Now,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithResource(id, name string) *BookingBuilder {
	b.ResourceID = id
	b.ResourceName = name
	return b
}

func (b *BookingBuilder) AsVehicle(maxHours int) *BookingBuilder {
	b.ResourceType = domresource.TypeVehicle
	b.MaxBookingHours = maxHours
	if b.ResourceID == "room-1" {
		b.ResourceID = "vehicle-1"
		b.ResourceName = "Chevrolet Cobalt"
	}
	return b
}

func (b *BookingBuilder) WithUserID(userID uuid.UUID) *BookingBuilder {
	b.UserID = userID
	return b
}

func (b *BookingBuilder) WithSlot(start, end time.Time) *BookingBuilder {
	b.Start = start
	b.End = end
	return b
}

func (b *BookingBuilder) WithTitle(title string) *BookingBuilder {
	b.Title = title
	return b
}

func (b *BookingBuilder) WithDescription(description string) *BookingBuilder {
	b.Description = description
	return b
}

func (b *BookingBuilder) WithNow(now time.Time) *BookingBuilder {
	b.Now = now
	return b
}
