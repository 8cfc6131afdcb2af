package request

import (
	"strings"
	"time"

	"resource-booker/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	ResourceID  string    `json:"resource_id" binding:"required"`
	Start       time.Time `json:"start" binding:"required"`
	End         time.Time `json:"end" binding:"required"`
	Title       string    `json:"title" binding:"required"`
	Description *string   `json:"description,omitempty"`
}

func (r CreateBookingRequest) ToParams() commands.CreateBookingParams {
	params := commands.CreateBookingParams{
		ResourceID: strings.TrimSpace(r.ResourceID),
		Start:      r.Start,
		End:        r.End,
		Title:      r.Title,
	}
	if r.Description != nil {
		params.Description = *r.Description
	}
	return params
}

type UpdateBookingRequest struct {
	Start       *time.Time `json:"start,omitempty"`
	End         *time.Time `json:"end,omitempty"`
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
}

func (r UpdateBookingRequest) ToPatch() commands.UpdateBookingPatch {
	return commands.UpdateBookingPatch{
		Start:       r.Start,
		End:         r.End,
		Title:       r.Title,
		Description: r.Description,
	}
}

type CheckAvailabilityRequest struct {
	ResourceID string     `json:"resource_id" binding:"required"`
	Start      time.Time  `json:"start" binding:"required"`
	End        time.Time  `json:"end" binding:"required"`
	ExcludeID  *uuid.UUID `json:"exclude_id,omitempty"`
}
