package response

import (
	"time"

	"resource-booker/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type ResourceResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Type            string  `json:"type"`
	Description     *string `json:"description,omitempty"`
	MaxBookingHours *int    `json:"maxBookingHours,omitempty"`
}

func FromResourceView(view *queries.ResourceView) *ResourceResponse {
	var resp ResourceResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromResourceViews(views []*queries.ResourceView) []*ResourceResponse {
	out := make([]*ResourceResponse, len(views))
	for i, view := range views {
		out[i] = FromResourceView(view)
	}
	return out
}

type SlotResponse struct {
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Available bool      `json:"available"`
}

func FromSlotViews(views []queries.SlotView) []SlotResponse {
	out := make([]SlotResponse, len(views))
	for i, view := range views {
		out[i] = SlotResponse(view)
	}
	return out
}
