package response

import (
	"resource-booker/internal/usecase/queries"

	"github.com/google/uuid"
)

type StatsResponse struct {
	TotalBookings int                 `json:"totalBookings"`
	ByResource    []ResourceStatEntry `json:"bookingsByResource"`
	ByUser        []UserStatEntry     `json:"bookingsByUser"`
}

type ResourceStatEntry struct {
	ResourceID   string `json:"resourceId"`
	ResourceName string `json:"resourceName"`
	Count        int    `json:"count"`
}

type UserStatEntry struct {
	UserID   uuid.UUID `json:"userId"`
	UserName string    `json:"userName"`
	Count    int       `json:"count"`
}

func FromStatsView(view *queries.StatsView) *StatsResponse {
	resp := &StatsResponse{
		TotalBookings: view.TotalBookings,
		ByResource:    make([]ResourceStatEntry, len(view.ByResource)),
		ByUser:        make([]UserStatEntry, len(view.ByUser)),
	}
	for i, entry := range view.ByResource {
		resp.ByResource[i] = ResourceStatEntry(entry)
	}
	for i, entry := range view.ByUser {
		resp.ByUser[i] = UserStatEntry(entry)
	}
	return resp
}
