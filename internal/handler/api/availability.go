package api

import (
	"errors"
	"log/slog"
	"net/http"

	reqdto "resource-booker/internal/handler/dto/request"
	resdto "resource-booker/internal/handler/dto/response"
	"resource-booker/internal/handler/httperr"
	"resource-booker/internal/pkg/errs"
	"resource-booker/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	q queries.BookingQueries
}

func NewAvailabilityHandler(q queries.BookingQueries) *AvailabilityHandler {
	return &AvailabilityHandler{q: q}
}

// CheckAvailability exposes the conflict predicate as a side-effect-free
// pre-check so callers can validate a candidate interval before submitting.
func (h *AvailabilityHandler) CheckAvailability(c *gin.Context) {
	var req reqdto.CheckAvailabilityRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	conflict, err := h.q.CheckConflict(c.Request.Context(), req.ResourceID, req.Start, req.End, req.ExcludeID)
	if err != nil {
		if errors.Is(err, errs.ErrInvalidInterval) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "End time must be after start time", nil)
			return
		}
		slog.Error("availability check failed", "error", err)
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.AvailabilityResponse{Conflict: conflict})
}

func (h *AvailabilityHandler) GetBookingStats(c *gin.Context) {
	view, err := h.q.GetStats(c.Request.Context())
	if err != nil {
		slog.Error("booking stats failed", "error", err)
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromStatsView(view))
}
