package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	resdto "resource-booker/internal/handler/dto/response"
	"resource-booker/internal/handler/httperr"
	"resource-booker/internal/pkg/errs"
	"resource-booker/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const slotDateLayout = "2006-01-02"

type ResourceHandler struct {
	resourceQueries queries.ResourceQueries
	bookingQueries  queries.BookingQueries
	slotQueries     queries.SlotQueries
}

func NewResourceHandler(
	resourceQueries queries.ResourceQueries,
	bookingQueries queries.BookingQueries,
	slotQueries queries.SlotQueries,
) *ResourceHandler {
	return &ResourceHandler{
		resourceQueries: resourceQueries,
		bookingQueries:  bookingQueries,
		slotQueries:     slotQueries,
	}
}

func (h *ResourceHandler) GetResources(c *gin.Context) {
	views, err := h.resourceQueries.List(c.Request.Context())
	if err != nil {
		slog.Error("list resources failed", "error", err)
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromResourceViews(views))
}

func (h *ResourceHandler) GetResource(c *gin.Context) {
	view, err := h.resourceQueries.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, errs.ErrResourceNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Resource not found", nil)
			return
		}
		slog.Error("get resource failed", "error", err)
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromResourceView(view))
}

func (h *ResourceHandler) GetResourceBookings(c *gin.Context) {
	views, err := h.bookingQueries.ListByResource(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, errs.ErrResourceNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Resource not found", nil)
			return
		}
		slog.Error("list bookings by resource failed", "error", err)
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// GetAvailableSlots renders the business-hours grid for one local calendar
// day. The date query parameter is required and interpreted in server-local
// time, matching how the grid itself is laid out.
func (h *ResourceHandler) GetAvailableSlots(c *gin.Context) {
	dateParam := c.Query("date")
	if dateParam == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.ErrInvalidInterval, "Query parameter 'date' is required (YYYY-MM-DD)", nil)
		return
	}
	date, err := time.ParseInLocation(slotDateLayout, dateParam, time.Local)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date format, expected YYYY-MM-DD", nil)
		return
	}

	views, err := h.slotQueries.GetAvailableSlots(c.Request.Context(), c.Param("id"), date)
	if err != nil {
		if errors.Is(err, errs.ErrResourceNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Resource not found", nil)
			return
		}
		slog.Error("get available slots failed", "error", err)
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSlotViews(views))
}
