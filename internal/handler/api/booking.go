package api

import (
	"errors"
	"log/slog"
	"net/http"

	reqdto "resource-booker/internal/handler/dto/request"
	resdto "resource-booker/internal/handler/dto/response"
	"resource-booker/internal/handler/httperr"
	"resource-booker/internal/handler/middleware"
	"resource-booker/internal/pkg/errs"
	"resource-booker/internal/usecase/commands"
	"resource-booker/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

func (h *BookingHandler) CreateBooking(c *gin.Context) {
	requester, ok := middleware.GetRequester(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrForbidden, "Unauthorized", nil)
		return
	}
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.CreateBooking(c.Request.Context(), req.ToParams(), requester)
	if err != nil {
		abortWithCommandError(c, err)
		return
	}
	c.Header("Location", "/api/bookings/"+view.ID.String())
	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

func (h *BookingHandler) GetBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithCommandError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

func (h *BookingHandler) GetUserBookings(c *gin.Context) {
	requester, ok := middleware.GetRequester(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrForbidden, "Unauthorized", nil)
		return
	}
	views, err := h.q.ListByUser(c.Request.Context(), requester.UserID())
	if err != nil {
		slog.Error("list bookings by user failed", "error", err)
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

func (h *BookingHandler) GetAllBookings(c *gin.Context) {
	views, err := h.q.ListAll(c.Request.Context())
	if err != nil {
		slog.Error("list all bookings failed", "error", err)
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	requester, ok := middleware.GetRequester(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrForbidden, "Unauthorized", nil)
		return
	}
	var req reqdto.UpdateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	view, err := h.cmds.UpdateBooking(c.Request.Context(), id, requester.UserID(), req.ToPatch())
	if err != nil {
		abortWithCommandError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

func (h *BookingHandler) CancelBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	requester, ok := middleware.GetRequester(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrForbidden, "Unauthorized", nil)
		return
	}
	if err := h.cmds.CancelBooking(c.Request.Context(), id, requester.UserID()); err != nil {
		abortWithCommandError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// abortWithCommandError maps usecase sentinels to HTTP statuses. Shared by
// every handler that runs booking commands or queries.
func abortWithCommandError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrResourceNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Resource not found", nil)
	case errors.Is(err, errs.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
	case errors.Is(err, errs.ErrInvalidInterval):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "End time must be after start time", nil)
	case errors.Is(err, errs.ErrDurationExceeded):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Booking duration exceeds the resource limit", nil)
	case errors.Is(err, errs.ErrBookingConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, "This time slot is already booked", nil)
	case errors.Is(err, errs.ErrForbidden):
		httperr.AbortWithError(c, http.StatusForbidden, err, "You don't have permission to modify this booking", nil)
	case errors.Is(err, errs.ErrCancellationTooLate):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Bookings can only be changed before the cancellation deadline", nil)
	case errors.Is(err, errs.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed", nil)
	default:
		slog.Error("booking command failed", "error", err)
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
	}
}
