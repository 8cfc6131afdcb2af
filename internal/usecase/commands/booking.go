package commands

import (
	"context"
	"errors"
	"time"

	"resource-booker/internal/domain/booking"
	"resource-booker/internal/domain/resource"
	"resource-booker/internal/infra"
	"resource-booker/internal/pkg/clock"
	"resource-booker/internal/pkg/config"
	"resource-booker/internal/pkg/errs"
	"resource-booker/internal/pkg/patch"
	"resource-booker/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingWriteStore interface {
	Create(b *booking.Booking) error
	FindByID(id uuid.UUID) (*booking.Booking, error)
	Reschedule(id uuid.UUID, slot booking.TimeSlot, title, description string, now time.Time, guard booking.MutationGuard) (*booking.Booking, error)
	Cancel(id uuid.UUID, now time.Time, guard booking.MutationGuard) (b *booking.Booking, flipped bool, err error)
}

type ResourceStore interface {
	FindByID(id string) (*resource.Resource, error)
}

// Notifier receives committed state changes. Calls run outside the ledger
// lock and their failures never unwind a commit.
type Notifier interface {
	BookingCreated(ctx context.Context, b *booking.Booking)
	BookingUpdated(ctx context.Context, b *booking.Booking)
	BookingCancelled(ctx context.Context, b *booking.Booking)
}

type CreateBookingParams struct {
	ResourceID  string
	Start       time.Time
	End         time.Time
	Title       string
	Description string
}

// UpdateBookingPatch carries only the fields the caller wants replaced;
// nil fields keep their stored values.
type UpdateBookingPatch struct {
	Start       *time.Time
	End         *time.Time
	Title       *string
	Description *string
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, params CreateBookingParams, requester booking.Requester) (*queries.BookingView, error)
	UpdateBooking(ctx context.Context, id uuid.UUID, requesterID uuid.UUID, p UpdateBookingPatch) (*queries.BookingView, error)
	CancelBooking(ctx context.Context, id uuid.UUID, requesterID uuid.UUID) error
}

type bookingCommandsImpl struct {
	store          BookingWriteStore
	resources      ResourceStore
	notifier       Notifier
	bookingQueries queries.BookingQueries
	clock          clock.Clock
	cfg            config.BookingConfig
}

func NewBookingCommands(
	store BookingWriteStore,
	resources ResourceStore,
	notifier Notifier,
	bookingQueries queries.BookingQueries,
	clock clock.Clock,
	cfg config.BookingConfig,
) BookingCommands {
	return &bookingCommandsImpl{
		store:          store,
		resources:      resources,
		notifier:       notifier,
		bookingQueries: bookingQueries,
		clock:          clock,
		cfg:            cfg,
	}
}

func (c *bookingCommandsImpl) CreateBooking(
	ctx context.Context,
	params CreateBookingParams,
	requester booking.Requester,
) (*queries.BookingView, error) {
	res, err := c.resources.FindByID(params.ResourceID)
	if err != nil {
		return nil, errs.ErrResourceNotFound
	}

	slot, err := booking.NewTimeSlot(params.Start, params.End)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidInterval)
	}

	entity, err := booking.NewBooking(res, requester, slot, params.Title, params.Description, c.clock.Now())
	if err != nil {
		if errors.Is(err, booking.ErrDurationExceeded) {
			return nil, errs.ErrDurationExceeded
		}
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if err := c.store.Create(entity); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, errs.ErrBookingConflict
		}
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}

	go c.notifier.BookingCreated(context.WithoutCancel(ctx), entity.Clone())

	// Read-after-write: return the committed view
	return c.bookingQueries.GetByID(ctx, entity.ID())
}

func (c *bookingCommandsImpl) UpdateBooking(
	ctx context.Context,
	id uuid.UUID,
	requesterID uuid.UUID,
	p UpdateBookingPatch,
) (*queries.BookingView, error) {
	current, err := c.store.FindByID(id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}

	// Unspecified bounds fall back to the stored interval
	slot, err := booking.NewTimeSlot(
		patch.Coalesce(p.Start, current.TimeSlot().Start()),
		patch.Coalesce(p.End, current.TimeSlot().End()),
	)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidInterval)
	}

	title := patch.Coalesce(p.Title, current.Title())
	description := patch.Coalesce(p.Description, current.Description())

	updated, err := c.store.Reschedule(id, slot, title, description, c.clock.Now(), c.mutationGuard(requesterID))
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrForbidden), errors.Is(err, errs.ErrCancellationTooLate):
			return nil, err
		case infra.IsKind(err, infra.KindConflict):
			return nil, errs.ErrBookingConflict
		case infra.IsKind(err, infra.KindNotFound):
			return nil, errs.ErrBookingNotFound
		default:
			return nil, errs.Mark(err, errs.ErrDomainValidation)
		}
	}

	go c.notifier.BookingUpdated(context.WithoutCancel(ctx), updated.Clone())

	return c.bookingQueries.GetByID(ctx, id)
}

func (c *bookingCommandsImpl) CancelBooking(ctx context.Context, id uuid.UUID, requesterID uuid.UUID) error {
	cancelled, flipped, err := c.store.Cancel(id, c.clock.Now(), c.mutationGuard(requesterID))
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrForbidden), errors.Is(err, errs.ErrCancellationTooLate):
			return err
		case infra.IsKind(err, infra.KindNotFound):
			return errs.ErrBookingNotFound
		default:
			return errs.Mark(err, errs.ErrStoreOperationFailed)
		}
	}

	// Re-cancelling is success, not an error, so retries stay harmless
	if !flipped {
		return nil
	}

	go c.notifier.BookingCancelled(context.WithoutCancel(ctx), cancelled.Clone())

	return nil
}

// mutationGuard builds the status-independent precondition shared by update
// and cancel: ownership and the lead-time deadline. The store evaluates it
// under the write lock, so the deadline is checked against the committed
// start even when an update races the cancel.
func (c *bookingCommandsImpl) mutationGuard(requesterID uuid.UUID) booking.MutationGuard {
	return func(b *booking.Booking) error {
		if !b.IsOwnedBy(requesterID) {
			return errs.ErrForbidden
		}
		if !b.MeetsCancellationDeadline(c.clock.Now(), c.cfg.CancellationDeadlineHours) {
			return errs.ErrCancellationTooLate
		}
		return nil
	}
}
