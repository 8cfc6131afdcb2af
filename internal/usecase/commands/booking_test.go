//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"resource-booker/internal/domain/booking"
	"resource-booker/internal/infra/memstore"
	"resource-booker/internal/pkg/clock"
	"resource-booker/internal/pkg/config"
	"resource-booker/internal/pkg/errs"
	"resource-booker/internal/usecase/commands"
	"resource-booker/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spyNotifier records side-effect dispatches. Notifications are fired from
// goroutines, so the spy is safe for concurrent use and assertions go
// through Eventually.
type spyNotifier struct {
	mu        sync.Mutex
	created   []uuid.UUID
	updated   []uuid.UUID
	cancelled []uuid.UUID
}

func (s *spyNotifier) BookingCreated(_ context.Context, b *booking.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.created = append(s.created, b.ID())
}

func (s *spyNotifier) BookingUpdated(_ context.Context, b *booking.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.updated = append(s.updated, b.ID())
}

func (s *spyNotifier) BookingCancelled(_ context.Context, b *booking.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelled = append(s.cancelled, b.ID())
}

func (s *spyNotifier) counts() (created, updated, cancelled int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.created), len(s.updated), len(s.cancelled)
}

type fixture struct {
	commands  commands.BookingCommands
	store     *memstore.BookingStore
	notifier  *spyNotifier
	clock     *clock.MockClock
	requester booking.Requester
}

var fixtureNow = time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC)

func newFixture(t *testing.T) *fixture {
	t.Helper()

	cfg := config.NewTestConfig().Booking
	seeds, err := config.LoadResourceSeeds("", cfg.MaxVehicleBookingHours)
	require.NoError(t, err)
	catalog, err := memstore.NewResourceCatalog(seeds)
	require.NoError(t, err)

	store := memstore.NewBookingStore()
	notifier := &spyNotifier{}
	mockClock := clock.NewMockClock(fixtureNow)
	bookingQueries := queries.NewBookingQueries(store, catalog)

	requester, err := booking.NewRequester(uuid.New(), "Ana Souza", "ana@example.com")
	require.NoError(t, err)

	return &fixture{
		commands:  commands.NewBookingCommands(store, catalog, notifier, bookingQueries, mockClock, cfg),
		store:     store,
		notifier:  notifier,
		clock:     mockClock,
		requester: requester,
	}
}

func params(resourceID string, start, end time.Time) commands.CreateBookingParams {
	return commands.CreateBookingParams{
		ResourceID: resourceID,
		Start:      start,
		End:        end,
		Title:      "Team sync",
	}
}

func TestCreateBooking(t *testing.T) {
	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

	t.Run("creates a confirmed booking", func(t *testing.T) {
		f := newFixture(t)

		view, err := f.commands.CreateBooking(context.Background(), params("room-1", start, start.Add(time.Hour)), f.requester)
		require.NoError(t, err)
		require.NotNil(t, view)

		assert.Equal(t, "room-1", view.ResourceID)
		assert.Equal(t, "Sala 1", view.ResourceName)
		assert.Equal(t, f.requester.UserID(), view.UserID)
		assert.Equal(t, booking.StatusConfirmed.String(), view.Status)
		assert.Equal(t, start, view.Start)

		assert.Eventually(t, func() bool {
			created, _, _ := f.notifier.counts()
			return created == 1
		}, time.Second, 10*time.Millisecond)
	})

	t.Run("unknown resource", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.commands.CreateBooking(context.Background(), params("room-99", start, start.Add(time.Hour)), f.requester)
		assert.ErrorIs(t, err, errs.ErrResourceNotFound)
	})

	t.Run("inverted interval", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.commands.CreateBooking(context.Background(), params("room-1", start.Add(time.Hour), start), f.requester)
		assert.ErrorIs(t, err, errs.ErrInvalidInterval)
	})

	t.Run("blank title fails domain validation", func(t *testing.T) {
		f := newFixture(t)
		p := params("room-1", start, start.Add(time.Hour))
		p.Title = "   "
		_, err := f.commands.CreateBooking(context.Background(), p, f.requester)
		assert.ErrorIs(t, err, errs.ErrDomainValidation)
	})

	t.Run("vehicle booking over the cap", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.commands.CreateBooking(context.Background(), params("vehicle-1", start, start.Add(9*time.Hour)), f.requester)
		assert.ErrorIs(t, err, errs.ErrDurationExceeded)
	})

	t.Run("vehicle booking exactly at the cap", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.commands.CreateBooking(context.Background(), params("vehicle-1", start, start.Add(8*time.Hour)), f.requester)
		assert.NoError(t, err)
	})

	t.Run("overlapping interval conflicts", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.commands.CreateBooking(context.Background(), params("room-1", start, start.Add(time.Hour)), f.requester)
		require.NoError(t, err)

		_, err = f.commands.CreateBooking(context.Background(), params("room-1", start.Add(30*time.Minute), start.Add(90*time.Minute)), f.requester)
		assert.ErrorIs(t, err, errs.ErrBookingConflict)
	})

	t.Run("back-to-back interval succeeds", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.commands.CreateBooking(context.Background(), params("room-1", start, start.Add(time.Hour)), f.requester)
		require.NoError(t, err)

		_, err = f.commands.CreateBooking(context.Background(), params("room-1", start.Add(time.Hour), start.Add(2*time.Hour)), f.requester)
		assert.NoError(t, err)
	})
}

func TestUpdateBooking(t *testing.T) {
	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

	create := func(t *testing.T, f *fixture, resourceID string, s, e time.Time) *queries.BookingView {
		t.Helper()
		view, err := f.commands.CreateBooking(context.Background(), params(resourceID, s, e), f.requester)
		require.NoError(t, err)
		return view
	}

	t.Run("moves the interval", func(t *testing.T) {
		f := newFixture(t)
		view := create(t, f, "room-1", start, start.Add(time.Hour))

		newStart := start.Add(3 * time.Hour)
		newEnd := newStart.Add(time.Hour)
		updated, err := f.commands.UpdateBooking(context.Background(), view.ID, f.requester.UserID(), commands.UpdateBookingPatch{
			Start: &newStart,
			End:   &newEnd,
		})
		require.NoError(t, err)
		assert.Equal(t, newStart, updated.Start)
		assert.Equal(t, newEnd, updated.End)
		assert.Equal(t, view.Title, updated.Title)
	})

	t.Run("patching only the title keeps the interval", func(t *testing.T) {
		f := newFixture(t)
		view := create(t, f, "room-1", start, start.Add(time.Hour))

		title := "Renamed"
		updated, err := f.commands.UpdateBooking(context.Background(), view.ID, f.requester.UserID(), commands.UpdateBookingPatch{
			Title: &title,
		})
		require.NoError(t, err)
		assert.Equal(t, "Renamed", updated.Title)
		assert.Equal(t, view.Start, updated.Start)
		assert.Equal(t, view.End, updated.End)
	})

	t.Run("unknown booking", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.commands.UpdateBooking(context.Background(), uuid.New(), f.requester.UserID(), commands.UpdateBookingPatch{})
		assert.ErrorIs(t, err, errs.ErrBookingNotFound)
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		f := newFixture(t)
		view := create(t, f, "room-1", start, start.Add(time.Hour))

		_, err := f.commands.UpdateBooking(context.Background(), view.ID, uuid.New(), commands.UpdateBookingPatch{})
		assert.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("too close to the stored start", func(t *testing.T) {
		f := newFixture(t)
		view := create(t, f, "room-1", start, start.Add(time.Hour))

		f.clock.Set(start.Add(-time.Hour))
		_, err := f.commands.UpdateBooking(context.Background(), view.ID, f.requester.UserID(), commands.UpdateBookingPatch{})
		assert.ErrorIs(t, err, errs.ErrCancellationTooLate)
	})

	t.Run("exactly at the deadline still passes", func(t *testing.T) {
		f := newFixture(t)
		view := create(t, f, "room-1", start, start.Add(time.Hour))

		f.clock.Set(start.Add(-2 * time.Hour))
		title := "Last minute rename"
		_, err := f.commands.UpdateBooking(context.Background(), view.ID, f.requester.UserID(), commands.UpdateBookingPatch{
			Title: &title,
		})
		assert.NoError(t, err)
	})

	t.Run("new interval conflicting with another booking", func(t *testing.T) {
		f := newFixture(t)
		create(t, f, "room-1", start, start.Add(time.Hour))
		second := create(t, f, "room-1", start.Add(2*time.Hour), start.Add(3*time.Hour))

		newStart := start.Add(30 * time.Minute)
		newEnd := newStart.Add(time.Hour)
		_, err := f.commands.UpdateBooking(context.Background(), second.ID, f.requester.UserID(), commands.UpdateBookingPatch{
			Start: &newStart,
			End:   &newEnd,
		})
		assert.ErrorIs(t, err, errs.ErrBookingConflict)
	})

	t.Run("blank patched title fails domain validation", func(t *testing.T) {
		f := newFixture(t)
		view := create(t, f, "room-1", start, start.Add(time.Hour))

		title := ""
		_, err := f.commands.UpdateBooking(context.Background(), view.ID, f.requester.UserID(), commands.UpdateBookingPatch{
			Title: &title,
		})
		assert.ErrorIs(t, err, errs.ErrDomainValidation)
	})

	t.Run("inverted patched interval", func(t *testing.T) {
		f := newFixture(t)
		view := create(t, f, "room-1", start, start.Add(time.Hour))

		badStart := start.Add(2 * time.Hour)
		_, err := f.commands.UpdateBooking(context.Background(), view.ID, f.requester.UserID(), commands.UpdateBookingPatch{
			Start: &badStart,
		})
		assert.ErrorIs(t, err, errs.ErrInvalidInterval)
	})
}

func TestCancelBooking(t *testing.T) {
	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

	t.Run("cancels and frees the interval", func(t *testing.T) {
		f := newFixture(t)
		view, err := f.commands.CreateBooking(context.Background(), params("room-1", start, start.Add(time.Hour)), f.requester)
		require.NoError(t, err)

		require.NoError(t, f.commands.CancelBooking(context.Background(), view.ID, f.requester.UserID()))

		stored, err := f.store.FindByID(view.ID)
		require.NoError(t, err)
		assert.True(t, stored.IsCancelled())

		_, err = f.commands.CreateBooking(context.Background(), params("room-1", start, start.Add(time.Hour)), f.requester)
		assert.NoError(t, err)

		assert.Eventually(t, func() bool {
			_, _, cancelled := f.notifier.counts()
			return cancelled == 1
		}, time.Second, 10*time.Millisecond)
	})

	t.Run("cancelling twice succeeds without a second notification", func(t *testing.T) {
		f := newFixture(t)
		view, err := f.commands.CreateBooking(context.Background(), params("room-1", start, start.Add(time.Hour)), f.requester)
		require.NoError(t, err)

		require.NoError(t, f.commands.CancelBooking(context.Background(), view.ID, f.requester.UserID()))
		require.NoError(t, f.commands.CancelBooking(context.Background(), view.ID, f.requester.UserID()))

		assert.Eventually(t, func() bool {
			_, _, cancelled := f.notifier.counts()
			return cancelled == 1
		}, time.Second, 10*time.Millisecond)
		_, _, cancelled := f.notifier.counts()
		assert.Equal(t, 1, cancelled)
	})

	t.Run("unknown booking", func(t *testing.T) {
		f := newFixture(t)
		err := f.commands.CancelBooking(context.Background(), uuid.New(), f.requester.UserID())
		assert.ErrorIs(t, err, errs.ErrBookingNotFound)
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		f := newFixture(t)
		view, err := f.commands.CreateBooking(context.Background(), params("room-1", start, start.Add(time.Hour)), f.requester)
		require.NoError(t, err)

		err = f.commands.CancelBooking(context.Background(), view.ID, uuid.New())
		assert.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("booking starting within the deadline cannot be cancelled", func(t *testing.T) {
		f := newFixture(t)
		view, err := f.commands.CreateBooking(context.Background(), params("room-1", start, start.Add(time.Hour)), f.requester)
		require.NoError(t, err)

		f.clock.Set(start.Add(-time.Hour))
		err = f.commands.CancelBooking(context.Background(), view.ID, f.requester.UserID())
		assert.ErrorIs(t, err, errs.ErrCancellationTooLate)
	})

	t.Run("deadline is checked against the committed start after a reschedule", func(t *testing.T) {
		f := newFixture(t)
		view, err := f.commands.CreateBooking(context.Background(), params("room-1", start, start.Add(time.Hour)), f.requester)
		require.NoError(t, err)

		// Pulling the start forward to within the deadline window is allowed;
		// the subsequent cancel must then fail against the new start.
		newStart := fixtureNow.Add(time.Hour)
		newEnd := newStart.Add(time.Hour)
		_, err = f.commands.UpdateBooking(context.Background(), view.ID, f.requester.UserID(), commands.UpdateBookingPatch{
			Start: &newStart,
			End:   &newEnd,
		})
		require.NoError(t, err)

		err = f.commands.CancelBooking(context.Background(), view.ID, f.requester.UserID())
		assert.ErrorIs(t, err, errs.ErrCancellationTooLate)
	})

	t.Run("already-started booking cannot be cancelled", func(t *testing.T) {
		f := newFixture(t)
		view, err := f.commands.CreateBooking(context.Background(), params("room-1", start, start.Add(time.Hour)), f.requester)
		require.NoError(t, err)

		f.clock.Set(start.Add(30 * time.Minute))
		err = f.commands.CancelBooking(context.Background(), view.ID, f.requester.UserID())
		assert.ErrorIs(t, err, errs.ErrCancellationTooLate)
	})
}
