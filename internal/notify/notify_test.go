//go:build unit

package notify_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"resource-booker/internal/domain/booking"
	"resource-booker/internal/notify"
	"resource-booker/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCalendar struct {
	created []uuid.UUID
	updated []string
	deleted []string
	fail    bool
}

func (f *fakeCalendar) CreateEvent(_ context.Context, b *booking.Booking) (string, error) {
	if f.fail {
		return "", errors.New("calendar unreachable")
	}
	f.created = append(f.created, b.ID())
	return "outlook-" + b.ID().String(), nil
}

func (f *fakeCalendar) UpdateEvent(_ context.Context, eventID string, _ *booking.Booking) error {
	if f.fail {
		return errors.New("calendar unreachable")
	}
	f.updated = append(f.updated, eventID)
	return nil
}

func (f *fakeCalendar) DeleteEvent(_ context.Context, eventID string) error {
	if f.fail {
		return errors.New("calendar unreachable")
	}
	f.deleted = append(f.deleted, eventID)
	return nil
}

type fakeMailer struct {
	confirmations int
	cancellations int
}

func (m *fakeMailer) SendConfirmation(context.Context, *booking.Booking) error {
	m.confirmations++
	return nil
}

func (m *fakeMailer) SendCancellation(context.Context, *booking.Booking) error {
	m.cancellations++
	return nil
}

func (m *fakeMailer) SendReminder(context.Context, *booking.Booking) error { return nil }

type fakeRecorder struct {
	attached map[uuid.UUID]string
}

func (r *fakeRecorder) AttachCalendarEvent(id uuid.UUID, eventID string) error {
	if r.attached == nil {
		r.attached = make(map[uuid.UUID]string)
	}
	r.attached[id] = eventID
	return nil
}

func newTestBooking(t *testing.T) *booking.Booking {
	t.Helper()
	entity, err := builder.NewBookingBuilder().BuildDomain()
	require.NoError(t, err)
	return entity
}

func TestDispatcherBookingCreated(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("syncs the calendar, records the event id and mails", func(t *testing.T) {
		calendar := &fakeCalendar{}
		mailer := &fakeMailer{}
		recorder := &fakeRecorder{}
		d := notify.NewDispatcher(calendar, mailer, recorder, logger)

		b := newTestBooking(t)
		d.BookingCreated(context.Background(), b)

		require.Len(t, calendar.created, 1)
		assert.Equal(t, "outlook-"+b.ID().String(), recorder.attached[b.ID()])
		assert.Equal(t, 1, mailer.confirmations)
	})

	t.Run("calendar failure still sends the confirmation mail", func(t *testing.T) {
		calendar := &fakeCalendar{fail: true}
		mailer := &fakeMailer{}
		recorder := &fakeRecorder{}
		d := notify.NewDispatcher(calendar, mailer, recorder, logger)

		d.BookingCreated(context.Background(), newTestBooking(t))

		assert.Empty(t, recorder.attached)
		assert.Equal(t, 1, mailer.confirmations)
	})
}

func TestDispatcherBookingUpdated(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("updates the linked calendar event", func(t *testing.T) {
		calendar := &fakeCalendar{}
		d := notify.NewDispatcher(calendar, &fakeMailer{}, &fakeRecorder{}, logger)

		b := newTestBooking(t)
		b.AttachCalendarEvent("outlook-abc")
		d.BookingUpdated(context.Background(), b)

		assert.Equal(t, []string{"outlook-abc"}, calendar.updated)
	})

	t.Run("no linked event means no calendar call", func(t *testing.T) {
		calendar := &fakeCalendar{}
		d := notify.NewDispatcher(calendar, &fakeMailer{}, &fakeRecorder{}, logger)

		d.BookingUpdated(context.Background(), newTestBooking(t))
		assert.Empty(t, calendar.updated)
	})
}

func TestDispatcherBookingCancelled(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("deletes the linked event and mails", func(t *testing.T) {
		calendar := &fakeCalendar{}
		mailer := &fakeMailer{}
		d := notify.NewDispatcher(calendar, mailer, &fakeRecorder{}, logger)

		b := newTestBooking(t)
		b.AttachCalendarEvent("outlook-abc")
		b.MarkCancelled(time.Now())
		d.BookingCancelled(context.Background(), b)

		assert.Equal(t, []string{"outlook-abc"}, calendar.deleted)
		assert.Equal(t, 1, mailer.cancellations)
	})

	t.Run("mails even without a linked event", func(t *testing.T) {
		calendar := &fakeCalendar{}
		mailer := &fakeMailer{}
		d := notify.NewDispatcher(calendar, mailer, &fakeRecorder{}, logger)

		d.BookingCancelled(context.Background(), newTestBooking(t))

		assert.Empty(t, calendar.deleted)
		assert.Equal(t, 1, mailer.cancellations)
	})
}
