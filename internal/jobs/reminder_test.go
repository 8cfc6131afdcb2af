//go:build unit

package jobs_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"resource-booker/internal/domain/booking"
	"resource-booker/internal/jobs"
	"resource-booker/internal/pkg/clock"
	"resource-booker/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	bookings []*booking.Booking
}

func (f *fakeSource) ListAll() []*booking.Booking {
	return f.bookings
}

type recordingMailer struct {
	reminders []*booking.Booking
	failNext  bool
}

func (m *recordingMailer) SendConfirmation(context.Context, *booking.Booking) error { return nil }
func (m *recordingMailer) SendCancellation(context.Context, *booking.Booking) error { return nil }

func (m *recordingMailer) SendReminder(_ context.Context, b *booking.Booking) error {
	if m.failNext {
		m.failNext = false
		return errors.New("smtp unavailable")
	}
	m.reminders = append(m.reminders, b)
	return nil
}

func reminderBooking(t *testing.T, start time.Time) *booking.Booking {
	t.Helper()
	entity, err := builder.NewBookingBuilder().
		WithSlot(start, start.Add(time.Hour)).
		WithNow(start.Add(-24 * time.Hour)).
		BuildDomain()
	require.NoError(t, err)
	return entity
}

func TestReminderJobRun(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("reminds confirmed bookings inside the window", func(t *testing.T) {
		soon := reminderBooking(t, now.Add(30*time.Minute))
		source := &fakeSource{bookings: []*booking.Booking{soon}}
		mailer := &recordingMailer{}
		job := jobs.NewReminderJob(source, mailer, clock.NewMockClock(now), time.Hour, logger)

		job.Run()

		require.Len(t, mailer.reminders, 1)
		assert.Equal(t, soon.ID(), mailer.reminders[0].ID())
	})

	t.Run("skips bookings outside the window", func(t *testing.T) {
		later := reminderBooking(t, now.Add(2*time.Hour))
		source := &fakeSource{bookings: []*booking.Booking{later}}
		mailer := &recordingMailer{}
		job := jobs.NewReminderJob(source, mailer, clock.NewMockClock(now), time.Hour, logger)

		job.Run()
		assert.Empty(t, mailer.reminders)
	})

	t.Run("skips bookings that already started", func(t *testing.T) {
		started := reminderBooking(t, now.Add(-10*time.Minute))
		source := &fakeSource{bookings: []*booking.Booking{started}}
		mailer := &recordingMailer{}
		job := jobs.NewReminderJob(source, mailer, clock.NewMockClock(now), time.Hour, logger)

		job.Run()
		assert.Empty(t, mailer.reminders)
	})

	t.Run("skips cancelled bookings", func(t *testing.T) {
		cancelled := reminderBooking(t, now.Add(30*time.Minute))
		cancelled.MarkCancelled(now)
		source := &fakeSource{bookings: []*booking.Booking{cancelled}}
		mailer := &recordingMailer{}
		job := jobs.NewReminderJob(source, mailer, clock.NewMockClock(now), time.Hour, logger)

		job.Run()
		assert.Empty(t, mailer.reminders)
	})

	t.Run("reminds each booking at most once", func(t *testing.T) {
		soon := reminderBooking(t, now.Add(30*time.Minute))
		source := &fakeSource{bookings: []*booking.Booking{soon}}
		mailer := &recordingMailer{}
		job := jobs.NewReminderJob(source, mailer, clock.NewMockClock(now), time.Hour, logger)

		job.Run()
		job.Run()
		assert.Len(t, mailer.reminders, 1)
	})

	t.Run("a failed send is retried on the next run", func(t *testing.T) {
		soon := reminderBooking(t, now.Add(30*time.Minute))
		source := &fakeSource{bookings: []*booking.Booking{soon}}
		mailer := &recordingMailer{failNext: true}
		job := jobs.NewReminderJob(source, mailer, clock.NewMockClock(now), time.Hour, logger)

		job.Run()
		assert.Empty(t, mailer.reminders)

		job.Run()
		assert.Len(t, mailer.reminders, 1)
	})
}
