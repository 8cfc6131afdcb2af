package components

import (
	"context"
	"log/slog"

	"resource-booker/internal/jobs"
	"resource-booker/internal/notify"
	"resource-booker/internal/pkg/clock"
	"resource-booker/internal/pkg/config"

	"go.uber.org/fx"
)

var JobsModule = fx.Module("jobs",
	fx.Provide(
		NewReminderJob,
		jobs.NewScheduler,
	),
	fx.Invoke(registerScheduler),
)

func NewReminderJob(
	cfg config.SchedulerConfig,
	source jobs.BookingSource,
	mailer notify.Mailer,
	clk clock.Clock,
	logger *slog.Logger,
) *jobs.ReminderJob {
	return jobs.NewReminderJob(source, mailer, clk, cfg.ReminderWindow, logger)
}

func registerScheduler(lc fx.Lifecycle, cfg config.SchedulerConfig, scheduler *jobs.Scheduler) {
	if !cfg.Enabled {
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			scheduler.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			scheduler.Stop()
			return nil
		},
	})
}
