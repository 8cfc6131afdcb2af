package jobs

import (
	"log/slog"
	"time"

	"resource-booker/internal/pkg/config"

	"github.com/robfig/cron/v3"
)

// Scheduler manages cron job scheduling
type Scheduler struct {
	cron   *cron.Cron
	logger *slog.Logger
}

func NewScheduler(cfg config.SchedulerConfig, reminder *ReminderJob, logger *slog.Logger) *Scheduler {
	c := cron.New(
		cron.WithLocation(time.Local),
		cron.WithSeconds(),
	)

	s := &Scheduler{
		cron:   c,
		logger: logger,
	}

	if _, err := c.AddFunc(cfg.ReminderSpec, reminder.Run); err != nil {
		logger.Error("failed to register reminder job", "spec", cfg.ReminderSpec, "error", err)
	}

	return s
}

func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("scheduler started", "jobs", len(s.cron.Entries()))
}

// Stop waits for in-flight jobs before returning.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("scheduler stopped")
}
