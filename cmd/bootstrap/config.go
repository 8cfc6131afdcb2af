package bootstrap

import (
	"resource-booker/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.AuthConfig { return cfg.Auth },
		func(cfg config.Config) config.BookingConfig { return cfg.Booking },
		func(cfg config.Config) config.MailConfig { return cfg.Mail },
		func(cfg config.Config) config.SchedulerConfig { return cfg.Scheduler },
	),
)
