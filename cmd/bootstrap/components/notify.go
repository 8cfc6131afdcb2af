package components

import (
	"resource-booker/internal/notify"
	"resource-booker/internal/usecase/commands"

	"go.uber.org/fx"
)

var NotifyModule = fx.Module("notify",
	fx.Provide(
		fx.Annotate(
			notify.NewStubCalendar,
			fx.As(new(notify.CalendarSink)),
		),
		notify.NewMailer,
		fx.Annotate(
			notify.NewDispatcher,
			fx.As(new(commands.Notifier)),
		),
	),
)
