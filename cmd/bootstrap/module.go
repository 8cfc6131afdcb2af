package bootstrap

import (
	"resource-booker/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	components.StoreModule,
	components.NotifyModule,
	components.UseCaseModule,
	components.JobsModule,
	components.HandlerModule,
)
