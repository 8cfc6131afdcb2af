package components

import (
	"resource-booker/internal/infra/memstore"
	"resource-booker/internal/jobs"
	"resource-booker/internal/notify"
	"resource-booker/internal/pkg/config"
	"resource-booker/internal/usecase/commands"
	"resource-booker/internal/usecase/queries"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		fx.Annotate(
			memstore.NewBookingStore,
			fx.As(new(commands.BookingWriteStore)),
			fx.As(new(queries.BookingReadStore)),
			fx.As(new(notify.CalendarEventRecorder)),
			fx.As(new(jobs.BookingSource)),
		),
		fx.Annotate(
			NewResourceCatalog,
			fx.As(new(commands.ResourceStore)),
			fx.As(new(queries.ResourceReadStore)),
		),
	),
)

func NewResourceCatalog(cfg config.BookingConfig) (*memstore.ResourceCatalog, error) {
	seeds, err := config.LoadResourceSeeds(cfg.ResourceSeedPath, cfg.MaxVehicleBookingHours)
	if err != nil {
		return nil, err
	}
	return memstore.NewResourceCatalog(seeds)
}
