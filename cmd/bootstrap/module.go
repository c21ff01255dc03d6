package bootstrap

import (
	"salon-booking/cmd/bootstrap/components"
	"salon-booking/internal/pkg/config"

	"go.uber.org/fx"
)

// NewModule assembles the application graph. Storage backends are picked from the
// configuration so that an unused Postgres or Redis is never dialled.
func NewModule(cfg config.Config) fx.Option {
	opts := []fx.Option{
		ConfigModule(cfg),
		ObservabilityModule,
		LoggerModule,
		components.ClockModule,
		JWTModule,
	}

	switch cfg.Storage.AppointmentDriver {
	case config.DriverMemory:
		opts = append(opts, components.MemoryPersistenceModule)
	default:
		opts = append(opts, DBModule, components.PostgresPersistenceModule)
	}

	switch cfg.Storage.SessionDriver {
	case config.DriverMemory:
		opts = append(opts, components.MemorySessionModule)
	default:
		opts = append(opts, RedisModule, components.RedisSessionModule)
	}

	opts = append(opts,
		components.CatalogModule,
		components.DispatchModule,
		components.UseCaseModule,
		components.HandlerModule,
	)
	return fx.Options(opts...)
}
