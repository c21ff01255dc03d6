package bootstrap

import (
	"salon-booking/internal/pkg/config"

	"go.uber.org/fx"
)

// ConfigModule supplies the configuration loaded by main so that the module graph can be
// chosen from it before fx starts.
func ConfigModule(cfg config.Config) fx.Option {
	return fx.Module("config",
		fx.Supply(cfg),
	)
}
