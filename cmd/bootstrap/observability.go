package bootstrap

import (
	"salon-booking/internal/handler/middleware"
	"salon-booking/internal/infra/metrics"
	"salon-booking/internal/usecase/commands"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"
)

var ObservabilityModule = fx.Module("observability",
	fx.Provide(
		NewRegistry,
		func(r *prometheus.Registry) prometheus.Registerer { return r },
		func(r *prometheus.Registry) prometheus.Gatherer { return r },
		fx.Annotate(
			metrics.NewMetrics,
			fx.As(new(commands.AuthMetrics)),
			fx.As(new(commands.BookingMetrics)),
			fx.As(new(middleware.HTTPMetrics)),
		),
	),
)

func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}
