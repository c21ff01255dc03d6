package components

import (
	"salon-booking/internal/handler"
	"salon-booking/internal/handler/api"
	reqdto "salon-booking/internal/handler/dto/request"
	"salon-booking/internal/handler/middleware"
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewAppointmentHandler,
		api.NewCatalogHandler,
		api.NewAccountHandler,
		handler.NewHandlers,
		middleware.NewAuthMiddleware,
		func(cfg config.Config, clk clock.Clock) *middleware.RateLimiter {
			return middleware.NewRateLimiter(cfg.RateLimit, clk)
		},
	),
	fx.Invoke(
		reqdto.RegisterValidators,
		handler.NewRouter,
	),
)
