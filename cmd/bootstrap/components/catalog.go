package components

import (
	"salon-booking/internal/domain/appointment"
	domaincatalog "salon-booking/internal/domain/catalog"
	"salon-booking/internal/infra/catalog"
	"salon-booking/internal/pkg/config"
	"salon-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var CatalogModule = fx.Module("catalog",
	fx.Provide(
		NewTimeSlots,
		NewBookingWindow,
		fx.Annotate(
			catalog.NewDefaultProvider,
			fx.As(new(shared.CatalogProvider)),
		),
	),
)

func NewTimeSlots(cfg config.Config) (domaincatalog.TimeSlots, error) {
	return domaincatalog.NewTimeSlots(cfg.Booking.TimeSlots)
}

func NewBookingWindow(cfg config.Config, slots domaincatalog.TimeSlots) appointment.BookingWindow {
	return appointment.BookingWindow{
		Days:     cfg.Booking.WindowDays,
		Location: cfg.Booking.Location(),
		Slots:    slots,
	}
}
