package response

import (
	"salon-booking/internal/domain/catalog"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type OutletResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Image   string `json:"image"`
}

type StaffResponse struct {
	ID       string `json:"id"`
	OutletID string `json:"outletId"`
	Name     string `json:"name"`
	Title    string `json:"title"`
	Image    string `json:"image"`
}

type ServiceResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	DurationMinutes int    `json:"durationMinutes"`
	PriceCents      int64  `json:"priceCents"`
}

type BookableDateResponse struct {
	Date    string `json:"date"`
	Weekday string `json:"weekday"`
	IsToday bool   `json:"isToday"`
}

func FromOutlets(outlets []catalog.Outlet) ([]OutletResponse, error) {
	out := make([]OutletResponse, 0, len(outlets))
	if err := copier.Copy(&out, &outlets); err != nil {
		return nil, errs.Wrap(err, "copy outlets")
	}
	return out, nil
}

func FromStaff(staff []catalog.Staff) ([]StaffResponse, error) {
	out := make([]StaffResponse, 0, len(staff))
	if err := copier.Copy(&out, &staff); err != nil {
		return nil, errs.Wrap(err, "copy staff")
	}
	return out, nil
}

func FromServices(services []catalog.Service) ([]ServiceResponse, error) {
	out := make([]ServiceResponse, 0, len(services))
	if err := copier.Copy(&out, &services); err != nil {
		return nil, errs.Wrap(err, "copy services")
	}
	return out, nil
}

func FromBookableDates(dates []queries.BookableDate) ([]BookableDateResponse, error) {
	out := make([]BookableDateResponse, 0, len(dates))
	if err := copier.Copy(&out, &dates); err != nil {
		return nil, errs.Wrap(err, "copy bookable dates")
	}
	return out, nil
}
