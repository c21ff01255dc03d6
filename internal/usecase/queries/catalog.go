package queries

import (
	"context"
	"errors"

	"salon-booking/internal/domain/appointment"
	"salon-booking/internal/domain/catalog"
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase/shared"
)

var (
	ErrOutletNotFound = errs.New("outlet not found")
	ErrCatalogFailed  = errs.New("catalog lookup failed")
)

type BookableDate struct {
	Date    string `json:"date"`
	Weekday string `json:"weekday"`
	IsToday bool   `json:"isToday"`
}

//go:generate mockgen -source=catalog.go -destination=../../../tests/mock/queries/catalog.go -package=queriesmock

type CatalogQueries interface {
	ListOutlets(ctx context.Context) ([]catalog.Outlet, error)
	ListStaff(ctx context.Context, outletID string) ([]catalog.Staff, error)
	ListServices(ctx context.Context) ([]catalog.Service, error)
	ListTimeSlots(ctx context.Context) []string
	BookableDates(ctx context.Context) []BookableDate
}

type catalogQueriesImpl struct {
	provider shared.CatalogProvider
	window   appointment.BookingWindow
	clock    clock.Clock
}

func NewCatalogQueries(provider shared.CatalogProvider, window appointment.BookingWindow, clk clock.Clock) CatalogQueries {
	return &catalogQueriesImpl{
		provider: provider,
		window:   window,
		clock:    clk,
	}
}

func (q *catalogQueriesImpl) ListOutlets(ctx context.Context) ([]catalog.Outlet, error) {
	outlets, err := q.provider.ListOutlets(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrCatalogFailed)
	}
	return outlets, nil
}

func (q *catalogQueriesImpl) ListStaff(ctx context.Context, outletID string) ([]catalog.Staff, error) {
	if _, err := q.provider.GetOutlet(ctx, outletID); err != nil {
		if errors.Is(err, catalog.ErrOutletNotFound) {
			return nil, errs.Mark(err, ErrOutletNotFound)
		}
		return nil, errs.Mark(err, ErrCatalogFailed)
	}

	staff, err := q.provider.ListStaff(ctx, outletID)
	if err != nil {
		return nil, errs.Mark(err, ErrCatalogFailed)
	}
	return staff, nil
}

func (q *catalogQueriesImpl) ListServices(ctx context.Context) ([]catalog.Service, error) {
	services, err := q.provider.ListServices(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrCatalogFailed)
	}
	return services, nil
}

func (q *catalogQueriesImpl) ListTimeSlots(_ context.Context) []string {
	return q.provider.TimeSlots().Labels()
}

func (q *catalogQueriesImpl) BookableDates(_ context.Context) []BookableDate {
	now := q.clock.Now()
	today := q.window.Today(now)

	dates := q.window.Dates(now)
	out := make([]BookableDate, 0, len(dates))
	for _, d := range dates {
		out = append(out, BookableDate{
			Date:    d.String(),
			Weekday: d.Weekday().String()[:3],
			IsToday: d.Equal(today),
		})
	}
	return out
}
