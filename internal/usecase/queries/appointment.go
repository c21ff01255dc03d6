package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"salon-booking/internal/domain/appointment"
	"salon-booking/internal/domain/catalog"
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase/shared"
)

var ErrAppointmentListFailed = errs.New("failed to list appointments")

//go:generate mockgen -source=appointment.go -destination=../../../tests/mock/queries/appointment.go -package=queriesmock

type AppointmentReadStore interface {
	ListByOwner(ctx context.Context, owner string) ([]*appointment.Appointment, error)
}

type StaffView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ServiceView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type AppointmentView struct {
	ID             uuid.UUID     `json:"id"`
	OutletID       string        `json:"outletId"`
	OutletName     string        `json:"outletName"`
	Date           string        `json:"date"`
	TimeSlot       string        `json:"timeSlot"`
	StartsAt       time.Time     `json:"startsAt"`
	Staff          *StaffView    `json:"staff,omitempty"`
	AssignmentType string        `json:"assignmentType"`
	Services       []ServiceView `json:"services"`
	Status         string        `json:"status"`
	CreatedAt      time.Time     `json:"createdAt"`
	CancelledAt    *time.Time    `json:"cancelledAt,omitempty"`
}

type AppointmentList struct {
	Upcoming []*AppointmentView `json:"upcoming"`
	Past     []*AppointmentView `json:"past"`
}

type AppointmentQueries interface {
	ListForIdentity(ctx context.Context, identity string) (*AppointmentList, error)
}

type appointmentQueriesImpl struct {
	readStore AppointmentReadStore
	presenter *AppointmentPresenter
	window    appointment.BookingWindow
	clock     clock.Clock
}

func NewAppointmentQueries(readStore AppointmentReadStore, presenter *AppointmentPresenter, window appointment.BookingWindow, clk clock.Clock) AppointmentQueries {
	return &appointmentQueriesImpl{
		readStore: readStore,
		presenter: presenter,
		window:    window,
		clock:     clk,
	}
}

func (q *appointmentQueriesImpl) ListForIdentity(ctx context.Context, identity string) (*AppointmentList, error) {
	items, err := q.readStore.ListByOwner(ctx, identity)
	if err != nil {
		return nil, errs.Mark(err, ErrAppointmentListFailed)
	}

	now := q.clock.Now()
	upcoming, past := appointment.Partition(items, now, q.window)

	list := &AppointmentList{
		Upcoming: make([]*AppointmentView, 0, len(upcoming)),
		Past:     make([]*AppointmentView, 0, len(past)),
	}
	for _, a := range upcoming {
		list.Upcoming = append(list.Upcoming, q.presenter.Present(ctx, a, now))
	}
	for _, a := range past {
		list.Past = append(list.Past, q.presenter.Present(ctx, a, now))
	}
	return list, nil
}

// AppointmentPresenter resolves catalog names and the derived status for a stored appointment.
type AppointmentPresenter struct {
	catalog shared.CatalogProvider
	window  appointment.BookingWindow
}

func NewAppointmentPresenter(provider shared.CatalogProvider, window appointment.BookingWindow) *AppointmentPresenter {
	return &AppointmentPresenter{catalog: provider, window: window}
}

// Present never fails: ids the catalog no longer knows are shown without a name.
func (p *AppointmentPresenter) Present(ctx context.Context, a *appointment.Appointment, now time.Time) *AppointmentView {
	startsAt := p.window.StartsAt(a.Date(), a.TimeSlot())
	view := &AppointmentView{
		ID:             a.ID(),
		OutletID:       a.OutletID(),
		Date:           a.Date().String(),
		TimeSlot:       a.TimeSlot(),
		StartsAt:       startsAt,
		AssignmentType: a.AssignmentType().String(),
		Status:         a.EffectiveStatus(now, startsAt).String(),
		CreatedAt:      a.CreatedAt(),
		CancelledAt:    a.CancelledAt(),
	}

	if outlet, err := p.catalog.GetOutlet(ctx, a.OutletID()); err == nil {
		view.OutletName = outlet.Name
	}

	if staffID := a.StaffID(); staffID != nil {
		view.Staff = &StaffView{ID: *staffID}
		if staff, err := p.catalog.ListStaff(ctx, a.OutletID()); err == nil {
			for _, s := range staff {
				if s.ID == *staffID {
					view.Staff.Name = s.Name
					break
				}
			}
		}
	}

	names := map[string]string{}
	if services, err := p.catalog.ListServices(ctx); err == nil {
		names = serviceNames(services)
	}
	for _, id := range a.ServiceIDs().Values() {
		view.Services = append(view.Services, ServiceView{ID: id, Name: names[id]})
	}
	return view
}

func serviceNames(services []catalog.Service) map[string]string {
	names := make(map[string]string, len(services))
	for _, s := range services {
		names[s.ID] = s.Name
	}
	return names
}
