package catalog

import (
	"context"
	"slices"

	"salon-booking/internal/domain/catalog"
)

// StaticProvider serves a fixed catalog held in memory.
type StaticProvider struct {
	outlets  []catalog.Outlet
	staff    []catalog.Staff
	services []catalog.Service
	slots    catalog.TimeSlots
}

func NewStaticProvider(outlets []catalog.Outlet, staff []catalog.Staff, services []catalog.Service, slots catalog.TimeSlots) *StaticProvider {
	return &StaticProvider{
		outlets:  slices.Clone(outlets),
		staff:    slices.Clone(staff),
		services: slices.Clone(services),
		slots:    slots,
	}
}

// NewDefaultProvider serves the built-in salon catalog with the configured slot labels.
func NewDefaultProvider(slots catalog.TimeSlots) *StaticProvider {
	return NewStaticProvider(DefaultOutlets(), DefaultStaff(), DefaultServices(), slots)
}

func (p *StaticProvider) ListOutlets(_ context.Context) ([]catalog.Outlet, error) {
	return slices.Clone(p.outlets), nil
}

func (p *StaticProvider) GetOutlet(_ context.Context, outletID string) (catalog.Outlet, error) {
	for _, o := range p.outlets {
		if o.ID == outletID {
			return o, nil
		}
	}
	return catalog.Outlet{}, catalog.ErrOutletNotFound
}

func (p *StaticProvider) ListStaff(_ context.Context, outletID string) ([]catalog.Staff, error) {
	out := make([]catalog.Staff, 0)
	for _, s := range p.staff {
		if s.OutletID == outletID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (p *StaticProvider) ListServices(_ context.Context) ([]catalog.Service, error) {
	return slices.Clone(p.services), nil
}

func (p *StaticProvider) TimeSlots() catalog.TimeSlots {
	return p.slots
}

func DefaultOutlets() []catalog.Outlet {
	return []catalog.Outlet{
		{ID: "o1", Name: "Bangsar", Address: "12 Jalan Telawi 3, Bangsar Baru, Kuala Lumpur", Image: "/images/outlets/bangsar.jpg"},
		{ID: "o2", Name: "Mont Kiara", Address: "1 Jalan Kiara, Mont Kiara, Kuala Lumpur", Image: "/images/outlets/mont-kiara.jpg"},
		{ID: "o3", Name: "Petaling Jaya", Address: "8 Jalan SS 21/37, Damansara Utama, Petaling Jaya", Image: "/images/outlets/pj.jpg"},
	}
}

func DefaultStaff() []catalog.Staff {
	return []catalog.Staff{
		{ID: "s1", OutletID: "o1", Name: "Aiman", Title: "Senior Barber", Image: "/images/staff/aiman.jpg"},
		{ID: "s2", OutletID: "o1", Name: "Daniel", Title: "Barber", Image: "/images/staff/daniel.jpg"},
		{ID: "s3", OutletID: "o1", Name: "Hafiz", Title: "Junior Barber", Image: "/images/staff/hafiz.jpg"},
		{ID: "s4", OutletID: "o2", Name: "Marcus", Title: "Master Barber", Image: "/images/staff/marcus.jpg"},
		{ID: "s5", OutletID: "o2", Name: "Wei Jie", Title: "Barber", Image: "/images/staff/wei-jie.jpg"},
		{ID: "s6", OutletID: "o3", Name: "Ravi", Title: "Senior Barber", Image: "/images/staff/ravi.jpg"},
	}
}

func DefaultServices() []catalog.Service {
	return []catalog.Service{
		{ID: "svc1", Name: "Haircut", DurationMinutes: 45, PriceCents: 4500},
		{ID: "svc2", Name: "Hair Wash", DurationMinutes: 15, PriceCents: 1500},
		{ID: "svc3", Name: "Beard Trim", DurationMinutes: 20, PriceCents: 2000},
		{ID: "svc4", Name: "Hot Towel Shave", DurationMinutes: 30, PriceCents: 3500},
		{ID: "svc5", Name: "Hair Colouring", DurationMinutes: 60, PriceCents: 12000},
	}
}
