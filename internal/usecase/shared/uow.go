package shared

import (
	"context"
	"time"

	"salon-booking/internal/domain/account"
	"salon-booking/internal/domain/appointment"
	"salon-booking/internal/domain/catalog"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	// LockSlots holds the critical section of every key until the transaction ends.
	// Keys are acquired in SlotKey order regardless of argument order.
	LockSlots(ctx context.Context, keys ...appointment.SlotKey) error
	Appointments() AppointmentRepository
	Accounts() AccountRepository
}

type AppointmentRepository interface {
	Create(ctx context.Context, a *appointment.Appointment) error
	UpdateStatus(ctx context.Context, a *appointment.Appointment) error
	FindByID(ctx context.Context, id uuid.UUID) (*appointment.Appointment, error)
	ListConfirmedBySlot(ctx context.Context, key appointment.SlotKey) ([]*appointment.Appointment, error)
}

type AccountRepository interface {
	Create(ctx context.Context, p *account.Profile) error
	// RememberOutlet is a no-op for identities without a profile.
	RememberOutlet(ctx context.Context, identity, outletID string, at time.Time) error
}

// CatalogProvider is the read-only source of outlets, staff, services and slot labels.
type CatalogProvider interface {
	ListOutlets(ctx context.Context) ([]catalog.Outlet, error)
	GetOutlet(ctx context.Context, outletID string) (catalog.Outlet, error)
	ListStaff(ctx context.Context, outletID string) ([]catalog.Staff, error)
	ListServices(ctx context.Context) ([]catalog.Service, error)
	TimeSlots() catalog.TimeSlots
}
