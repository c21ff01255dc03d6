package memory

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"salon-booking/internal/domain/account"
	"salon-booking/internal/domain/appointment"
	"salon-booking/internal/infra"
	"salon-booking/internal/pkg/keylock"
	"salon-booking/internal/usecase/shared"
)

// Store keeps appointments and accounts in process. Writes are staged per unit of work and
// applied atomically on commit, so a failed unit of work leaves nothing behind.
type Store struct {
	mu           sync.RWMutex
	appointments map[uuid.UUID]*appointment.Appointment
	accounts     map[string]*account.Profile
	slots        *keylock.Local
	logger       *slog.Logger
}

func NewStore(logger *slog.Logger) *Store {
	return &Store{
		appointments: make(map[uuid.UUID]*appointment.Appointment),
		accounts:     make(map[string]*account.Profile),
		slots:        keylock.NewLocal(),
		logger:       logger,
	}
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	tx := &memTx{
		store:        s,
		appointments: make(map[uuid.UUID]*appointment.Appointment),
		accounts:     make(map[string]*account.Profile),
		created:      make(map[string]struct{}),
		held:         make(map[string]func()),
	}
	defer tx.unlockAll()

	if err := fn(ctx, tx); err != nil {
		return err
	}
	return tx.commit()
}

// ListByOwner returns every stored appointment of owner in no particular order.
func (s *Store) ListByOwner(_ context.Context, owner string) ([]*appointment.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]*appointment.Appointment, 0)
	for _, a := range s.appointments {
		if a.OwnedBy(owner) {
			items = append(items, cloneAppointment(a))
		}
	}
	return items, nil
}

func (s *Store) FindByIdentity(_ context.Context, identity string) (*account.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.accounts[identity]
	if !ok {
		return nil, nil
	}
	return cloneProfile(p), nil
}

type memTx struct {
	store        *Store
	appointments map[uuid.UUID]*appointment.Appointment
	accounts     map[string]*account.Profile
	created      map[string]struct{}
	held         map[string]func()
}

func (t *memTx) LockSlots(ctx context.Context, keys ...appointment.SlotKey) error {
	for _, key := range appointment.SortSlotKeys(keys) {
		k := key.String()
		if _, ok := t.held[k]; ok {
			continue
		}
		unlock, err := t.store.slots.Lock(ctx, k)
		if err != nil {
			return err
		}
		t.held[k] = unlock
	}
	return nil
}

func (t *memTx) Appointments() shared.AppointmentRepository { return (*appointmentRepo)(t) }
func (t *memTx) Accounts() shared.AccountRepository         { return (*accountRepo)(t) }

func (t *memTx) unlockAll() {
	for k, unlock := range t.held {
		unlock()
		delete(t.held, k)
	}
}

func (t *memTx) commit() error {
	s := t.store
	s.mu.Lock()
	defer s.mu.Unlock()

	// Same guarantee as the partial unique index on the Postgres side.
	for _, staged := range t.appointments {
		if conflict := s.collides(staged, t.appointments); conflict {
			return infra.WrapRepoErr(s.logger, infra.KindDuplicateKey, "staff already booked for slot", nil)
		}
	}

	for identity := range t.created {
		if _, exists := s.accounts[identity]; exists {
			return infra.WrapRepoErr(s.logger, infra.KindDuplicateKey, "account already exists", nil)
		}
	}

	for id, a := range t.appointments {
		s.appointments[id] = a
	}
	for identity, p := range t.accounts {
		s.accounts[identity] = p
	}
	return nil
}

// collides must be called with mu held.
func (s *Store) collides(a *appointment.Appointment, staged map[uuid.UUID]*appointment.Appointment) bool {
	staffID := a.StaffID()
	if !a.IsConfirmed() || staffID == nil {
		return false
	}
	check := func(other *appointment.Appointment) bool {
		return other.ID() != a.ID() && other.SlotKey().String() == a.SlotKey().String() && other.Occupies(*staffID)
	}
	for id, other := range s.appointments {
		if override, ok := staged[id]; ok {
			other = override
		}
		if check(other) {
			return true
		}
	}
	for id, other := range staged {
		if _, committed := s.appointments[id]; !committed && check(other) {
			return true
		}
	}
	return false
}

func (t *memTx) lookupAppointment(id uuid.UUID) (*appointment.Appointment, bool) {
	if a, ok := t.appointments[id]; ok {
		return a, true
	}
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()
	a, ok := t.store.appointments[id]
	return a, ok
}

type appointmentRepo memTx

func (r *appointmentRepo) Create(_ context.Context, a *appointment.Appointment) error {
	t := (*memTx)(r)
	if _, exists := t.lookupAppointment(a.ID()); exists {
		return infra.WrapRepoErr(t.store.logger, infra.KindDuplicateKey, "appointment already exists", nil)
	}
	t.appointments[a.ID()] = cloneAppointment(a)
	return nil
}

func (r *appointmentRepo) UpdateStatus(_ context.Context, a *appointment.Appointment) error {
	t := (*memTx)(r)
	current, ok := t.lookupAppointment(a.ID())
	if !ok {
		return infra.WrapRepoErr(t.store.logger, infra.KindNotFound, "appointment not found", nil)
	}
	t.appointments[a.ID()] = appointment.ReconstructAppointment(
		current.ID(),
		current.Owner(),
		current.OutletID(),
		current.Date(),
		current.TimeSlot(),
		current.StaffID(),
		current.AssignmentType(),
		current.ServiceIDs(),
		a.Status(),
		current.CreatedAt(),
		a.CancelledAt(),
	)
	return nil
}

func (r *appointmentRepo) FindByID(_ context.Context, id uuid.UUID) (*appointment.Appointment, error) {
	t := (*memTx)(r)
	a, ok := t.lookupAppointment(id)
	if !ok {
		return nil, infra.WrapRepoErr(t.store.logger, infra.KindNotFound, "appointment not found", nil)
	}
	return cloneAppointment(a), nil
}

func (r *appointmentRepo) ListConfirmedBySlot(_ context.Context, key appointment.SlotKey) ([]*appointment.Appointment, error) {
	t := (*memTx)(r)
	slot := key.String()
	merged := make(map[uuid.UUID]*appointment.Appointment)

	t.store.mu.RLock()
	for id, a := range t.store.appointments {
		if a.SlotKey().String() == slot {
			merged[id] = a
		}
	}
	t.store.mu.RUnlock()
	for id, a := range t.appointments {
		if a.SlotKey().String() == slot {
			merged[id] = a
		}
	}

	out := make([]*appointment.Appointment, 0, len(merged))
	for _, a := range merged {
		if a.IsConfirmed() {
			out = append(out, cloneAppointment(a))
		}
	}
	slices.SortFunc(out, func(a, b *appointment.Appointment) int {
		return a.CreatedAt().Compare(b.CreatedAt())
	})
	return out, nil
}

type accountRepo memTx

func (r *accountRepo) Create(_ context.Context, p *account.Profile) error {
	t := (*memTx)(r)
	if _, exists := t.lookupAccount(p.Identity()); exists {
		return infra.WrapRepoErr(t.store.logger, infra.KindDuplicateKey, "account already exists", nil)
	}
	t.accounts[p.Identity()] = cloneProfile(p)
	t.created[p.Identity()] = struct{}{}
	return nil
}

func (r *accountRepo) RememberOutlet(_ context.Context, identity, outletID string, at time.Time) error {
	t := (*memTx)(r)
	p, ok := t.lookupAccount(identity)
	if !ok {
		return nil
	}
	updated := cloneProfile(p)
	updated.RememberOutlet(outletID, at)
	t.accounts[identity] = updated
	return nil
}

func (t *memTx) lookupAccount(identity string) (*account.Profile, bool) {
	if p, ok := t.accounts[identity]; ok {
		return p, true
	}
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()
	p, ok := t.store.accounts[identity]
	return p, ok
}

func cloneAppointment(a *appointment.Appointment) *appointment.Appointment {
	var cancelledAt *time.Time
	if at := a.CancelledAt(); at != nil {
		v := *at
		cancelledAt = &v
	}
	return appointment.ReconstructAppointment(
		a.ID(),
		a.Owner(),
		a.OutletID(),
		a.Date(),
		a.TimeSlot(),
		a.StaffID(),
		a.AssignmentType(),
		a.ServiceIDs(),
		a.Status(),
		a.CreatedAt(),
		cancelledAt,
	)
}

func cloneProfile(p *account.Profile) *account.Profile {
	var lastOutlet *string
	if id := p.LastOutletID(); id != nil {
		v := *id
		lastOutlet = &v
	}
	return account.ReconstructProfile(
		p.Identity(),
		p.Name(),
		p.DOB(),
		p.Gender(),
		lastOutlet,
		p.CreatedAt(),
		p.UpdatedAt(),
	)
}
