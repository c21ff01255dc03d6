package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"salon-booking/internal/domain/appointment"
	"salon-booking/internal/domain/catalog"
	"salon-booking/internal/infra"
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase/queries"
	"salon-booking/internal/usecase/shared"
)

var (
	ErrUnauthenticated         = errs.New("verified identity required")
	ErrInvalidBooking          = errs.New("invalid booking request")
	ErrSlotTaken               = errs.New("slot taken")
	ErrNoStaffAvailable        = errs.New("no staff available")
	ErrUnknownStaff            = errs.New("unknown staff")
	ErrAppointmentNotFound     = errs.New("appointment not found")
	ErrAlreadyCancelled        = errs.New("appointment already cancelled")
	ErrNotCancellable          = errs.New("appointment not cancellable")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

var bookingTracer = otel.Tracer("salon-booking/usecase/appointment")

type RescheduleResult struct {
	Cancelled *queries.AppointmentView
	Created   *queries.AppointmentView
}

//go:generate mockgen -source=appointment.go -destination=../../../tests/mock/commands/appointment.go -package=commandsmock

type AppointmentCommands interface {
	Create(ctx context.Context, identity string, req appointment.Request) (*queries.AppointmentView, error)
	Cancel(ctx context.Context, identity string, appointmentID uuid.UUID) (*queries.AppointmentView, error)
	// Reschedule cancels the original and books req in one unit of work. A failed booking
	// leaves the original confirmed.
	Reschedule(ctx context.Context, identity string, appointmentID uuid.UUID, req appointment.Request) (*RescheduleResult, error)
}

type appointmentCommandsImpl struct {
	uow       shared.UnitOfWork
	catalog   shared.CatalogProvider
	resolver  *appointment.Resolver
	window    appointment.BookingWindow
	presenter *queries.AppointmentPresenter
	clock     clock.Clock
	metrics   BookingMetrics
	logger    *slog.Logger
}

func NewAppointmentCommands(
	uow shared.UnitOfWork,
	provider shared.CatalogProvider,
	resolver *appointment.Resolver,
	window appointment.BookingWindow,
	presenter *queries.AppointmentPresenter,
	clk clock.Clock,
	metrics BookingMetrics,
	logger *slog.Logger,
) AppointmentCommands {
	return &appointmentCommandsImpl{
		uow:       uow,
		catalog:   provider,
		resolver:  resolver,
		window:    window,
		presenter: presenter,
		clock:     clk,
		metrics:   metrics,
		logger:    logger,
	}
}

func (c *appointmentCommandsImpl) Create(ctx context.Context, identity string, req appointment.Request) (*queries.AppointmentView, error) {
	ctx, span := bookingTracer.Start(ctx, "appointment.create")
	defer span.End()
	span.SetAttributes(
		attribute.String("booking.outlet_id", req.OutletID),
		attribute.String("booking.date", req.Date.String()),
		attribute.String("booking.time_slot", req.TimeSlot),
		attribute.String("booking.staff", req.Staff.String()),
	)

	now := c.clock.Now()
	outletStaff, err := c.validateRequest(ctx, identity, req, now)
	if err != nil {
		return nil, c.fail(span, "create", err)
	}

	var created *appointment.Appointment
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.LockSlots(ctx, req.SlotKey()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		a, err := c.book(ctx, tx, identity, req, outletStaff, now)
		if err != nil {
			return err
		}
		created = a
		return nil
	})
	if err != nil {
		return nil, c.fail(span, "create", err)
	}

	c.observe("create", "ok")
	c.logger.InfoContext(ctx, "appointment created",
		"appointment_id", created.ID().String(),
		"outlet_id", created.OutletID(),
		"date", created.Date().String(),
		"time_slot", created.TimeSlot(),
		"assignment", created.AssignmentType().String(),
	)
	return c.presenter.Present(ctx, created, now), nil
}

func (c *appointmentCommandsImpl) Cancel(ctx context.Context, identity string, appointmentID uuid.UUID) (*queries.AppointmentView, error) {
	ctx, span := bookingTracer.Start(ctx, "appointment.cancel")
	defer span.End()
	span.SetAttributes(attribute.String("booking.appointment_id", appointmentID.String()))

	if identity == "" {
		return nil, c.fail(span, "cancel", ErrUnauthenticated)
	}

	now := c.clock.Now()
	var cancelled *appointment.Appointment
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		a, err := c.lockOwned(ctx, tx, identity, appointmentID)
		if err != nil {
			return err
		}
		if err := c.cancel(ctx, tx, a, now); err != nil {
			return err
		}
		cancelled = a
		return nil
	})
	if err != nil {
		return nil, c.fail(span, "cancel", err)
	}

	c.observe("cancel", "ok")
	c.logger.InfoContext(ctx, "appointment cancelled", "appointment_id", appointmentID.String())
	return c.presenter.Present(ctx, cancelled, now), nil
}

func (c *appointmentCommandsImpl) Reschedule(ctx context.Context, identity string, appointmentID uuid.UUID, req appointment.Request) (*RescheduleResult, error) {
	ctx, span := bookingTracer.Start(ctx, "appointment.reschedule")
	defer span.End()
	span.SetAttributes(
		attribute.String("booking.appointment_id", appointmentID.String()),
		attribute.String("booking.outlet_id", req.OutletID),
		attribute.String("booking.date", req.Date.String()),
		attribute.String("booking.time_slot", req.TimeSlot),
	)

	now := c.clock.Now()
	outletStaff, err := c.validateRequest(ctx, identity, req, now)
	if err != nil {
		return nil, c.fail(span, "reschedule", err)
	}

	var original, created *appointment.Appointment
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		a, err := c.findOwned(ctx, tx, identity, appointmentID)
		if err != nil {
			return err
		}
		keys := appointment.SortSlotKeys([]appointment.SlotKey{a.SlotKey(), req.SlotKey()})
		if err := tx.LockSlots(ctx, keys...); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		// Re-read under the lock; a concurrent cancel may have won.
		if a, err = c.findOwned(ctx, tx, identity, appointmentID); err != nil {
			return err
		}
		if err := c.cancel(ctx, tx, a, now); err != nil {
			return err
		}
		b, err := c.book(ctx, tx, identity, req, outletStaff, now)
		if err != nil {
			return err
		}
		original, created = a, b
		return nil
	})
	if err != nil {
		return nil, c.fail(span, "reschedule", err)
	}

	c.observe("reschedule", "ok")
	c.logger.InfoContext(ctx, "appointment rescheduled",
		"from_id", original.ID().String(), "to_id", created.ID().String())
	return &RescheduleResult{
		Cancelled: c.presenter.Present(ctx, original, now),
		Created:   c.presenter.Present(ctx, created, now),
	}, nil
}

func (c *appointmentCommandsImpl) validateRequest(ctx context.Context, identity string, req appointment.Request, now time.Time) ([]catalog.Staff, error) {
	if identity == "" {
		return nil, ErrUnauthenticated
	}
	if req.ServiceIDs.Len() == 0 {
		return nil, errs.Mark(appointment.ErrEmptyServices, ErrInvalidBooking)
	}

	if _, err := c.catalog.GetOutlet(ctx, req.OutletID); err != nil {
		if errors.Is(err, catalog.ErrOutletNotFound) {
			return nil, errs.Mark(err, ErrInvalidBooking)
		}
		return nil, errs.Wrap(err, "failed to load outlet")
	}

	services, err := c.catalog.ListServices(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load services")
	}
	known := make(map[string]struct{}, len(services))
	for _, s := range services {
		known[s.ID] = struct{}{}
	}
	for _, id := range req.ServiceIDs.Values() {
		if _, ok := known[id]; !ok {
			return nil, errs.Mark(errs.Wrapf(catalog.ErrServiceNotFound, "service %q", id), ErrInvalidBooking)
		}
	}

	if err := c.window.Validate(now, req.Date, req.TimeSlot); err != nil {
		return nil, errs.Mark(err, ErrInvalidBooking)
	}

	staff, err := c.catalog.ListStaff(ctx, req.OutletID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load staff")
	}
	return staff, nil
}

// book must run with the request's slot key locked.
func (c *appointmentCommandsImpl) book(
	ctx context.Context,
	tx shared.Tx,
	identity string,
	req appointment.Request,
	outletStaff []catalog.Staff,
	now time.Time,
) (*appointment.Appointment, error) {
	occupied, err := tx.Appointments().ListConfirmedBySlot(ctx, req.SlotKey())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	assignment, err := c.resolver.Resolve(req.Staff, outletStaff, occupied)
	if err != nil {
		switch {
		case errors.Is(err, appointment.ErrSlotTaken):
			return nil, errs.Mark(err, ErrSlotTaken)
		case errors.Is(err, appointment.ErrNoStaffAvailable):
			return nil, errs.Mark(err, ErrNoStaffAvailable)
		case errors.Is(err, appointment.ErrUnknownStaff):
			return nil, errs.Mark(err, ErrUnknownStaff)
		default:
			return nil, errs.Wrap(err, "failed to resolve assignment")
		}
	}

	a, err := appointment.NewAppointment(identity, req, assignment, now)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidBooking)
	}

	if err := tx.Appointments().Create(ctx, a); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, ErrSlotTaken)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := tx.Accounts().RememberOutlet(ctx, identity, req.OutletID, now); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return a, nil
}

func (c *appointmentCommandsImpl) cancel(ctx context.Context, tx shared.Tx, a *appointment.Appointment, now time.Time) error {
	if err := a.Cancel(now, c.window.StartsAt(a.Date(), a.TimeSlot())); err != nil {
		switch {
		case errors.Is(err, appointment.ErrAlreadyCancelled):
			return errs.Mark(err, ErrAlreadyCancelled)
		case errors.Is(err, appointment.ErrNotCancellable):
			return errs.Mark(err, ErrNotCancellable)
		default:
			return errs.Wrap(err, "failed to cancel appointment")
		}
	}
	if err := tx.Appointments().UpdateStatus(ctx, a); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

// lockOwned loads the appointment, locks its slot and loads it again under the lock.
func (c *appointmentCommandsImpl) lockOwned(ctx context.Context, tx shared.Tx, identity string, id uuid.UUID) (*appointment.Appointment, error) {
	a, err := c.findOwned(ctx, tx, identity, id)
	if err != nil {
		return nil, err
	}
	if err := tx.LockSlots(ctx, a.SlotKey()); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return c.findOwned(ctx, tx, identity, id)
}

// findOwned reports appointments of other identities as not found.
func (c *appointmentCommandsImpl) findOwned(ctx context.Context, tx shared.Tx, identity string, id uuid.UUID) (*appointment.Appointment, error) {
	a, err := tx.Appointments().FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrAppointmentNotFound)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !a.OwnedBy(identity) {
		return nil, ErrAppointmentNotFound
	}
	return a, nil
}

func (c *appointmentCommandsImpl) fail(span trace.Span, operation string, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	c.observe(operation, outcomeOf(err))
	return err
}

func (c *appointmentCommandsImpl) observe(operation, outcome string) {
	if c.metrics != nil {
		c.metrics.ObserveBooking(operation, outcome)
	}
}

func outcomeOf(err error) string {
	switch {
	case errors.Is(err, ErrSlotTaken):
		return "slot_taken"
	case errors.Is(err, ErrNoStaffAvailable):
		return "no_staff"
	case errors.Is(err, ErrInvalidBooking), errors.Is(err, ErrUnknownStaff):
		return "invalid"
	case errors.Is(err, ErrAppointmentNotFound):
		return "not_found"
	case errors.Is(err, ErrAlreadyCancelled), errors.Is(err, ErrNotCancellable):
		return "rejected"
	case errors.Is(err, ErrUnauthenticated):
		return "unauthenticated"
	default:
		return "error"
	}
}
