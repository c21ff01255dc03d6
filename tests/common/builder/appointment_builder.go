//go:build unit || e2e

package builder

import (
	"time"

	"salon-booking/internal/domain/appointment"
	reqdto "salon-booking/internal/handler/dto/request"
	"salon-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type AppointmentBuilder struct {
	ID          uuid.UUID
	Owner       string
	OutletID    string
	Date        appointment.Date
	TimeSlot    string
	StaffID     *string
	Assignment  appointment.AssignmentType
	ServiceIDs  []string
	Status      appointment.Status
	CreatedAt   time.Time
	CancelledAt *time.Time
}

// NewAppointmentBuilder defaults to a manual booking with s1 at o1, 10:00 AM on 2025-03-10.
func NewAppointmentBuilder() *AppointmentBuilder {
	staff := "s1"
	return &AppointmentBuilder{
		ID:         uuid.New(),
		Owner:      "+60123456789",
		OutletID:   "o1",
		Date:       appointment.NewDate(2025, time.March, 10),
		TimeSlot:   "10:00 AM",
		StaffID:    &staff,
		Assignment: appointment.AssignmentManual,
		ServiceIDs: []string{"svc1"},
		Status:     appointment.StatusConfirmed,
		CreatedAt:  time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *AppointmentBuilder) With(mutate func(*AppointmentBuilder)) *AppointmentBuilder {
	mutate(b)
	return b
}

func (b *AppointmentBuilder) WithStaff(staffID string) *AppointmentBuilder {
	b.StaffID = &staffID
	b.Assignment = appointment.AssignmentManual
	return b
}

// WithoutStaff models a deferred auto-assignment.
func (b *AppointmentBuilder) WithoutStaff() *AppointmentBuilder {
	b.StaffID = nil
	b.Assignment = appointment.AssignmentSystemAuto
	return b
}

func (b *AppointmentBuilder) Cancelled(at time.Time) *AppointmentBuilder {
	b.Status = appointment.StatusCancelled
	b.CancelledAt = &at
	return b
}

// Build methods
func (b *AppointmentBuilder) BuildDomain() *appointment.Appointment {
	services, err := appointment.NewServiceIDs(b.ServiceIDs)
	if err != nil {
		panic(err)
	}
	return appointment.ReconstructAppointment(
		b.ID,
		b.Owner,
		b.OutletID,
		b.Date,
		b.TimeSlot,
		b.StaffID,
		b.Assignment,
		services,
		b.Status,
		b.CreatedAt,
		b.CancelledAt,
	)
}

func (b *AppointmentBuilder) BuildRequest() appointment.Request {
	choice := appointment.AutoAssign()
	if b.StaffID != nil {
		choice = appointment.ParseStaffChoice(*b.StaffID)
	}
	req, err := appointment.NewDraft().
		WithOutlet(b.OutletID).
		WithStaff(choice).
		WithDate(b.Date).
		WithTimeSlot(b.TimeSlot).
		WithServices(b.ServiceIDs...).
		Build()
	if err != nil {
		panic(err)
	}
	return req
}

func (b *AppointmentBuilder) BuildCreateRequestDTO() reqdto.CreateAppointmentRequest {
	staff := ""
	if b.StaffID != nil {
		staff = *b.StaffID
	}
	return reqdto.CreateAppointmentRequest{
		OutletID:   b.OutletID,
		StaffID:    staff,
		Date:       b.Date.String(),
		TimeSlot:   b.TimeSlot,
		ServiceIDs: append([]string(nil), b.ServiceIDs...),
	}
}

func (b *AppointmentBuilder) BuildView() *queries.AppointmentView {
	view := &queries.AppointmentView{
		ID:             b.ID,
		OutletID:       b.OutletID,
		OutletName:     "Bangsar",
		Date:           b.Date.String(),
		TimeSlot:       b.TimeSlot,
		AssignmentType: b.Assignment.String(),
		Status:         b.Status.String(),
		CreatedAt:      b.CreatedAt,
		CancelledAt:    b.CancelledAt,
	}
	if b.StaffID != nil {
		view.Staff = &queries.StaffView{ID: *b.StaffID, Name: *b.StaffID}
	}
	for _, id := range b.ServiceIDs {
		view.Services = append(view.Services, queries.ServiceView{ID: id, Name: id})
	}
	return view
}
