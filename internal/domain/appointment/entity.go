package appointment

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrAlreadyCancelled = errors.New("appointment already cancelled")
	ErrNotCancellable   = errors.New("appointment is no longer cancellable")
	ErrDateInPast       = errors.New("date is in the past")
	ErrDateOutOfWindow  = errors.New("date is outside the bookable window")
	ErrSlotInPast       = errors.New("time slot has already started")
)

// Request is a fully assembled booking request. Build it with Draft.
type Request struct {
	OutletID   string
	Date       Date
	TimeSlot   string
	ServiceIDs ServiceIDs
	Staff      StaffChoice
}

func (r Request) SlotKey() SlotKey {
	return SlotKey{OutletID: r.OutletID, Date: r.Date, TimeSlot: r.TimeSlot}
}

// Assignment is the resolver's accepted outcome.
type Assignment struct {
	StaffID *string
	Type    AssignmentType
}

type Appointment struct {
	id          uuid.UUID
	owner       string
	outletID    string
	date        Date
	timeSlot    string
	staffID     *string
	assignment  AssignmentType
	serviceIDs  ServiceIDs
	status      Status
	createdAt   time.Time
	cancelledAt *time.Time
}

func NewAppointment(owner string, req Request, assignment Assignment, now time.Time) (*Appointment, error) {
	if strings.TrimSpace(owner) == "" {
		return nil, ErrInvalidOwner
	}
	if strings.TrimSpace(req.OutletID) == "" {
		return nil, ErrEmptyOutlet
	}
	if req.Date.IsZero() {
		return nil, ErrInvalidDate
	}
	if strings.TrimSpace(req.TimeSlot) == "" {
		return nil, ErrEmptyTimeSlot
	}
	if req.ServiceIDs.Len() == 0 {
		return nil, ErrEmptyServices
	}
	if !assignment.Type.IsValid() {
		return nil, ErrInvalidAssignment
	}
	if assignment.Type == AssignmentManual && assignment.StaffID == nil {
		return nil, ErrManualNoStaff
	}

	return &Appointment{
		id:         uuid.New(),
		owner:      owner,
		outletID:   req.OutletID,
		date:       req.Date,
		timeSlot:   req.TimeSlot,
		staffID:    cloneStaffID(assignment.StaffID),
		assignment: assignment.Type,
		serviceIDs: req.ServiceIDs,
		status:     StatusConfirmed,
		createdAt:  now,
	}, nil
}

func ReconstructAppointment(
	id uuid.UUID,
	owner, outletID string,
	date Date,
	timeSlot string,
	staffID *string,
	assignment AssignmentType,
	serviceIDs ServiceIDs,
	status Status,
	createdAt time.Time,
	cancelledAt *time.Time,
) *Appointment {
	return &Appointment{
		id:          id,
		owner:       owner,
		outletID:    outletID,
		date:        date,
		timeSlot:    timeSlot,
		staffID:     cloneStaffID(staffID),
		assignment:  assignment,
		serviceIDs:  serviceIDs,
		status:      status,
		createdAt:   createdAt,
		cancelledAt: cancelledAt,
	}
}

// Cancel is irreversible. startsAt is the slot start in the booking time zone.
func (a *Appointment) Cancel(now, startsAt time.Time) error {
	switch a.EffectiveStatus(now, startsAt) {
	case StatusCancelled:
		return ErrAlreadyCancelled
	case StatusCompleted:
		return ErrNotCancellable
	}
	a.status = StatusCancelled
	cancelledAt := now
	a.cancelledAt = &cancelledAt
	return nil
}

// EffectiveStatus derives COMPLETED for confirmed bookings whose slot start is strictly before now.
func (a *Appointment) EffectiveStatus(now, startsAt time.Time) Status {
	if a.status == StatusConfirmed && startsAt.Before(now) {
		return StatusCompleted
	}
	return a.status
}

func (a *Appointment) IsConfirmed() bool {
	return a.status == StatusConfirmed
}

func (a *Appointment) OwnedBy(owner string) bool {
	return a.owner == owner
}

func (a *Appointment) SlotKey() SlotKey {
	return SlotKey{OutletID: a.outletID, Date: a.date, TimeSlot: a.timeSlot}
}

// Occupies reports whether this booking holds staffID in its slot.
func (a *Appointment) Occupies(staffID string) bool {
	return a.IsConfirmed() && a.staffID != nil && *a.staffID == staffID
}

func (a *Appointment) ID() uuid.UUID                  { return a.id }
func (a *Appointment) Owner() string                  { return a.owner }
func (a *Appointment) OutletID() string               { return a.outletID }
func (a *Appointment) Date() Date                     { return a.date }
func (a *Appointment) TimeSlot() string               { return a.timeSlot }
func (a *Appointment) StaffID() *string               { return cloneStaffID(a.staffID) }
func (a *Appointment) AssignmentType() AssignmentType { return a.assignment }
func (a *Appointment) ServiceIDs() ServiceIDs         { return a.serviceIDs }
func (a *Appointment) Status() Status                 { return a.status }
func (a *Appointment) CreatedAt() time.Time           { return a.createdAt }
func (a *Appointment) CancelledAt() *time.Time        { return a.cancelledAt }

func cloneStaffID(id *string) *string {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}
