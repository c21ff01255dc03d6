package converter

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"salon-booking/internal/domain/account"
	"salon-booking/internal/domain/appointment"
	"salon-booking/internal/pkg/pgconv"
)

const AppointmentColumns = `id, owner_identity, outlet_id, date, time_slot, staff_id,
	assignment_type, service_ids, status, created_at, cancelled_at`

const ProfileColumns = `identity, name, dob, gender, last_outlet_id, created_at, updated_at`

// AppointmentRow mirrors one row of the appointments table.
type AppointmentRow struct {
	ID             uuid.UUID
	OwnerIdentity  string
	OutletID       string
	Date           pgtype.Date
	TimeSlot       string
	StaffID        pgtype.Text
	AssignmentType string
	ServiceIDs     []string
	Status         string
	CreatedAt      pgtype.Timestamptz
	CancelledAt    pgtype.Timestamptz
}

func AppointmentToRow(a *appointment.Appointment) AppointmentRow {
	return AppointmentRow{
		ID:             a.ID(),
		OwnerIdentity:  a.Owner(),
		OutletID:       a.OutletID(),
		Date:           pgconv.DateToPgtype(a.Date().Time()),
		TimeSlot:       a.TimeSlot(),
		StaffID:        pgconv.StringPtrToPgtype(a.StaffID()),
		AssignmentType: a.AssignmentType().String(),
		ServiceIDs:     a.ServiceIDs().Values(),
		Status:         a.Status().String(),
		CreatedAt:      pgconv.TimeToPgtype(a.CreatedAt()),
		CancelledAt:    pgconv.TimePtrToPgtype(a.CancelledAt()),
	}
}

func (r AppointmentRow) ToDomain() (*appointment.Appointment, error) {
	serviceIDs, err := appointment.NewServiceIDs(r.ServiceIDs)
	if err != nil {
		return nil, err
	}
	status := appointment.Status(r.Status)
	if !status.IsValid() {
		return nil, appointment.ErrInvalidStatus
	}
	assignment := appointment.AssignmentType(r.AssignmentType)
	if !assignment.IsValid() {
		return nil, appointment.ErrInvalidAssignment
	}
	d := pgconv.DateFromPgtype(r.Date)

	return appointment.ReconstructAppointment(
		r.ID,
		r.OwnerIdentity,
		r.OutletID,
		appointment.NewDate(d.Year(), d.Month(), d.Day()),
		r.TimeSlot,
		pgconv.StringPtrFromPgtype(r.StaffID),
		assignment,
		serviceIDs,
		status,
		r.CreatedAt.Time,
		pgconv.TimePtrFromPgtype(r.CancelledAt),
	), nil
}

// ScanAppointment reads AppointmentColumns in order.
func ScanAppointment(row pgx.Row) (*appointment.Appointment, error) {
	var r AppointmentRow
	if err := row.Scan(
		&r.ID,
		&r.OwnerIdentity,
		&r.OutletID,
		&r.Date,
		&r.TimeSlot,
		&r.StaffID,
		&r.AssignmentType,
		&r.ServiceIDs,
		&r.Status,
		&r.CreatedAt,
		&r.CancelledAt,
	); err != nil {
		return nil, err
	}
	return r.ToDomain()
}

// ScanProfile reads ProfileColumns in order.
func ScanProfile(row pgx.Row) (*account.Profile, error) {
	var (
		identity     string
		name         string
		dob          pgtype.Date
		gender       string
		lastOutletID pgtype.Text
		createdAt    pgtype.Timestamptz
		updatedAt    pgtype.Timestamptz
	)
	if err := row.Scan(&identity, &name, &dob, &gender, &lastOutletID, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	g, err := account.NewGender(gender)
	if err != nil {
		return nil, err
	}
	return account.ReconstructProfile(
		identity,
		name,
		pgconv.DateFromPgtype(dob),
		g,
		pgconv.StringPtrFromPgtype(lastOutletID),
		createdAt.Time,
		updatedAt.Time,
	), nil
}
