package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"salon-booking/internal/domain/appointment"
	"salon-booking/internal/infra"
	"salon-booking/internal/infra/converter"
	"salon-booking/internal/infra/db"
	"salon-booking/internal/pkg/pgconv"
)

const (
	insertAppointmentSQL = `INSERT INTO appointments (` + converter.AppointmentColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	updateAppointmentStatusSQL = `UPDATE appointments SET status = $2, cancelled_at = $3 WHERE id = $1`

	selectAppointmentByIDSQL = `SELECT ` + converter.AppointmentColumns + ` FROM appointments WHERE id = $1`

	selectConfirmedBySlotSQL = `SELECT ` + converter.AppointmentColumns + ` FROM appointments
WHERE outlet_id = $1 AND date = $2 AND time_slot = $3 AND status = 'CONFIRMED'
ORDER BY created_at`
)

type AppointmentRepository struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewAppointmentRepository(dbtx db.DBTX, logger *slog.Logger) *AppointmentRepository {
	return &AppointmentRepository{
		db:     dbtx,
		logger: logger,
	}
}

func (r *AppointmentRepository) Create(ctx context.Context, a *appointment.Appointment) error {
	row := converter.AppointmentToRow(a)
	_, err := r.db.Exec(ctx, insertAppointmentSQL,
		row.ID,
		row.OwnerIdentity,
		row.OutletID,
		row.Date,
		row.TimeSlot,
		row.StaffID,
		row.AssignmentType,
		row.ServiceIDs,
		row.Status,
		row.CreatedAt,
		row.CancelledAt,
	)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindFromPg(err), "failed to create appointment", err)
	}
	return nil
}

func (r *AppointmentRepository) UpdateStatus(ctx context.Context, a *appointment.Appointment) error {
	tag, err := r.db.Exec(ctx, updateAppointmentStatusSQL,
		a.ID(),
		a.Status().String(),
		pgconv.TimePtrToPgtype(a.CancelledAt()),
	)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindFromPg(err), "failed to update appointment status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "appointment not found", nil)
	}
	return nil
}

func (r *AppointmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*appointment.Appointment, error) {
	a, err := converter.ScanAppointment(r.db.QueryRow(ctx, selectAppointmentByIDSQL, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "appointment not found", err)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to find appointment", err)
	}
	return a, nil
}

func (r *AppointmentRepository) ListConfirmedBySlot(ctx context.Context, key appointment.SlotKey) ([]*appointment.Appointment, error) {
	rows, err := r.db.Query(ctx, selectConfirmedBySlotSQL,
		key.OutletID,
		pgconv.DateToPgtype(key.Date.Time()),
		key.TimeSlot,
	)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list slot appointments", err)
	}
	defer rows.Close()

	var out []*appointment.Appointment
	for rows.Next() {
		a, err := converter.ScanAppointment(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to scan slot appointment", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to iterate slot appointments", err)
	}
	return out, nil
}
