package readstore

import (
	"context"
	"log/slog"

	"salon-booking/internal/domain/appointment"
	"salon-booking/internal/infra"
	"salon-booking/internal/infra/converter"
	"salon-booking/internal/infra/db"
)

const selectAppointmentsByOwnerSQL = `SELECT ` + converter.AppointmentColumns + ` FROM appointments
WHERE owner_identity = $1
ORDER BY date, created_at`

type AppointmentReadStore struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewAppointmentReadStore(dbtx db.DBTX, logger *slog.Logger) *AppointmentReadStore {
	return &AppointmentReadStore{
		db:     dbtx,
		logger: logger,
	}
}

func (r *AppointmentReadStore) ListByOwner(ctx context.Context, owner string) ([]*appointment.Appointment, error) {
	rows, err := r.db.Query(ctx, selectAppointmentsByOwnerSQL, owner)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list appointments", err)
	}
	defer rows.Close()

	items := make([]*appointment.Appointment, 0)
	for rows.Next() {
		a, err := converter.ScanAppointment(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to scan appointment", err)
		}
		items = append(items, a)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to iterate appointments", err)
	}
	return items, nil
}
