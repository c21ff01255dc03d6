package repository

import (
	"context"
	"log/slog"
	"time"

	"salon-booking/internal/domain/account"
	"salon-booking/internal/infra"
	"salon-booking/internal/infra/converter"
	"salon-booking/internal/infra/db"
	"salon-booking/internal/pkg/pgconv"
)

const (
	insertAccountSQL = `INSERT INTO accounts (` + converter.ProfileColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	updateLastOutletSQL = `UPDATE accounts SET last_outlet_id = $2, updated_at = $3 WHERE identity = $1`
)

type AccountRepository struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewAccountRepository(dbtx db.DBTX, logger *slog.Logger) *AccountRepository {
	return &AccountRepository{
		db:     dbtx,
		logger: logger,
	}
}

func (r *AccountRepository) Create(ctx context.Context, p *account.Profile) error {
	_, err := r.db.Exec(ctx, insertAccountSQL,
		p.Identity(),
		p.Name(),
		pgconv.DateToPgtype(p.DOB()),
		string(p.Gender()),
		pgconv.StringPtrToPgtype(p.LastOutletID()),
		pgconv.TimeToPgtype(p.CreatedAt()),
		pgconv.TimeToPgtype(p.UpdatedAt()),
	)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindFromPg(err), "failed to create account", err)
	}
	return nil
}

func (r *AccountRepository) RememberOutlet(ctx context.Context, identity, outletID string, at time.Time) error {
	if _, err := r.db.Exec(ctx, updateLastOutletSQL, identity, outletID, pgconv.TimeToPgtype(at)); err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to update last outlet", err)
	}
	return nil
}
