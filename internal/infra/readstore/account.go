package readstore

import (
	"context"
	"log/slog"

	"salon-booking/internal/domain/account"
	"salon-booking/internal/infra"
	"salon-booking/internal/infra/converter"
	"salon-booking/internal/infra/db"
	"salon-booking/internal/pkg/pgconv"
)

const selectAccountByIdentitySQL = `SELECT ` + converter.ProfileColumns + ` FROM accounts WHERE identity = $1`

type AccountReadStore struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewAccountReadStore(dbtx db.DBTX, logger *slog.Logger) *AccountReadStore {
	return &AccountReadStore{
		db:     dbtx,
		logger: logger,
	}
}

func (r *AccountReadStore) FindByIdentity(ctx context.Context, identity string) (*account.Profile, error) {
	p, err := converter.ScanProfile(r.db.QueryRow(ctx, selectAccountByIdentitySQL, identity))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to find account", err)
	}
	return p, nil
}
