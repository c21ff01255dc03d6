package commands

import (
	"context"
	"log/slog"
	"time"

	"salon-booking/internal/domain/account"
	"salon-booking/internal/infra"
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase/queries"
	"salon-booking/internal/usecase/shared"
)

var (
	ErrInvalidProfile = errs.New("invalid profile")
	ErrProfileExists  = errs.New("profile already registered")
)

type RegisterProfileParams struct {
	Name   string
	DOB    time.Time
	Gender string
}

//go:generate mockgen -source=account.go -destination=../../../tests/mock/commands/account.go -package=commandsmock

type AccountCommands interface {
	Register(ctx context.Context, identity string, params RegisterProfileParams) (*queries.ProfileView, error)
}

type accountCommandsImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	logger *slog.Logger
}

func NewAccountCommands(uow shared.UnitOfWork, clk clock.Clock, logger *slog.Logger) AccountCommands {
	return &accountCommandsImpl{
		uow:    uow,
		clock:  clk,
		logger: logger,
	}
}

func (c *accountCommandsImpl) Register(ctx context.Context, identity string, params RegisterProfileParams) (*queries.ProfileView, error) {
	if identity == "" {
		return nil, ErrUnauthenticated
	}

	gender, err := account.NewGender(params.Gender)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidProfile)
	}
	profile, err := account.NewProfile(identity, params.Name, params.DOB, gender, c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidProfile)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Accounts().Create(ctx, profile)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, ErrProfileExists)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	c.logger.InfoContext(ctx, "profile registered")
	return queries.NewProfileView(profile), nil
}
