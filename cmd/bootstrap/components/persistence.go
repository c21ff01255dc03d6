package components

import (
	"log/slog"

	"salon-booking/internal/infra/db"
	"salon-booking/internal/infra/memory"
	"salon-booking/internal/infra/readstore"
	"salon-booking/internal/infra/uow"
	"salon-booking/internal/usecase/queries"
	"salon-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// PostgresPersistenceModule needs a *pgxpool.Pool in the graph.
var PostgresPersistenceModule = fx.Module("persistence/postgres",
	fx.Provide(
		NewDBTX,
		NewTxBeginner,
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		fx.Annotate(
			readstore.NewAppointmentReadStore,
			fx.As(new(queries.AppointmentReadStore)),
		),
		fx.Annotate(
			readstore.NewAccountReadStore,
			fx.As(new(queries.AccountReadStore)),
		),
	),
)

var MemoryPersistenceModule = fx.Module("persistence/memory",
	fx.Provide(
		func(logger *slog.Logger) *memory.Store {
			logger.Warn("Using in-memory appointment store; data is lost on restart")
			return memory.NewStore(logger)
		},
		func(s *memory.Store) shared.UnitOfWork { return s },
		func(s *memory.Store) queries.AppointmentReadStore { return s },
		func(s *memory.Store) queries.AccountReadStore { return s },
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewTxBeginner(pool *pgxpool.Pool) db.TxBeginner {
	return pool
}
