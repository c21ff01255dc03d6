package components

import (
	"salon-booking/internal/domain/appointment"
	"salon-booking/internal/domain/auth"
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/codehash"
	"salon-booking/internal/pkg/config"
	"salon-booking/internal/pkg/jwt"
	"salon-booking/internal/pkg/otpcode"
	"salon-booking/internal/usecase"
	"salon-booking/internal/usecase/commands"
	"salon-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var ClockModule = fx.Module("clock",
	fx.Provide(
		clock.NewRealClock,
	),
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	NewAuthPolicy,
	NewResolver,
	queries.NewAppointmentPresenter,
	fx.Annotate(
		NewCodeGenerator,
		fx.As(new(otpcode.Generator)),
	),
	fx.Annotate(
		NewCodeHasher,
		fx.As(new(commands.CodeHasher)),
	),
	func(s *jwt.Service) commands.TokenIssuer { return s },
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewAppointmentCommands,
		commands.NewAccountCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAppointmentQueries,
		queries.NewCatalogQueries,
		queries.NewAccountQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewAuthPolicy(cfg config.Config) auth.Policy {
	return auth.Policy{
		CodeTTL:            cfg.OTP.CodeTTL,
		ResendCooldown:     cfg.OTP.ResendCooldown,
		MaxAttempts:        cfg.OTP.MaxAttempts,
		IssueWindow:        cfg.OTP.IssueWindow,
		MaxIssuesPerWindow: cfg.OTP.MaxIssuesPerWindow,
	}
}

func NewResolver(cfg config.Config) *appointment.Resolver {
	return appointment.NewResolver(appointment.ParseAutoAssignPolicy(cfg.Booking.AutoAssign))
}

func NewCodeGenerator(cfg config.Config) (*otpcode.RandomGenerator, error) {
	return otpcode.NewRandomGenerator(cfg.OTP.CodeLength)
}

func NewCodeHasher(cfg config.Config) *codehash.Hasher {
	return codehash.NewHasher(cfg.OTP.HashCost)
}
