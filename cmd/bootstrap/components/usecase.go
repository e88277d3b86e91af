package components

import (
	"cleanspace/internal/pkg/clock"
	"cleanspace/internal/pkg/password"
	"cleanspace/internal/usecase"
	"cleanspace/internal/usecase/commands"
	"cleanspace/internal/usecase/queries"
	"cleanspace/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		func() *password.BcryptEncoder {
			return password.NewBcryptEncoder(password.DefaultCost)
		},
		fx.As(new(shared.PasswordEncoder)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewUserCommands,
		commands.NewWorkspaceCommands,
		commands.NewReservationCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewWorkspaceQueries,
		queries.NewReservationQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
