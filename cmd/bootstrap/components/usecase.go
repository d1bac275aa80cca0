package components

import (
	"qwikker-loyalty/internal/pkg/clock"
	"qwikker-loyalty/internal/usecase/commands"
	"qwikker-loyalty/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
	),
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewEarnUseCase,
		commands.NewRedemptionUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewMembershipQueries,
		queries.NewProgramQueries,
		queries.NewRedemptionQueries,
	),
)
