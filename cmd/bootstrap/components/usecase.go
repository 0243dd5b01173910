package components

import (
	"leafdeals/internal/pkg/clock"
	"leafdeals/internal/usecase/commands"
	"leafdeals/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewZoneCommands,
		commands.NewAdmissionCommands,
		commands.NewIngestCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewDealQueries,
	),
)
