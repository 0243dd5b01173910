package components

import (
	"leafdeals/internal/infra/readstore"
	repo_impl "leafdeals/internal/infra/repository"
	"leafdeals/internal/usecase/commands"
	"leafdeals/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewZoneRepository,
			fx.As(new(commands.ZoneRepository)),
		),
		fx.Annotate(
			repo_impl.NewSourceRepository,
			fx.As(new(commands.SourceRepository)),
		),
		fx.Annotate(
			repo_impl.NewDealRepository,
			fx.As(new(commands.DealRepository)),
		),
		fx.Annotate(
			repo_impl.NewNotificationRepository,
			fx.As(new(commands.NotificationRepository)),
		),
		// Read-side stores for queries and the dispatcher
		fx.Annotate(
			readstore.NewSourceReadStore,
			fx.As(new(commands.SourceReadStore)),
		),
		fx.Annotate(
			readstore.NewDealReadStore,
			fx.As(new(queries.DealReadStore)),
		),
	),
)
