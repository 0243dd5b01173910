package components

import (
	"leafdeals/internal/infra/client/extract"
	"leafdeals/internal/infra/client/geocode"
	"leafdeals/internal/infra/client/places"
	"leafdeals/internal/usecase/commands"
	"leafdeals/internal/usecase/queries"

	"go.uber.org/fx"
)

var ClientModule = fx.Module("clients",
	fx.Provide(
		fx.Annotate(
			geocode.NewClient,
			fx.As(new(commands.Geocoder)),
			fx.As(new(queries.PostalGeocoder)),
		),
		fx.Annotate(
			places.NewClient,
			fx.As(new(commands.SourceDiscovery)),
		),
		fx.Annotate(
			extract.NewClient,
			fx.As(new(commands.ExtractionProvider)),
		),
	),
)
