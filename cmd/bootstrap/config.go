package bootstrap

import (
	"leafdeals/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.JobsConfig { return cfg.Jobs },
		func(cfg config.Config) config.QualityConfig { return cfg.Quality },
		func(cfg config.Config) config.ClientsConfig { return cfg.Clients },
	),
)
