package components

import (
	"leafdeals/internal/handler"
	"leafdeals/internal/handler/api"
	"leafdeals/internal/handler/middleware"
	"leafdeals/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewDealsHandler,
		api.NewJobsHandler,
		func(cfg config.Config) *middleware.JobAuthMiddleware {
			return middleware.NewJobAuthMiddleware(cfg.Jobs.TriggerSecret)
		},
	),
	fx.Invoke(handler.NewRouter),
)
