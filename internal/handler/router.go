package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"leafdeals/internal/handler/api"
	"leafdeals/internal/handler/middleware"
	"leafdeals/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, dealsHandler *api.DealsHandler, jobsHandler *api.JobsHandler, jobAuth *middleware.JobAuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, dealsHandler, jobsHandler, jobAuth)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, dealsHandler *api.DealsHandler, jobsHandler *api.JobsHandler, jobAuth *middleware.JobAuthMiddleware) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/deals", Handler: dealsHandler.ListDeals},
		})

		jobs := apiGroup.Group("/jobs")
		jobs.Use(jobAuth.RequireTriggerSecret())
		{
			addRoutes(jobs, []route{
				{Method: http.MethodPost, Path: "/refresh-zones", Handler: jobsHandler.RefreshZones},
				{Method: http.MethodPost, Path: "/ingest", Handler: jobsHandler.Ingest},
			})
		}
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
