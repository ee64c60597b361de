package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"readiness-api/internal/docs"
	"readiness-api/internal/readiness"
	"readiness-api/internal/services/health"
	"readiness-api/internal/shared/config"
	"readiness-api/internal/shared/metrics"
	"readiness-api/internal/shared/server/middleware"
	"readiness-api/internal/shared/server/respond"
)

// RouterDeps lists the handlers mounted by NewRouter. A nil Docs skips the
// documentation routes.
type RouterDeps struct {
	Config    config.Config
	Readiness *readiness.Handler
	Health    *health.Service
	Docs      *docs.Document
	Limiter   *middleware.RateLimiter
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.ReleaseMode)
	}
	cfg := deps.Config
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin()),
	)

	api := r.Group("/api")
	if deps.Health != nil {
		deps.Health.RegisterRoutes(api)
	}
	if cfg.DocsEnabled && deps.Docs != nil {
		deps.Docs.RegisterRoutes(api)
	}

	if deps.Readiness != nil {
		limited := api.Group("", middleware.RateLimit(middleware.RateLimitConfig{
			Rule: middleware.RateLimitRule{
				Rate:  cfg.RateLimit.RPS,
				Burst: cfg.RateLimit.Burst,
			},
			Limiter: deps.Limiter,
		}))
		deps.Readiness.RegisterRoutes(limited)
	}

	if cfg.MetricsEnabled {
		r.GET("/metrics", metrics.Handler())
	}

	r.NoRoute(func(c *gin.Context) {
		respond.Error(c, http.StatusNotFound, "not_found", "Cannot "+c.Request.Method+" "+c.Request.URL.Path, nil)
	})

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
