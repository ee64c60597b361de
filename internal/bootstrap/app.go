package bootstrap

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"readiness-api/internal/docs"
	"readiness-api/internal/readiness"
	"readiness-api/internal/services/health"
	"readiness-api/internal/shared/config"
	"readiness-api/internal/shared/server"
)

// App holds shared dependencies and the router built from them.
type App struct {
	Config           config.Config
	Router           *gin.Engine
	Docs             *docs.Document
	Health           *health.Service
	ReadinessService *readiness.Service
	ReadinessHandler *readiness.Handler
}

// Build checks the weight table and wires every handler into a router.
func Build(cfg config.Config) (*App, error) {
	if err := readiness.ValidateWeights(); err != nil {
		return nil, err
	}

	var document *docs.Document
	if cfg.DocsEnabled {
		d, err := docs.Load()
		if err != nil {
			return nil, fmt.Errorf("load api docs: %w", err)
		}
		document = d
	}

	svc := readiness.NewService()
	app := &App{
		Config:           cfg,
		Docs:             document,
		Health:           health.NewService(),
		ReadinessService: svc,
		ReadinessHandler: readiness.NewHandler(svc),
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:    app.Config,
		Readiness: app.ReadinessHandler,
		Health:    app.Health,
		Docs:      app.Docs,
	})

	return app, nil
}
