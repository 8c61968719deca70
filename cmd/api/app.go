package main

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"openelev/internal/config"
	"openelev/internal/enrich"
	"openelev/internal/storage"

	_ "openelev/docs" // Ensure docs are imported
)

// App encapsulates application dependencies
type App struct {
	router        *gin.Engine
	logger        *slog.Logger
	enrichService enrich.Service
	archive       *storage.ArchiveService
	cfg           *config.Config
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())

	app := &App{
		router:        router,
		logger:        logger,
		enrichService: enrich.NewService(cfg, logger),
		cfg:           cfg,
	}

	// The archive sink is optional; only wire it when an endpoint is set
	if cfg.StorageEnabled() {
		archive, err := storage.NewArchiveService(cfg.Storage, logger)
		if err != nil {
			return nil, err
		}
		app.archive = archive
	}

	// Register routes
	app.registerRoutes()

	return app, nil
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}
