package main

import (
	"github.com/labstack/echo/v4"
	"github.com/rtawsif/linkup/backend/internal/router"
	"github.com/rtawsif/linkup/backend/pkg/config"
	"github.com/rtawsif/linkup/backend/pkg/logger"
	"github.com/rtawsif/linkup/backend/validators"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	if err := logger.Init(cfg.Env); err != nil {
		panic(err)
	}
	defer logger.Sync()
	log := logger.Get()

	// Initialize database connection
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal("failed to initialize database", zap.Error(err))
	}
	defer func() {
		if err := config.CloseDB(db); err != nil {
			log.Error("failed to close database connection", zap.Error(err))
		}
	}()
	log.Info("connected to PostgreSQL")

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.Validator = validators.NewValidator()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	if err := router.SetupRoutes(e, db, cfg); err != nil {
		log.Fatal("failed to set up routes", zap.Error(err))
	}

	// Start server
	log.Info("starting server", zap.String("port", cfg.Port))
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
