package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ikkim/chorokshop-backend/config"
	"github.com/ikkim/chorokshop-backend/internal/app/controller"
	"github.com/ikkim/chorokshop-backend/internal/app/repository"
	"github.com/ikkim/chorokshop-backend/internal/app/service"
	"github.com/ikkim/chorokshop-backend/internal/router"
	"github.com/ikkim/chorokshop-backend/internal/scheduler"
	"github.com/ikkim/chorokshop-backend/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // Use "json" for production
		EnableColor: true,
	})

	logger.Info("Starting CHOROKSHOP Backend Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	// Initialize repositories
	catalogRepo, err := repository.NewCatalogRepository(repository.DefaultCatalog())
	if err != nil {
		logger.Fatal("Failed to build product catalog", err)
	}
	cartRepo := repository.NewCartRepository()

	// Initialize services
	catalogService := service.NewCatalogService(catalogRepo)
	cartService := service.NewCartService(cartRepo, catalogRepo)

	// Initialize controllers
	catalogController := controller.NewCatalogController(catalogService)
	cartController := controller.NewCartController(cartService)
	checkoutController := controller.NewCheckoutController(cartService)

	// Start cart stats scheduler
	statsScheduler := scheduler.NewCartStatsScheduler(cartService, cfg.Stats.Schedule)
	if err := statsScheduler.Start(); err != nil {
		logger.Fatal("Failed to start cart stats scheduler", err)
	}

	// Setup router
	r := router.NewRouter(
		catalogController,
		cartController,
		checkoutController,
		cfg,
	)
	engine := r.Setup()

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	statsScheduler.Stop()
	logger.Info("Server stopped successfully")
}
