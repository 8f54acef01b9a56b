package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"credimatch/internal/api"
	"credimatch/internal/api/handlers"
	"credimatch/internal/repository"
	"credimatch/internal/service"
	"credimatch/pkg/config"
	"credimatch/pkg/logger"
	"credimatch/pkg/postgres"

	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting credimatch service")

	// Initialize database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Initialize repositories
	productRepo := repository.NewProductRepository(db, appLogger)
	leadRepo := repository.NewLeadRepository(db, appLogger)

	// Initialize services
	catalogService := service.NewCatalogService(productRepo, appLogger)

	var feedClient *service.FeedClient
	if cfg.BankAPI.Enabled {
		feedCache := repository.NewFeedCache(&cfg.Redis, appLogger)
		defer feedCache.Close()
		feedClient = service.NewFeedClient(&cfg.BankAPI, feedCache, appLogger)
		appLogger.Info("Bank API feed enabled", zap.String("base_url", cfg.BankAPI.BaseURL))
	}

	matchingService := service.NewMatchingService(catalogService, feedClient, appLogger)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	auctionRunner := service.NewAuctionRunner(&cfg.Auction, rng, time.Now, appLogger)
	auctionRunner.Start()
	defer auctionRunner.Stop()

	// Initialize handlers
	matchHandler := handlers.NewMatchHandler(matchingService, appLogger)
	auctionHandler := handlers.NewAuctionHandler(matchingService, auctionRunner, appLogger)
	leadHandler := handlers.NewLeadHandler(leadRepo, auctionRunner, appLogger)

	// Setup router
	app := api.SetupRouter(matchHandler, auctionHandler, leadHandler, appLogger)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
