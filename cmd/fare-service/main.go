package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"

	"github.com/mrstm/fare-service/internal/pkg/config"
	"github.com/mrstm/fare-service/internal/pkg/database"
	"github.com/mrstm/fare-service/internal/pkg/health"
	"github.com/mrstm/fare-service/internal/pkg/logger"
	"github.com/mrstm/fare-service/internal/pkg/middleware"
	"github.com/mrstm/fare-service/internal/pkg/nats"
	nrpkg "github.com/mrstm/fare-service/internal/pkg/newrelic"
	"github.com/mrstm/fare-service/services/fare/gateway"
	"github.com/mrstm/fare-service/services/fare/handler"
	"github.com/mrstm/fare-service/services/fare/pricing"
	"github.com/mrstm/fare-service/services/fare/repository"
	"github.com/mrstm/fare-service/services/fare/usecase"
)

func main() {
	appName := "fare-service"
	configPath := "config/fare.env"
	configs := config.InitConfig(configPath)

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// Initialize NATS client
	natsClient, err := nats.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	// Initialize repositories
	bookingRepo := repository.NewBookingRepository(configs, postgresClient.GetDB())
	fareRepo := repository.NewFareRepository(configs, postgresClient.GetDB())
	rateRepo := repository.NewFareRateRepository(configs, postgresClient.GetDB(), redisClient)

	// Initialize gateways
	mapsGW, err := gateway.NewMapsGW(configs)
	if err != nil {
		zapLogger.Fatal("Failed to initialize maps gateway", logger.Err(err))
	}
	fareGW := gateway.NewFareGW(natsClient)

	// Initialize usecase with the default pricing components
	fareUC := usecase.NewFareUC(configs, bookingRepo, fareRepo, rateRepo, mapsGW, fareGW,
		pricing.NewTrafficSurge(), pricing.NewFlatRateStrategy())

	// Initialize handlers
	fareHandler := handler.NewHandler(fareUC, natsClient, configs, nrApp)

	// Initialize NATS consumers
	if err := fareHandler.InitNATSConsumers(); err != nil {
		zapLogger.Fatal("Failed to initialize NATS consumers", logger.Err(err))
	}

	// Initialize Echo server
	e := echo.New()

	// Add middlewares (panic recovery should be first)
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	if nrApp != nil {
		e.Use(nrecho.Middleware(nrApp))
	}

	// Health endpoints with dependency checks
	healthService := health.NewService(zapLogger)
	healthService.AddChecker("postgres", health.NewPostgresChecker(postgresClient))
	healthService.AddChecker("redis", health.NewRedisChecker(redisClient))
	healthService.AddChecker("nats", health.NewNATSChecker(natsClient))
	health.RegisterEndpoints(e, appName, configs.App.Version, healthService)

	// Register service routes
	fareHandler.RegisterRoutes(e)

	// Start server in goroutine
	go func() {
		addr := fmt.Sprintf(":%d", configs.Server.Port)
		zapLogger.Info("Starting HTTP server",
			logger.String("address", addr),
			logger.String("app", appName))

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start server", logger.Err(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quit
	zapLogger.Info("Received shutdown signal", logger.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	zapLogger.Info("Shutting down HTTP server...")
	if err := e.Shutdown(ctx); err != nil {
		zapLogger.Error("Server forced to shutdown", logger.Err(err))
	}

	zapLogger.Info("Closing PostgreSQL connection...")
	postgresClient.Close()

	zapLogger.Info("Closing Redis connection...")
	if err := redisClient.Close(); err != nil {
		zapLogger.Error("Error closing Redis connection", logger.Err(err))
	}

	zapLogger.Info("Closing NATS connection...")
	natsClient.Close()

	if nrApp != nil {
		zapLogger.Info("Shutting down New Relic...")
		nrApp.Shutdown(10 * time.Second)
	}

	zapLogger.Info("Server exiting gracefully")
}
