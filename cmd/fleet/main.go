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

	"github.com/tapea/backoffice/internal/pkg/config"
	"github.com/tapea/backoffice/internal/pkg/database"
	"github.com/tapea/backoffice/internal/pkg/health"
	"github.com/tapea/backoffice/internal/pkg/logger"
	"github.com/tapea/backoffice/internal/pkg/middleware"
	"github.com/tapea/backoffice/services/fleet/handler"
	"github.com/tapea/backoffice/services/fleet/repository"
	"github.com/tapea/backoffice/services/fleet/usecase"
)

func main() {
	appName := "fleet-service"
	configPath := "config/fleet.env"
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	// Set global logger for application-wide access
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

	// Initialize Redis client (live driver positions, login rate limiting)
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// Initialize repository
	fleetRepo := repository.NewFleetRepository(configs, postgresClient.GetDB(), redisClient)

	// Initialize usecase
	fleetUC, err := usecase.NewFleetUC(configs, fleetRepo)
	if err != nil {
		zapLogger.Fatal("Failed to initialize fleet use case", logger.Err(err))
	}

	// Initialize handlers
	fleetHandler := handler.NewFleetHandler(fleetUC)

	// Initialize Echo server
	e := echo.New()

	// Add middlewares (panic recovery should be first)
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Initialize API key middleware
	apiKeyMiddleware := middleware.NewAPIKeyMiddleware(&configs.APIKey)

	// Access-code login gets a per-IP rate limiter backed by redis
	loginRateLimiter := middleware.IPRateLimiter(10, time.Minute, redisClient.GetClient())

	// Initialize health service
	healthService := health.NewService(zapLogger)
	healthService.AddChecker("postgres", health.NewPostgresChecker(postgresClient))
	healthService.AddChecker("redis", health.NewRedisChecker(redisClient))
	health.RegisterEndpoints(e, appName, configs.App.Version, healthService)

	// Register service routes
	fleetHandler.RegisterRoutes(e, configs, apiKeyMiddleware, loginRateLimiter)

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

	ctx, cancel := context.WithTimeout(context.Background(),
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		zapLogger.Error("Server forced to shutdown", logger.Err(err))
	}

	postgresClient.Close()
	if err := redisClient.Close(); err != nil {
		zapLogger.Error("Error closing Redis connection", logger.Err(err))
	}

	zapLogger.Info("Server exiting gracefully")
}
