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
	httpclient "github.com/tapea/backoffice/internal/pkg/http"
	"github.com/tapea/backoffice/internal/pkg/logger"
	"github.com/tapea/backoffice/internal/pkg/middleware"
	"github.com/tapea/backoffice/internal/pkg/nats"
	"github.com/tapea/backoffice/services/orders/gateway"
	"github.com/tapea/backoffice/services/orders/handler"
	"github.com/tapea/backoffice/services/orders/repository"
	"github.com/tapea/backoffice/services/orders/usecase"
)

func main() {
	appName := "orders-service"
	configPath := "config/orders.env"
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

	// Initialize NATS client
	natsClient, err := nats.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	producer := nats.NewProducer(natsClient, zapLogger)

	// HTTP clients for internal lookups on the other back-office services
	fleetClient := httpclient.NewAPIKeyClient(&configs.APIKey, "fleet-service", configs.Services.FleetServiceURL, zapLogger)
	billingClient := httpclient.NewAPIKeyClient(&configs.APIKey, "billing-service", configs.Services.BillingServiceURL, zapLogger)

	// Initialize repository
	orderRepo := repository.NewOrderRepository(configs, postgresClient.GetDB())

	// Initialize gateway
	orderGW := gateway.NewOrderGW(configs, producer, fleetClient, billingClient)

	// Initialize usecase
	orderUC, err := usecase.NewOrderUC(configs, orderRepo, orderGW)
	if err != nil {
		zapLogger.Fatal("Failed to initialize order use case", logger.Err(err))
	}

	// Initialize handlers
	orderHandler := handler.NewOrderHandler(orderUC)

	// Initialize Echo server
	e := echo.New()

	// Add middlewares (panic recovery should be first)
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Initialize API key middleware
	apiKeyMiddleware := middleware.NewAPIKeyMiddleware(&configs.APIKey)

	// Initialize health service
	healthService := health.NewService(zapLogger)
	healthService.AddChecker("postgres", health.NewPostgresChecker(postgresClient))
	healthService.AddChecker("nats", health.NewNATSChecker(natsClient))
	health.RegisterEndpoints(e, appName, configs.App.Version, healthService)

	// Register service routes
	orderHandler.RegisterRoutes(e, configs, apiKeyMiddleware)

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
	natsClient.Close()

	zapLogger.Info("Server exiting gracefully")
}
