package main

import (
	"fmt"
	"log"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/glossylabs/campaign/internal/pkg/config"
	"github.com/glossylabs/campaign/internal/pkg/database"
	"github.com/glossylabs/campaign/internal/pkg/health"
	"github.com/glossylabs/campaign/internal/pkg/logger"
	"github.com/glossylabs/campaign/internal/pkg/middleware"
	nsqpkg "github.com/glossylabs/campaign/internal/pkg/nsq"
	"github.com/glossylabs/campaign/internal/pkg/session"
	"github.com/glossylabs/campaign/internal/utils"
	"github.com/glossylabs/campaign/services/campaign/gateway"
	nsqgw "github.com/glossylabs/campaign/services/campaign/gateway/nsq"
	"github.com/glossylabs/campaign/services/campaign/handler"
	httpHandler "github.com/glossylabs/campaign/services/campaign/handler/http"
	nsqHandler "github.com/glossylabs/campaign/services/campaign/handler/nsq"
	"github.com/glossylabs/campaign/services/campaign/repository"
	"github.com/glossylabs/campaign/services/campaign/usecase"
)

func main() {
	appName := "campaign-service"
	configPath := "config/campaign.env"
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	// Initialize NSQ producer for fulfillment events
	producer, err := nsqpkg.NewProducer(configs.NSQ.Address)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NSQ", zap.Error(err))
	}
	defer producer.Stop()

	// Initialize session store
	sessions := session.NewManager(redisClient, configs.Session)

	// Initialize repository
	campaignRepo := repository.NewCampaignRepo(configs, postgresClient.GetDB(), redisClient)

	// Initialize gateway
	fulfillmentGW := gateway.NewFulfillmentGW(nsqgw.NewPublisher(producer))

	// Initialize usecase
	campaignUC := usecase.NewCampaignUC(campaignRepo, fulfillmentGW, configs)

	// Handlers for HTTP and NSQ
	campaignHandler := httpHandler.NewHTTPHandler(campaignUC, sessions, configs)
	shipmentHandler := nsqHandler.NewShipmentHandler(campaignUC)

	// Initialize handlers
	h := handler.NewHandler(campaignHandler, shipmentHandler, sessions, configs)

	// Start NSQ consumers
	if err := h.StartConsumers(configs.NSQ.Address); err != nil {
		zapLogger.Fatal("Failed to start NSQ consumers", zap.Error(err))
	}
	defer h.StopConsumers()

	// Initialize Echo router
	e := echo.New()
	e.Validator = utils.NewRequestValidator()

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName)

	// Register service routes
	h.RegisterRoutes(e)

	// Start server
	zapLogger.Info("Starting server",
		zap.String("app", appName),
		zap.Int("port", configs.Server.Port),
	)

	if err := e.Start(fmt.Sprintf(":%d", configs.Server.Port)); err != nil {
		zapLogger.Fatal("Failed to start server",
			zap.String("app", appName),
			zap.Error(err),
		)
	}
}
