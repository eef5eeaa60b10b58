package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/pageza/snapdish/backend/config"
	"github.com/pageza/snapdish/backend/internal/api"
	"github.com/pageza/snapdish/backend/internal/router"
	"github.com/pageza/snapdish/backend/internal/server"
	"github.com/pageza/snapdish/backend/internal/service"
)

func main() {
	logger := newLogger()
	defer logger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	visionService, err := service.NewVisionService(cfg.OpenAIAPIKey, cfg.OpenAIAPIURL, logger)
	if err != nil {
		logger.Fatal("failed to initialize vision service", zap.Error(err))
	}
	messengerService := service.NewMessengerService(
		cfg.WhatsAppToken,
		cfg.WhatsAppPhoneID,
		cfg.WhatsAppDefaultRecipient,
		cfg.WhatsAppAPIURL,
		logger,
	)
	if !cfg.MessagingConfigured() {
		logger.Warn("messaging credentials absent, delivery endpoint will reject sends")
	}

	var redisClient *redis.Client
	if cfg.RedisConfigured() {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr(),
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			logger.Warn("redis unreachable, rate limiting disabled", zap.Error(err))
			redisClient = nil
		}
	}

	recipeHandler := api.NewRecipeHandler(visionService, logger)
	messageHandler := api.NewMessageHandler(messengerService, logger)

	var origins []string
	if raw := os.Getenv("CORS_ORIGINS"); raw != "" {
		origins = strings.Split(raw, ",")
	}

	engine := router.SetupRouter(recipeHandler, messageHandler, redisClient, origins, logger)
	srv := server.New(engine, cfg.ServerHost+":"+cfg.ServerPort, logger)

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	case sig := <-quit:
		logger.Info("received signal", zap.String("signal", sig.String()))
	}

	logger.Info("shutting down server")
	if err := srv.Shutdown(context.Background()); err != nil {
		logger.Fatal("server shutdown error", zap.Error(err))
	}
	logger.Info("server stopped")
}

func newLogger() *zap.Logger {
	if config.IsProduction() {
		logger, err := zap.NewProduction()
		if err != nil {
			panic(err)
		}
		return logger
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	return logger
}
