package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	productapp "github.com/muhammadheryan/inventory-service/application/product"
	userapp "github.com/muhammadheryan/inventory-service/application/user"
	"github.com/muhammadheryan/inventory-service/cmd/config"
	"github.com/muhammadheryan/inventory-service/cmd/database"
	redisclient "github.com/muhammadheryan/inventory-service/cmd/redis"
	productRepo "github.com/muhammadheryan/inventory-service/repository/product"
	redisRepo "github.com/muhammadheryan/inventory-service/repository/redis"
	userRepo "github.com/muhammadheryan/inventory-service/repository/user"
	"github.com/muhammadheryan/inventory-service/thirdparty/rabbitmq"
	"github.com/muhammadheryan/inventory-service/transport"
	"github.com/muhammadheryan/inventory-service/utils/logger"
	validatorx "github.com/muhammadheryan/inventory-service/utils/validator"
	"go.uber.org/zap"
)

// @title INVENTORY API
// @version 1.0
// @description CRUD API for products and users
// @host localhost:3000
// @BasePath /
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	validatorx.Init()

	logger.Info("Starting server", zap.String("env", cfg.Environment), zap.String("backend", cfg.Database.Backend))

	// Connect to database and create tables
	db, err := database.Open(cfg)
	if err != nil {
		logger.Fatal("err open database", zap.Error(err))
	}
	defer db.Close()

	// Redis is optional; without it credential checks are not throttled
	redisClient, err := redisclient.New(cfg)
	if err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close(redisClient)
	}()

	// RabbitMQ is optional; without it change events are dropped
	var publisher rabbitmq.EventPublisher = rabbitmq.NoopPublisher{}
	if cfg.RabbitMQ.Host != "" {
		p, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
		if err != nil {
			logger.Fatal("err connect rabbitmq", zap.Error(err))
		}
		defer p.Close()
		publisher = p
	}

	// Initialize repositories
	ProductRepo := productRepo.NewProductRepository(db)
	UserRepo := userRepo.NewUserRepository(db)
	AttemptRepo := redisRepo.NewRepository(redisClient, cfg.Redis.ValidatePerMinute)

	// Initialize application layers
	ProductApp := productapp.NewProductApp(ProductRepo, publisher)
	UserApp := userapp.NewUserApp(UserRepo, publisher)

	httpTransport := transport.NewTransport(cfg, ProductApp, UserApp, AttemptRepo)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			logger.Error("failed server", zap.Error(err))
		}
	case <-ctx.Done():
		logger.Info("Shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("err shutdown server", zap.Error(err))
	}
}
