package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	accountapp "github.com/muhammadheryan/marketplace/application/account"
	catalogapp "github.com/muhammadheryan/marketplace/application/catalog"
	contactapp "github.com/muhammadheryan/marketplace/application/contact"
	orderapp "github.com/muhammadheryan/marketplace/application/order"
	"github.com/muhammadheryan/marketplace/cmd/config"
	"github.com/muhammadheryan/marketplace/cmd/database"
	redisclient "github.com/muhammadheryan/marketplace/cmd/redis"
	_ "github.com/muhammadheryan/marketplace/docs"
	accountRepo "github.com/muhammadheryan/marketplace/repository/account"
	catalogRepo "github.com/muhammadheryan/marketplace/repository/catalog"
	contactRepo "github.com/muhammadheryan/marketplace/repository/contact"
	orderRepo "github.com/muhammadheryan/marketplace/repository/order"
	redisRepo "github.com/muhammadheryan/marketplace/repository/redis"
	txRepo "github.com/muhammadheryan/marketplace/repository/tx"
	"github.com/muhammadheryan/marketplace/thirdparty/pricelist"
	"github.com/muhammadheryan/marketplace/thirdparty/rabbitmq"
	"github.com/muhammadheryan/marketplace/transport"
	"github.com/muhammadheryan/marketplace/utils/logger"
	"go.uber.org/zap"
)

// @title MARKETPLACE API
// @version 1.0
// @description Marketplace API Documentation
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment), zap.String("db_driver", cfg.Database.Driver))

	// Connect to database
	db, err := database.Open(cfg)
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}
	defer db.Close()

	// Initialize Redis client
	rdb, err := redisclient.New(cfg)
	if err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer rdb.Close()

	// Notification publisher
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
	if err != nil {
		logger.Fatal("err connect rabbitmq", zap.Error(err))
	}
	defer publisher.Close()

	// Initialize repositories
	TxRepo := txRepo.NewTxRepository(db)
	AccountRepo := accountRepo.NewAccountRepository(db)
	ContactRepo := contactRepo.NewContactRepository(db)
	CatalogRepo := catalogRepo.NewCatalogRepository(db)
	OrderRepo := orderRepo.NewOrderRepository(db)
	RedisRepo := redisRepo.NewRepository(rdb)

	// Initialize application layers
	fetcher := pricelist.NewHTTPFetcher(cfg.Importer.FetchTimeout)
	rh := &transport.RestHandler{
		AccountApp: accountapp.NewAccountApp(cfg, AccountRepo, ContactRepo, RedisRepo, publisher),
		ContactApp: contactapp.NewContactApp(ContactRepo),
		CatalogApp: catalogapp.NewCatalogApp(TxRepo, CatalogRepo, fetcher),
		OrderApp:   orderapp.NewOrderApp(OrderRepo, CatalogRepo, ContactRepo, publisher),
	}

	httpTransport := transport.NewTransport(rh, transport.Options{InternalAPIKey: cfg.Internal.APIKey})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
	logger.Info("server stopped")
}
