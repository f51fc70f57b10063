package main

import (
	"context"
	"os/signal"
	"syscall"

	accountapp "github.com/muhammadheryan/marketplace/application/account"
	notificationapp "github.com/muhammadheryan/marketplace/application/notification"
	"github.com/muhammadheryan/marketplace/cmd/config"
	"github.com/muhammadheryan/marketplace/cmd/database"
	redisclient "github.com/muhammadheryan/marketplace/cmd/redis"
	accountRepo "github.com/muhammadheryan/marketplace/repository/account"
	contactRepo "github.com/muhammadheryan/marketplace/repository/contact"
	redisRepo "github.com/muhammadheryan/marketplace/repository/redis"
	"github.com/muhammadheryan/marketplace/thirdparty/mail"
	"github.com/muhammadheryan/marketplace/thirdparty/rabbitmq"
	"github.com/muhammadheryan/marketplace/utils/logger"
	"go.uber.org/zap"
)

// notifier consumes notification events and delivers them by e-mail.
func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		panic(err)
	}
	defer logger.Close()

	db, err := database.Open(cfg)
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}
	defer db.Close()

	rdb, err := redisclient.New(cfg)
	if err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer rdb.Close()

	publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
	if err != nil {
		logger.Fatal("err connect rabbitmq publisher", zap.Error(err))
	}
	defer publisher.Close()

	consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
	if err != nil {
		logger.Fatal("err connect rabbitmq consumer", zap.Error(err))
	}
	defer consumer.Close()

	AccountRepo := accountRepo.NewAccountRepository(db)
	AccountApp := accountapp.NewAccountApp(cfg, AccountRepo, contactRepo.NewContactRepository(db), redisRepo.NewRepository(rdb), publisher)
	mailer := mail.NewSMTPSender(cfg.Mail.Host, cfg.Mail.Port, cfg.Mail.User, cfg.Mail.Password, cfg.Mail.From)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := consumer.Start(ctx, notificationapp.NewDeliveryApp(AccountRepo, AccountApp, mailer)); err != nil {
		logger.Fatal("err start consumer", zap.Error(err))
	}

	logger.Info("notifier running")
	<-ctx.Done()
	logger.Info("notifier stopped")
}
