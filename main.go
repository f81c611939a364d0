package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"tours/internal/app"
	"tours/internal/auth"
	"tours/internal/config"
	"tours/internal/infrastructure/clients"
	"tours/internal/observability"
)

func main() {
	log.Init(logrus.InfoLevel)

	if err := run(config.Load()); err != nil {
		logrus.WithError(err).Error("Application stopped with error")
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	tp, err := observability.ConfigureTraceProvider(cfg.JaegerEndpoint)
	if err != nil {
		return err
	}
	defer func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			logrus.WithError(err).Error("Failed to flush traces")
		}
	}()

	db, err := sqlx.Open("postgres", cfg.PostgresURL)
	if err != nil {
		return err
	}
	defer db.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	defer redisClient.Close()

	images, err := clients.NewS3ImageStore(ctx, cfg.S3)
	if err != nil {
		return err
	}

	deps := app.Deps{
		DB:          db,
		RedisClient: redisClient,
		Gateway:     clients.NewRazorpayGateway(cfg.Razorpay.KeyID, cfg.Razorpay.KeySecret),
		Mailer:      clients.NewSMTPMailer(cfg.SMTP),
		Images:      images,
	}
	if cfg.TokenStore == "memory" {
		deps.Tokens = auth.NewMemoryTokenStore(cfg.TokenTTL)
	}

	a, err := app.NewApp(cfg, deps, log.NewWatermill(logrus.NewEntry(logrus.StandardLogger())))
	if err != nil {
		return err
	}

	logrus.WithField("addr", cfg.HTTPAddr).Info("Server starting...")

	return a.Run(ctx)
}
