package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/roadassist/dispatch/configs"
	"github.com/roadassist/dispatch/internal/infra/database"
	"github.com/roadassist/dispatch/internal/infra/sweep"
	"github.com/roadassist/dispatch/pkg/logger"
	"github.com/roadassist/dispatch/pkg/metrics"
)

const serviceName = "dispatch-sweeper"

func main() {
	config, err := configs.LoadConfig(".")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	appLogger := logger.NewLogger(serviceName, true)

	mongoClient, err := database.Connect(ctx, config.MongoURI)
	if err != nil {
		log.Fatalf("mongo: %v", err)
	}
	defer mongoClient.Disconnect(context.Background())

	db := mongoClient.Database(config.MongoDatabase)
	requestRepo := database.NewRequestRepository(db)
	appMetrics := metrics.NewPrometheusMetrics(prometheus.NewRegistry(), serviceName)

	sweeper := sweep.NewSweeper(
		requestRepo,
		time.Duration(config.RetentionHours)*time.Hour,
		time.Duration(config.SweepIntervalMin)*time.Minute,
		appLogger,
		appMetrics,
	)

	appLogger.Info(ctx, "sweeper started",
		logger.Int("retentionHours", config.RetentionHours),
		logger.Int("intervalMinutes", config.SweepIntervalMin),
	)
	if err := sweeper.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("sweeper stopped: %v", err)
	}
}
