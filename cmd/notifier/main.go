package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/sony/gobreaker"

	"github.com/roadassist/dispatch/configs"
	"github.com/roadassist/dispatch/internal/infra/event"
	"github.com/roadassist/dispatch/internal/infra/notify"
	"github.com/roadassist/dispatch/internal/infra/storage"
	"github.com/roadassist/dispatch/pkg/logger"
	"github.com/roadassist/dispatch/pkg/metrics"
	"github.com/roadassist/dispatch/pkg/otel"
)

const serviceName = "dispatch-notifier"

func main() {
	config, err := configs.LoadConfig(".")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	appLogger := logger.NewLogger(serviceName, true)

	if config.OTELExporterAddr != "" {
		shutdown, err := otel.InitProvider(ctx, serviceName, config.OTELExporterAddr)
		if err != nil {
			log.Fatalf("init tracing: %v", err)
		}
		defer shutdown()
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr: config.RedisHost + ":" + config.RedisPort,
	})
	defer redisClient.Close()

	amqpConn, err := amqp.Dial(config.AMQPURI)
	if err != nil {
		log.Fatalf("rabbitmq: %v", err)
	}
	defer amqpConn.Close()

	appMetrics := metrics.NewPrometheusMetrics(prometheus.NewRegistry(), serviceName)
	notifier := notify.NewLogNotifier(appLogger)
	dedup := storage.NewRedisDedupStore(redisClient)

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "notifications",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})

	handler := event.NewNotificationHandler(notifier)
	handler = event.WrapResilient(appMetrics, "notifications", 10*time.Second, breaker, handler)
	handler = event.WrapExponentialBackoff(appLogger, appMetrics, "notifications", 3, 500*time.Millisecond, handler)
	handler = event.WrapIdempotency(appLogger, dedup, "notifications", 24*time.Hour, handler)

	consumer := event.NewConsumer(amqpConn, handler, appLogger)

	appLogger.Info(ctx, "notifier worker started", logger.String("queue", event.NotificationQueue))
	if err := consumer.Start(ctx, event.NotificationQueue); err != nil && ctx.Err() == nil {
		log.Fatalf("consumer stopped: %v", err)
	}
}
