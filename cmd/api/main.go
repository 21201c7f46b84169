package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/roadassist/dispatch/configs"
	"github.com/roadassist/dispatch/internal/application/usecase/approval"
	"github.com/roadassist/dispatch/internal/application/usecase/dispatch"
	"github.com/roadassist/dispatch/internal/application/usecase/registry"
	"github.com/roadassist/dispatch/internal/application/usecase/support"
	"github.com/roadassist/dispatch/internal/infra/auth"
	"github.com/roadassist/dispatch/internal/infra/database"
	"github.com/roadassist/dispatch/internal/infra/event"
	"github.com/roadassist/dispatch/internal/infra/geo"
	"github.com/roadassist/dispatch/internal/infra/geocode"
	"github.com/roadassist/dispatch/internal/infra/notify"
	"github.com/roadassist/dispatch/internal/infra/storage"
	"github.com/roadassist/dispatch/internal/infra/web"
	"github.com/roadassist/dispatch/internal/infra/web/handler"
	"github.com/roadassist/dispatch/pkg/logger"
	"github.com/roadassist/dispatch/pkg/metrics"
	"github.com/roadassist/dispatch/pkg/otel"
)

const serviceName = "dispatch-api"

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

	mongoClient, err := database.Connect(ctx, config.MongoURI)
	if err != nil {
		log.Fatalf("mongo: %v", err)
	}
	defer mongoClient.Disconnect(context.Background())

	db := mongoClient.Database(config.MongoDatabase)
	if err := database.EnsureIndexes(ctx, db); err != nil {
		log.Fatalf("mongo indexes: %v", err)
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

	amqpChannel, err := amqpConn.Channel()
	if err != nil {
		log.Fatalf("rabbitmq channel: %v", err)
	}
	defer amqpChannel.Close()

	publisher, err := event.NewPublisher(amqpChannel)
	if err != nil {
		log.Fatalf("event publisher: %v", err)
	}

	promRegistry := prometheus.NewRegistry()
	appMetrics := metrics.NewPrometheusMetrics(promRegistry, serviceName)

	// Repositories and adapters.
	requestRepo := database.NewRequestRepository(db)
	garageRepo := database.NewGarageRepository(db)
	mechanicRepo := database.NewMechanicRepository(db)
	contactRepo := database.NewContactRepository(db)
	userRepo := database.NewUserRepository(db)
	garageIndex := geo.NewRedisGarageIndex(redisClient, appLogger, appMetrics)
	geocoder := geocode.NewNominatimGeocoder(config.GeocoderBaseURL, appLogger)
	notifier := notify.NewLogNotifier(appLogger)
	hasher := auth.NewBcryptHasher()
	jwtManager := auth.NewJWTManager(config.JWTSecret, time.Duration(config.JWTExpiresHours)*time.Hour)

	certificates, err := storage.NewLocalCertificateStore(config.CertificateDir, config.CertificateBaseURL)
	if err != nil {
		log.Fatalf("certificate store: %v", err)
	}

	// Use cases, wrapped with metrics where executions are tracked.
	submit := &dispatch.SubmitMetricsDecorator{
		Next:    dispatch.NewSubmitUseCase(requestRepo, garageRepo, garageIndex, geocoder, publisher, appLogger, config.CandidateLimit),
		Metrics: appMetrics,
	}
	assignGarage := &dispatch.AssignGarageMetricsDecorator{
		Next:    dispatch.NewAssignGarageUseCase(requestRepo, garageRepo, publisher, appLogger),
		Metrics: appMetrics,
	}
	assignMechanic := &dispatch.AssignMechanicMetricsDecorator{
		Next:    dispatch.NewAssignMechanicUseCase(requestRepo, mechanicRepo, publisher, appLogger),
		Metrics: appMetrics,
	}
	complete := &dispatch.CompleteMetricsDecorator{
		Next:    dispatch.NewCompleteUseCase(requestRepo, publisher, appLogger),
		Metrics: appMetrics,
	}
	reject := &dispatch.RejectMetricsDecorator{
		Next:    dispatch.NewRejectUseCase(requestRepo, publisher, appLogger),
		Metrics: appMetrics,
	}
	listForGarage := dispatch.NewListForGarageUseCase(requestRepo)

	registerGarage := registry.NewRegisterGarageUseCase(garageRepo, certificates, hasher, jwtManager, appLogger)
	registerMechanic := registry.NewRegisterMechanicUseCase(garageRepo, mechanicRepo, appLogger)
	updateMechanic := registry.NewUpdateMechanicUseCase(mechanicRepo, appLogger)
	deleteMechanic := registry.NewDeleteMechanicUseCase(mechanicRepo, appLogger)
	login := registry.NewGarageLoginUseCase(garageRepo, hasher, jwtManager)
	registerUser := registry.NewRegisterUserUseCase(userRepo, hasher, jwtManager, appLogger)
	userLogin := registry.NewUserLoginUseCase(userRepo, hasher, jwtManager)

	approve := approval.NewApproveGarageUseCase(garageRepo, garageIndex, appLogger)
	rejectGarage := approval.NewRejectGarageUseCase(garageRepo, garageIndex, appLogger)
	roster := approval.NewRosterUseCase(garageRepo, mechanicRepo)
	resubmit := approval.NewResubmitGarageUseCase(garageRepo, appLogger)
	stats := approval.NewStatsUseCase(garageRepo)

	sendContact := &support.SendContactUseCaseImpl{
		Messages:     contactRepo,
		Notifier:     notifier,
		SupportInbox: config.SupportInbox,
		Logger:       appLogger,
	}

	router := web.NewRouter(web.RouterDeps{
		Requests: handler.NewRequestHandler(submit, assignGarage, assignMechanic, complete, reject, listForGarage, appLogger),
		Garages:  handler.NewGarageHandler(registerGarage, registerMechanic, updateMechanic, deleteMechanic, login, roster, resubmit),
		Users:    handler.NewUserHandler(registerUser, userLogin),
		Admin:    handler.NewAdminHandler(approve, rejectGarage, stats),
		Contact:  handler.NewContactHandler(sendContact),
		Health: handler.NewHealthHandler(serviceName,
			handler.WithMongo(mongoClient),
			handler.WithRedis(redisClient),
			handler.WithRabbitMQ(config.AMQPURI),
		),
		JWT:               jwtManager,
		Logger:            appLogger,
		Metrics:           appMetrics,
		Registry:          promRegistry,
		AllowResubmission: config.AllowResubmission,
	})

	server := &http.Server{
		Addr:              ":" + config.WebServerPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		appLogger.Info(groupCtx, "http server listening", logger.String("port", config.WebServerPort))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		appLogger.Error(context.Background(), "server stopped with error", logger.WithError(err))
	}
}
