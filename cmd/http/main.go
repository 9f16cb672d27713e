package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kurabi-service/internal/app/config"
	"kurabi-service/internal/app/delivery/http/middlewares"
	"kurabi-service/internal/app/delivery/http/routers"
	"kurabi-service/internal/app/drivers/database"
	"kurabi-service/internal/app/drivers/logger"
	"kurabi-service/internal/app/drivers/messaging"
	"kurabi-service/internal/app/drivers/storage"
	"kurabi-service/internal/app/services/core/events"
	"kurabi-service/internal/app/services/core/reservations"
	"kurabi-service/internal/app/services/shared/attributionqueue"
	"kurabi-service/internal/app/services/shared/locker"
	"kurabi-service/internal/app/services/shared/redis"
	sharedstorage "kurabi-service/internal/app/services/shared/storage"
	"kurabi-service/internal/app/services/shared/whatsapp"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		zapLogger.Fatal("Error loading location", zap.Error(err))
	}
	time.Local = location

	mongoClient := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQConnection := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		MongoClient:    mongoClient,
		MongoDB:        mongoClient.Database(driverConfig.MongoDB.DbName),
		Redis:          redisClient,
		RabbitMQ:       rabbitMQConnection,
		Minio:          minioClient,
		Logger:         zapLogger,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	bootstrapTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		zapLogger.Fatal("Error while closing application resources", zap.Error(err))
	}

	zapLogger.Info("Server exiting")
}

func bootstrapTheApp(bootstrap *config.Bootstrap) {
	// Shared services
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, bootstrap.Logger)
	minioStorage := sharedstorage.NewMinioStorage(bootstrap.Minio)
	whatsAppService := whatsapp.NewWhatsAppService(bootstrap.InternalConfig.WhatsApp.Number)

	queueService, err := attributionqueue.NewQueueService(
		bootstrap.RabbitMQ,
		bootstrap.Logger,
		bootstrap.InternalConfig.Reservation.QueueName,
		bootstrap.InternalConfig.Reservation.DLQName,
		bootstrap.InternalConfig.Reservation.WorkerBatchSize,
	)
	if err != nil {
		bootstrap.Logger.Fatal("Error initializing attribution queue", zap.Error(err))
	}

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	// Events
	eventMongoRepository := events.NewEventMongoRepository(
		bootstrap.MongoClient,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	eventUsecase, err := events.NewEventUsecase(
		eventMongoRepository,
		redisRepository,
		minioStorage,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	if err != nil {
		bootstrap.Logger.Fatal("Error initializing event usecase", zap.Error(err))
	}
	eventController := events.NewEventController(bootstrap.Logger, eventUsecase)

	// Reservations
	reservationLogRepository := reservations.NewReservationLogMongoRepository(
		bootstrap.MongoClient,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	reservationUsecase, err := reservations.NewReservationUsecase(
		reservationLogRepository,
		queueService,
		whatsAppService,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	if err != nil {
		bootstrap.Logger.Fatal("Error initializing reservation usecase", zap.Error(err))
	}
	reservationController := reservations.NewReservationController(bootstrap.Logger, reservationUsecase)

	// Background flush worker
	worker := attributionqueue.NewWorker(
		bootstrap.Logger,
		bootstrap.InternalConfig,
		lockerService,
		queueService,
		reservationLogRepository,
	)
	worker.Start(context.Background())
	bootstrap.WorkerStop = worker.Stop

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		bootstrap.Logger,
		middlewares,
		eventController,
		reservationController,
	)
}
