package config

import (
	"kurabi-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "kurabi"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "defaultPassword"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                       utils.GetEnvString("APP_ENV", "development"),
			Port:                      utils.GetEnvString("APP_PORT", ":8080"),
			Version:                   utils.GetEnvString("APP_VERSION", "v1.0"),
			Address:                   utils.GetEnvString("APP_ADDRESS", "localhost"),
			Timezone:                  utils.GetEnvString("APP_TIMEZONE", "Asia/Tokyo"),
			EndpointPrefix:            utils.GetEnvString("APP_ENDPOINT_PREFIX", "/api/v1"),
			MaxRequests:               utils.GetEnvInt("APP_MAX_REQUESTS", 100),
			ShutdownTimeoutInSeconds:  utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
			MaxTimeRequestsPerSeconds: utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 1),
		},
		Calendar: Calendar{
			WindowDays:               utils.GetEnvInt("CALENDAR_WINDOW_DAYS", 3),
			DayWindowStartMinutes:    utils.GetEnvInt("CALENDAR_DAY_WINDOW_START_MINUTES", 330),
			DayWindowEndMinutes:      utils.GetEnvInt("CALENDAR_DAY_WINDOW_END_MINUTES", 1260),
			MinEventHeightPercent:    utils.GetEnvFloat("CALENDAR_MIN_EVENT_HEIGHT_PERCENT", 3.0),
			CutoffMinutesBeforeStart: utils.GetEnvInt("CALENDAR_CUTOFF_MINUTES_BEFORE_START", 30),
			CacheTTLInSeconds:        utils.GetEnvInt("CALENDAR_CACHE_TTL_IN_SECONDS", 60),
		},
		Reservation: Reservation{
			QueueName:              utils.GetEnvString("RESERVATION_QUEUE_NAME", "reservation_log_queue"),
			DLQName:                utils.GetEnvString("RESERVATION_DLQ_NAME", "reservation_log_dlq"),
			WorkerCronSpec:         utils.GetEnvString("RESERVATION_WORKER_CRON_SPEC", "@every 30s"),
			WorkerBatchSize:        utils.GetEnvInt("RESERVATION_WORKER_BATCH_SIZE", 50),
			RetryThreshold:         utils.GetEnvInt("RESERVATION_RETRY_THRESHOLD", 5),
			AppendsPerSecond:       utils.GetEnvInt("RESERVATION_APPENDS_PER_SECOND", 10),
			WorkerLockTTLInSeconds: utils.GetEnvInt("RESERVATION_WORKER_LOCK_TTL_IN_SECONDS", 60),
		},
		WhatsApp: WhatsApp{
			Number: utils.GetEnvString("WHATSAPP_NUMBER", ""),
		},
		Minio: AppMinio{
			BucketName:                          utils.GetEnvString("MINIO_BUCKET_NAME", "kurabi-event-photos"),
			PreSignedUrlObjectExpiryTimeInHours: utils.GetEnvInt("MINIO_PRESIGNED_URL_OBJECT_EXPIRY_TIME_IN_HOURS", 12),
		},
		JWT: JWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 12),
		},
	}
}
