package config

import (
	"mycare-service/internal/pkg/utils"

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
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "mycare"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "defaultPassword"),
		},
		Minio: Minio{
			Port:       utils.GetEnvString("MINIO_PORT", "9000"),
			Host:       utils.GetEnvString("MINIO_HOST", "localhost"),
			Username:   utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password:   utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "mycare-uploads"),
			UseSSL:     utils.GetEnvBool("MINIO_USE_SSL", false),
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
			Port:                      utils.GetEnvString("APP_PORT", ":3001"),
			Version:                   utils.GetEnvString("APP_VERSION", "v1"),
			Timezone:                  utils.GetEnvString("APP_TIMEZONE", "Asia/Kuala_Lumpur"),
			EndpointPrefix:            utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:               utils.GetEnvInt("APP_MAX_REQUEST", 10),
			SuperadminRateLimit:       utils.GetEnvInt("APP_SUPERADMIN_RATE_LIMIT", 100),
			ShutdownTimeout:           utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			SuperadminAPIKey:          utils.GetEnvString("APP_SUPERADMIN_API_KEY", ""),
			DemoMode:                  utils.GetEnvBool("APP_DEMO_MODE", false),
			NotificationQueue:         utils.GetEnvString("APP_RABBITMQ_NOTIFICATION_QUEUE", "mycare_notification_queue"),
			UrgentNotificationQueue:   utils.GetEnvString("APP_RABBITMQ_URGENT_NOTIFICATION_QUEUE", "mycare_urgent_notification_queue"),
		},
		OpenAI: OpenAI{
			BaseUrl:              utils.GetEnvString("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			APIKey:               utils.GetEnvString("OPENAI_API_KEY", ""),
			Model:                utils.GetEnvString("OPENAI_MODEL", "gpt-4o-mini"),
			TranscriptionModel:   utils.GetEnvString("OPENAI_TRANSCRIPTION_MODEL", "whisper-1"),
			RequestsPerSecond:    utils.GetEnvFloat("OPENAI_REQUESTS_PER_SECOND", 2),
			RequestTimeoutInSecond: utils.GetEnvInt("OPENAI_REQUEST_TIMEOUT_IN_SECOND", 60),
		},
		Workflow: Workflow{
			SessionTTLInMinute:        utils.GetEnvInt("WORKFLOW_SESSION_TTL_IN_MINUTE", 60),
			DiagnosisLockTTLInSecond:  utils.GetEnvInt("WORKFLOW_DIAGNOSIS_LOCK_TTL_IN_SECOND", 120),
			HospitalResolverBackend:   utils.GetEnvString("HOSPITAL_RESOLVER_BACKEND", "static"),
			HospitalResolverDelayInMs: utils.GetEnvInt("HOSPITAL_RESOLVER_DELAY_IN_MS", 800),
		},
		JWT: JWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 1),
		},
	}
}
