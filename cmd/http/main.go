package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mycare-service/internal/app/config"
	"mycare-service/internal/app/delivery/http/middlewares"
	"mycare-service/internal/app/delivery/http/routers"
	"mycare-service/internal/app/drivers/database"
	"mycare-service/internal/app/drivers/logger"
	"mycare-service/internal/app/drivers/messaging"
	"mycare-service/internal/app/drivers/storage"
	"mycare-service/internal/app/services/assistant"
	"mycare-service/internal/app/services/consultations"
	"mycare-service/internal/app/services/hospitals"
	"mycare-service/internal/app/services/meetings"
	"mycare-service/internal/app/services/openai"
	"mycare-service/internal/app/services/patients"
	"mycare-service/internal/app/services/shared/notifications"
	redisstore "mycare-service/internal/app/services/shared/redis"
	miniostorage "mycare-service/internal/app/services/shared/storage"
	"mycare-service/internal/app/services/transcription"
	"mycare-service/internal/app/services/workflow"
	"mycare-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)
	defer log.Sync()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("failed to load timezone", zap.Error(err))
	}
	time.Local = location

	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQConnection := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)

	bootstrap := config.Bootstrap{
		Router:         chi.NewRouter(),
		Redis:          redisClient,
		RabbitMQ:       rabbitMQConnection,
		Minio:          minioClient,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	if !internalConfig.App.DemoMode {
		bootstrap.MongoDB = database.NewMongoDB(driverConfig)
	}

	bootstrapTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: bootstrap.Router,
	}

	go func() {
		log.Info("server listening", zap.String("addr", internalConfig.App.Port))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("waiting for in-flight requests to finish")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal("server forced to shutdown", zap.Error(err))
	}

	log.Info("server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap) {
	log := bootstrap.Logger
	internalConfig := bootstrap.InternalConfig

	// Repositories: mongo in production, in-memory when running as a demo.
	var (
		patientRepository       = patients.NewPatientInMemoryRepository()
		medicalRecordRepository = patients.NewMedicalRecordInMemoryRepository()
		consultationRepository  = consultations.NewConsultationInMemoryRepository()
	)
	if !internalConfig.App.DemoMode {
		dbName := bootstrap.DriverConfig.MongoDB.DbName
		patientRepository = patients.NewPatientMongoRepository(bootstrap.MongoDB, dbName)
		medicalRecordRepository = patients.NewMedicalRecordMongoRepository(bootstrap.MongoDB, dbName)
		consultationRepository = consultations.NewConsultationMongoRepository(bootstrap.MongoDB, dbName)
	}

	sessionStore := redisstore.NewSessionStore(
		bootstrap.Redis,
		time.Duration(internalConfig.Workflow.SessionTTLInMinute)*time.Minute,
		time.Duration(internalConfig.Workflow.DiagnosisLockTTLInSecond)*time.Second,
	)

	notificationService, err := notifications.NewRabbitMQNotificationService(
		bootstrap.RabbitMQ,
		internalConfig.App.NotificationQueue,
		internalConfig.App.UrgentNotificationQueue,
	)
	if err != nil {
		log.Fatal("failed to declare notification queues", zap.Error(err))
	}

	objectStorage := miniostorage.NewMinioStorage(bootstrap.Minio, bootstrap.DriverConfig.Minio.BucketName)

	// One OpenAI client backs diagnosis, translation, chat and transcription.
	openaiClient := openai.NewClient(internalConfig, log)

	hospitalResolver := hospitals.NewResolver(internalConfig, openaiClient, log)

	consultationUsecase := consultations.NewConsultationUsecase(
		consultationRepository,
		patientRepository,
		medicalRecordRepository,
		openaiClient,
		openaiClient,
		hospitalResolver,
		notificationService,
		log,
	)
	consultationController := consultations.NewConsultationController(log, consultationUsecase)

	hospitalController := hospitals.NewHospitalController(log, consultationUsecase)

	meetingUsecase := meetings.NewMeetingUsecase(log)
	meetingController := meetings.NewMeetingController(log, meetingUsecase)

	transcriptionUsecase := transcription.NewTranscriptionUsecase(openaiClient, openaiClient, objectStorage, log)
	transcriptionController := transcription.NewTranscriptionController(log, transcriptionUsecase)

	workflowUsecase := workflow.NewWorkflowUsecase(
		sessionStore,
		consultationUsecase,
		meetingUsecase,
		transcriptionUsecase,
		internalConfig,
		log,
	)
	workflowController := workflow.NewWorkflowController(log, workflowUsecase)

	assistantUsecase := assistant.NewAssistantUsecase(openaiClient, assistant.NewHeuristicLanguageDetector(), log)
	assistantController := assistant.NewAssistantController(log, assistantUsecase)

	if internalConfig.App.DemoMode {
		seedCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		seedCtx = context.WithValue(seedCtx, constvars.CONTEXT_REQUEST_ID_KEY, "bootstrap-seed")
		if err := consultationUsecase.InitializeMockData(seedCtx); err != nil {
			log.Fatal("failed to seed demo data", zap.Error(err))
		}
	}

	appMiddlewares := middlewares.NewMiddlewares(log, internalConfig)

	if internalConfig.App.Env != "production" {
		bootstrap.Router.Use(appMiddlewares.RequestLogger(internalConfig.App, logger.NewLogrusLogger(internalConfig)))
	}

	routers.SetupRoutes(
		bootstrap.Router,
		internalConfig,
		appMiddlewares,
		workflowController,
		consultationController,
		hospitalController,
		transcriptionController,
		meetingController,
		assistantController,
	)
}
