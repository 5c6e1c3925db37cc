package routers

import (
	"fmt"

	"mycare-service/internal/app/config"
	"mycare-service/internal/app/delivery/http/middlewares"
	"mycare-service/internal/app/services/assistant"
	"mycare-service/internal/app/services/consultations"
	"mycare-service/internal/app/services/hospitals"
	"mycare-service/internal/app/services/meetings"
	"mycare-service/internal/app/services/transcription"
	"mycare-service/internal/app/services/workflow"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	workflowController *workflow.WorkflowController,
	consultationController *consultations.ConsultationController,
	hospitalController *hospitals.HospitalController,
	transcriptionController *transcription.TranscriptionController,
	meetingController *meetings.MeetingController,
	assistantController *assistant.AssistantController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID", "x-api-key"},
		ExposedHeaders:   []string{"Link", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.APIKeyAuth)

	normalLimiter, apiKeyLimiter := middlewares.CreateRateLimiters()
	router.Use(middlewares.ConditionalRateLimit(normalLimiter, apiKeyLimiter))

	router.Use(middlewares.ErrorHandler)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/workflow", func(r chi.Router) {
				attachWorkflowRoutes(r, middlewares, workflowController)
			})

			attachConsultationRoutes(r, middlewares, consultationController)
			attachHospitalRoutes(r, hospitalController)
			attachMediaRoutes(r, transcriptionController, meetingController)
			attachAssistantRoutes(r, assistantController)
		})
	})
}
