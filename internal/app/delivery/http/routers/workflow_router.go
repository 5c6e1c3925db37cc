package routers

import (
	"mycare-service/internal/app/delivery/http/middlewares"
	"mycare-service/internal/app/services/workflow"

	"github.com/go-chi/chi/v5"
)

func attachWorkflowRoutes(router chi.Router, middlewares *middlewares.Middlewares, workflowController *workflow.WorkflowController) {
	router.Post("/", workflowController.Start)
	router.With(middlewares.SessionAuth).Post("/upload", workflowController.CompleteUpload)
	router.With(middlewares.SessionAuth).Post("/skip-upload", workflowController.SkipUpload)
	router.With(middlewares.SessionAuth).Post("/submit", workflowController.SubmitSymptoms)
	router.With(middlewares.SessionAuth).Post("/submit-audio", workflowController.TranscribeSubmit)
	router.With(middlewares.SessionAuth).Post("/request-doctor", workflowController.RequestDoctor)
	router.With(middlewares.SessionAuth).Post("/new", workflowController.StartNew)
	router.With(middlewares.SessionAuth).Delete("/", workflowController.Exit)
}
