package routers

import (
	"mycare-service/internal/app/services/assistant"

	"github.com/go-chi/chi/v5"
)

func attachAssistantRoutes(router chi.Router, assistantController *assistant.AssistantController) {
	router.Post("/chat", assistantController.Chat)
}
