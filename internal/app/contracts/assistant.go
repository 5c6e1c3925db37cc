package contracts

import (
	"context"
	"mycare-service/internal/pkg/dto/requests"
	"mycare-service/internal/pkg/dto/responses"
)

type AssistantUsecase interface {
	Answer(ctx context.Context, request *requests.ChatRequest) (*responses.AssistantAnswer, error)
}

// LanguageDetector guesses the language of free text. Fallback order when
// detection is inconclusive: explicit request language, then "en".
type LanguageDetector interface {
	DetectLanguage(text string) string
}

// ChatClient answers a free-form message with the triage assistant prompt.
type ChatClient interface {
	Ask(ctx context.Context, message, language string) (string, error)
}
