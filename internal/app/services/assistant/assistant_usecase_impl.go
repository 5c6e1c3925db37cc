package assistant

import (
	"context"
	"sync"

	"mycare-service/internal/app/contracts"
	"mycare-service/internal/pkg/constvars"
	"mycare-service/internal/pkg/dto/requests"
	"mycare-service/internal/pkg/dto/responses"

	"go.uber.org/zap"
)

type assistantUsecase struct {
	ChatClient       contracts.ChatClient
	LanguageDetector contracts.LanguageDetector
	Log              *zap.Logger
}

var (
	assistantUsecaseInstance contracts.AssistantUsecase
	onceAssistantUsecase     sync.Once
)

func NewAssistantUsecase(
	chatClient contracts.ChatClient,
	languageDetector contracts.LanguageDetector,
	logger *zap.Logger,
) contracts.AssistantUsecase {
	onceAssistantUsecase.Do(func() {
		instance := &assistantUsecase{
			ChatClient:       chatClient,
			LanguageDetector: languageDetector,
			Log:              logger,
		}
		assistantUsecaseInstance = instance
	})
	return assistantUsecaseInstance
}

// Answer tries the fixed FAQ table before spending a call on the language
// model. Language fallback order: explicit request language, detected
// language, then English.
func (uc *assistantUsecase) Answer(ctx context.Context, request *requests.ChatRequest) (*responses.AssistantAnswer, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	language := request.Language
	if language == "" {
		language = uc.LanguageDetector.DetectLanguage(request.Message)
	}
	if language == "" {
		language = constvars.LanguageEnglish
	}

	uc.Log.Info("assistantUsecase.Answer called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingLanguageKey, language),
	)

	if answer := matchFAQ(request.Message); answer != "" {
		return &responses.AssistantAnswer{
			Answer:   answer,
			Language: constvars.LanguageEnglish,
		}, nil
	}

	answer, err := uc.ChatClient.Ask(ctx, request.Message, language)
	if err != nil {
		uc.Log.Error("assistantUsecase.Answer error from chat client",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	return &responses.AssistantAnswer{
		Answer:   answer,
		Language: language,
	}, nil
}
