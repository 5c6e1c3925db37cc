package openai

import (
	"context"
	"fmt"
	"strings"

	"mycare-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

func (c *Client) Translate(ctx context.Context, text, sourceLanguage, targetLanguage string) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	c.Log.Info("openAIClient.Translate called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingLanguageKey, targetLanguage),
	)

	source := "auto"
	if sourceLanguage != "" {
		source = languageName(sourceLanguage)
	}

	messages := []chatMessage{
		{Role: "system", Content: fmt.Sprintf(translatorSystemPrompt, source, languageName(targetLanguage))},
		{Role: "user", Content: text},
	}

	content, err := c.chatCompletion(ctx, messages, 0.1, 1000, false)
	if err != nil {
		c.Log.Error("openAIClient.Translate error from completion",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", err
	}

	return strings.TrimSpace(content), nil
}
