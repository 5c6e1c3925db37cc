package openai

import (
	"context"
	"fmt"
	"strings"

	"mycare-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

// Ask answers a free-form question with the triage assistant prompt.
func (c *Client) Ask(ctx context.Context, message, language string) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	c.Log.Info("openAIClient.Ask called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingLanguageKey, language),
	)

	systemPrompt := assistantSystemPrompt
	if language != "" {
		systemPrompt = fmt.Sprintf(assistantLanguageInstruction, languageName(language)) + "\n\n" + systemPrompt
	}

	messages := []chatMessage{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: message},
	}

	content, err := c.chatCompletion(ctx, messages, 0.7, 0, false)
	if err != nil {
		c.Log.Error("openAIClient.Ask error from completion",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", err
	}

	return strings.TrimSpace(content), nil
}
