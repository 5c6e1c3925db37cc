package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"mycare-service/internal/app/config"
	"mycare-service/internal/pkg/constvars"
	"mycare-service/internal/pkg/exceptions"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Client talks to the OpenAI REST API. All credentialed calls happen here,
// server-side; the API key never reaches a client of this service.
type Client struct {
	BaseUrl            string
	APIKey             string
	Model              string
	TranscriptionModel string
	HTTPClient         *http.Client
	Limiter            *rate.Limiter
	Log                *zap.Logger
}

func NewClient(internalConfig *config.InternalConfig, logger *zap.Logger) *Client {
	return &Client{
		BaseUrl:            internalConfig.OpenAI.BaseUrl,
		APIKey:             internalConfig.OpenAI.APIKey,
		Model:              internalConfig.OpenAI.Model,
		TranscriptionModel: internalConfig.OpenAI.TranscriptionModel,
		HTTPClient: &http.Client{
			Timeout: time.Duration(internalConfig.OpenAI.RequestTimeoutInSecond) * time.Second,
		},
		Limiter: rate.NewLimiter(rate.Limit(internalConfig.OpenAI.RequestsPerSecond), 1),
		Log:     logger,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatCompletionRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	Temperature    float64         `json:"temperature"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type apiError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *apiError `json:"error,omitempty"`
}

// chatCompletion sends one chat request and returns the assistant content.
// Calls are rate limited so bursts from parallel workflows stay under the
// account quota.
func (c *Client) chatCompletion(ctx context.Context, messages []chatMessage, temperature float64, maxTokens int, jsonResponse bool) (string, error) {
	if err := c.Limiter.Wait(ctx); err != nil {
		return "", exceptions.ErrDiagnosisUnavailable(err)
	}

	payload := chatCompletionRequest{
		Model:       c.Model,
		Messages:    messages,
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}
	if jsonResponse {
		payload.ResponseFormat = &responseFormat{Type: "json_object"}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", exceptions.ErrCannotMarshalJSON(err)
	}

	request, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.BaseUrl+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", exceptions.ErrCreateHTTPRequest(err)
	}
	request.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	request.Header.Set(constvars.HeaderAuthorization, "Bearer "+c.APIKey)

	response, err := c.HTTPClient.Do(request)
	if err != nil {
		return "", exceptions.ErrDiagnosisUnavailable(err)
	}
	defer response.Body.Close()

	var completion chatCompletionResponse
	if err := json.NewDecoder(response.Body).Decode(&completion); err != nil {
		return "", exceptions.ErrCollaboratorMalformedResponse(err)
	}
	if completion.Error != nil {
		return "", exceptions.ErrCollaboratorAPIError(completion.Error.Message)
	}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return "", exceptions.ErrCollaboratorAPIError(fmt.Sprintf("status %d", response.StatusCode))
	}
	if len(completion.Choices) == 0 {
		return "", exceptions.ErrCollaboratorMalformedResponse(fmt.Errorf("no choices in completion"))
	}

	return completion.Choices[0].Message.Content, nil
}

// languageName resolves a platform language code to the English name used in
// prompts, falling back to the raw code for anything unrecognized.
func languageName(code string) string {
	if name, ok := constvars.RecognizedLanguages[code]; ok {
		return name
	}
	return code
}
