package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"mycare-service/internal/pkg/constvars"
	"mycare-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type transcriptionResponse struct {
	Text  string    `json:"text"`
	Error *apiError `json:"error,omitempty"`
}

// Transcribe sends a recording to the speech-to-text endpoint and returns the
// raw transcript.
func (c *Client) Transcribe(ctx context.Context, audio io.Reader, fileName string) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	c.Log.Info("openAIClient.Transcribe called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingObjectNameKey, fileName),
	)

	if err := c.Limiter.Wait(ctx); err != nil {
		return "", exceptions.ErrTranscriptionUnavailable(err)
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	filePart, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		return "", exceptions.ErrTranscriptionUnavailable(err)
	}
	if _, err := io.Copy(filePart, audio); err != nil {
		return "", exceptions.ErrTranscriptionUnavailable(err)
	}
	if err := writer.WriteField("model", c.TranscriptionModel); err != nil {
		return "", exceptions.ErrTranscriptionUnavailable(err)
	}
	if err := writer.WriteField("response_format", "json"); err != nil {
		return "", exceptions.ErrTranscriptionUnavailable(err)
	}
	if err := writer.Close(); err != nil {
		return "", exceptions.ErrTranscriptionUnavailable(err)
	}

	request, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.BaseUrl+"/audio/transcriptions", &body)
	if err != nil {
		return "", exceptions.ErrCreateHTTPRequest(err)
	}
	request.Header.Set(constvars.HeaderContentType, writer.FormDataContentType())
	request.Header.Set(constvars.HeaderAuthorization, "Bearer "+c.APIKey)

	response, err := c.HTTPClient.Do(request)
	if err != nil {
		return "", exceptions.ErrTranscriptionUnavailable(err)
	}
	defer response.Body.Close()

	var transcription transcriptionResponse
	if err := json.NewDecoder(response.Body).Decode(&transcription); err != nil {
		return "", exceptions.ErrCollaboratorMalformedResponse(err)
	}
	if transcription.Error != nil {
		return "", exceptions.ErrCollaboratorAPIError(transcription.Error.Message)
	}

	return strings.TrimSpace(transcription.Text), nil
}
