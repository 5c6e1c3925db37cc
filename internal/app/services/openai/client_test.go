package openai

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"mycare-service/internal/app/contracts"
	"mycare-service/internal/app/models"
	"mycare-service/internal/pkg/dto/requests"
	"mycare-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func newTestClient(serverURL string) *Client {
	return &Client{
		BaseUrl:            serverURL,
		APIKey:             "test-key",
		Model:              "gpt-4o-mini",
		TranscriptionModel: "whisper-1",
		HTTPClient:         &http.Client{Timeout: 5 * time.Second},
		Limiter:            rate.NewLimiter(rate.Inf, 1),
		Log:                zap.NewNop(),
	}
}

func chatServer(t *testing.T, handler func(w http.ResponseWriter, body []byte)) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		handler(w, body)
	}))
	t.Cleanup(server.Close)
	return server
}

func completionWith(content string) string {
	payload := map[string]interface{}{
		"choices": []map[string]interface{}{
			{"message": map[string]string{"role": "assistant", "content": content}},
		},
	}
	data, _ := json.Marshal(payload)
	return string(data)
}

func TestGenerateDiagnosis(t *testing.T) {
	ctx := context.Background()

	t.Run("parses a well-formed completion", func(t *testing.T) {
		server := chatServer(t, func(w http.ResponseWriter, body []byte) {
			var request chatCompletionRequest
			require.NoError(t, json.Unmarshal(body, &request))
			assert.Equal(t, "gpt-4o-mini", request.Model)
			require.NotNil(t, request.ResponseFormat)
			assert.Equal(t, "json_object", request.ResponseFormat.Type)
			assert.Contains(t, request.Messages[1].Content, "No previous medical records available.")

			io.WriteString(w, completionWith(`{
				"possibleConditions": [{"condition": "Gastritis", "confidence": 0.72, "icd10Code": "K29.7"}],
				"urgencyLevel": 4,
				"recommendedTests": ["H. pylori test"],
				"notes": "Avoid spicy food"
			}`))
		})

		client := newTestClient(server.URL)
		diagnosis, err := client.GenerateDiagnosis(ctx, &contracts.DiagnosisInput{
			PatientDescription: "stomach pain after meals",
			Language:           "en",
		})
		require.NoError(t, err)

		require.Len(t, diagnosis.PossibleConditions, 1)
		assert.Equal(t, "Gastritis", diagnosis.PossibleConditions[0].Condition)
		assert.Equal(t, 4, diagnosis.UrgencyLevel)
		assert.Equal(t, []string{"H. pylori test"}, diagnosis.RecommendedTests)
		assert.Empty(t, diagnosis.TranslatedSymptoms)
	})

	t.Run("prior records are included in the prompt", func(t *testing.T) {
		var prompt string
		server := chatServer(t, func(w http.ResponseWriter, body []byte) {
			var request chatCompletionRequest
			require.NoError(t, json.Unmarshal(body, &request))
			prompt = request.Messages[1].Content
			io.WriteString(w, completionWith(`{"possibleConditions": [], "urgencyLevel": 3, "notes": ""}`))
		})

		client := newTestClient(server.URL)
		_, err := client.GenerateDiagnosis(ctx, &contracts.DiagnosisInput{
			PatientDescription: "recurring stomach pain",
			Language:           "en",
			PriorRecords: []models.MedicalRecord{
				{
					ID:        "mr1",
					PatientID: "p1",
					Date:      "2024-03-15",
					Diagnosis: "Gastritis",
					Treatment: "Antacid therapy",
				},
			},
		})
		require.NoError(t, err)

		assert.Contains(t, prompt, "Medical history:")
		assert.Contains(t, prompt, "Gastritis")
	})

	t.Run("missing conditions decode to an empty slice", func(t *testing.T) {
		server := chatServer(t, func(w http.ResponseWriter, body []byte) {
			io.WriteString(w, completionWith(`{"urgencyLevel": 2, "notes": "n/a"}`))
		})

		client := newTestClient(server.URL)
		diagnosis, err := client.GenerateDiagnosis(ctx, &contracts.DiagnosisInput{
			PatientDescription: "mild headache",
			Language:           "en",
		})
		require.NoError(t, err)
		require.NotNil(t, diagnosis.PossibleConditions)
		assert.Empty(t, diagnosis.PossibleConditions)
	})

	t.Run("API error surfaces as collaborator error", func(t *testing.T) {
		server := chatServer(t, func(w http.ResponseWriter, body []byte) {
			w.WriteHeader(http.StatusUnauthorized)
			io.WriteString(w, `{"error": {"message": "Invalid API key", "type": "invalid_request_error"}}`)
		})

		client := newTestClient(server.URL)
		_, err := client.GenerateDiagnosis(ctx, &contracts.DiagnosisInput{
			PatientDescription: "stomach pain",
			Language:           "en",
		})
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Contains(t, customErr.DevMessage, "Invalid API key")
	})

	t.Run("malformed inner JSON is a distinct error", func(t *testing.T) {
		server := chatServer(t, func(w http.ResponseWriter, body []byte) {
			io.WriteString(w, completionWith("I am not JSON at all"))
		})

		client := newTestClient(server.URL)
		_, err := client.GenerateDiagnosis(ctx, &contracts.DiagnosisInput{
			PatientDescription: "stomach pain",
			Language:           "en",
		})
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Contains(t, customErr.DevMessage, "violates the contract")
	})

	t.Run("out-of-range urgency is rejected", func(t *testing.T) {
		server := chatServer(t, func(w http.ResponseWriter, body []byte) {
			io.WriteString(w, completionWith(`{"possibleConditions": [], "urgencyLevel": 14, "notes": ""}`))
		})

		client := newTestClient(server.URL)
		_, err := client.GenerateDiagnosis(ctx, &contracts.DiagnosisInput{
			PatientDescription: "stomach pain",
			Language:           "en",
		})
		require.Error(t, err)
	})

	t.Run("unreachable server maps to unavailable", func(t *testing.T) {
		client := newTestClient("http://127.0.0.1:1")

		_, err := client.GenerateDiagnosis(ctx, &contracts.DiagnosisInput{
			PatientDescription: "stomach pain",
			Language:           "en",
		})
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, exceptions.ErrDiagnosisUnavailable(nil).StatusCode, customErr.StatusCode)
	})
}

func TestTranslate(t *testing.T) {
	ctx := context.Background()

	t.Run("translates between named languages", func(t *testing.T) {
		server := chatServer(t, func(w http.ResponseWriter, body []byte) {
			var request chatCompletionRequest
			require.NoError(t, json.Unmarshal(body, &request))
			assert.Contains(t, request.Messages[0].Content, "Malay")
			assert.Contains(t, request.Messages[0].Content, "English")
			io.WriteString(w, completionWith("stomach pain since yesterday"))
		})

		client := newTestClient(server.URL)
		translated, err := client.Translate(ctx, "sakit perut sejak semalam", "ms", "en")
		require.NoError(t, err)
		assert.Equal(t, "stomach pain since yesterday", translated)
	})

	t.Run("empty source language becomes auto-detect", func(t *testing.T) {
		server := chatServer(t, func(w http.ResponseWriter, body []byte) {
			var request chatCompletionRequest
			require.NoError(t, json.Unmarshal(body, &request))
			assert.Contains(t, strings.ToLower(request.Messages[0].Content), "auto")
			io.WriteString(w, completionWith("hello"))
		})

		client := newTestClient(server.URL)
		_, err := client.Translate(ctx, "hola", "", "en")
		require.NoError(t, err)
	})
}

func TestAsk(t *testing.T) {
	ctx := context.Background()

	t.Run("assistant answer is returned verbatim", func(t *testing.T) {
		server := chatServer(t, func(w http.ResponseWriter, body []byte) {
			var request chatCompletionRequest
			require.NoError(t, json.Unmarshal(body, &request))
			assert.Nil(t, request.ResponseFormat)
			io.WriteString(w, completionWith("Drink plenty of fluids and rest."))
		})

		client := newTestClient(server.URL)
		answer, err := client.Ask(ctx, "What should I do about a cold?", "en")
		require.NoError(t, err)
		assert.Equal(t, "Drink plenty of fluids and rest.", answer)
	})

	t.Run("non-english answers carry a language instruction", func(t *testing.T) {
		server := chatServer(t, func(w http.ResponseWriter, body []byte) {
			var request chatCompletionRequest
			require.NoError(t, json.Unmarshal(body, &request))
			assert.Contains(t, request.Messages[0].Content, "Malay")
			io.WriteString(w, completionWith("Minum air dengan banyak."))
		})

		client := newTestClient(server.URL)
		_, err := client.Ask(ctx, "Apa yang perlu saya lakukan?", "ms")
		require.NoError(t, err)
	})
}

func TestRecommendHospitalsLLM(t *testing.T) {
	ctx := context.Background()

	t.Run("caps the hospital list at three", func(t *testing.T) {
		server := chatServer(t, func(w http.ResponseWriter, body []byte) {
			io.WriteString(w, completionWith(`{"hospitals": [
				{"hospitalName": "A", "suitabilityReason": "closest"},
				{"hospitalName": "B", "suitabilityReason": "cardiac unit"},
				{"hospitalName": "C", "suitabilityReason": "low wait"},
				{"hospitalName": "D", "suitabilityReason": "spare"}
			]}`))
		})

		client := newTestClient(server.URL)
		recommendations, err := client.RecommendHospitals(ctx, &requests.HospitalRecommendationRequest{
			Condition:    "chest pain",
			Location:     "Kuala Lumpur",
			UrgencyLevel: 8,
		})
		require.NoError(t, err)
		require.Len(t, recommendations, 3)
		assert.Equal(t, "A", recommendations[0].HospitalName)
	})
}
