package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"mycare-service/internal/app/contracts"
	"mycare-service/internal/app/models"
	"mycare-service/internal/pkg/constvars"
	"mycare-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type diagnosisPayload struct {
	PossibleConditions []models.PossibleCondition `json:"possibleConditions"`
	UrgencyLevel       int                        `json:"urgencyLevel"`
	RecommendedTests   []string                   `json:"recommendedTests"`
	Notes              string                     `json:"notes"`
}

// GenerateDiagnosis runs the preliminary symptom analysis. Non-English
// descriptions are translated to English first so the analysis prompt always
// operates on English text; the translation is carried back on the result.
func (c *Client) GenerateDiagnosis(ctx context.Context, input *contracts.DiagnosisInput) (*models.AIDiagnosis, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	c.Log.Info("openAIClient.GenerateDiagnosis called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingLanguageKey, input.Language),
	)

	description := input.PatientDescription
	translated := false
	if input.Language != "" && input.Language != constvars.LanguageEnglish {
		englishText, err := c.Translate(ctx, description, input.Language, constvars.LanguageEnglish)
		if err != nil {
			return nil, err
		}
		description = englishText
		translated = true
	}

	messages := []chatMessage{
		{Role: "system", Content: diagnosisSystemPrompt},
		{Role: "user", Content: fmt.Sprintf("Patient description: %s\n\n%s", description, formatMedicalHistory(input.PriorRecords))},
	}

	content, err := c.chatCompletion(ctx, messages, 0.1, 1500, true)
	if err != nil {
		c.Log.Error("openAIClient.GenerateDiagnosis error from completion",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	var payload diagnosisPayload
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return nil, exceptions.ErrCollaboratorMalformedResponse(err)
	}
	if payload.UrgencyLevel < constvars.UrgencyLevelMin || payload.UrgencyLevel > constvars.UrgencyLevelMax {
		return nil, exceptions.ErrCollaboratorMalformedResponse(fmt.Errorf("urgency level %d out of range", payload.UrgencyLevel))
	}

	diagnosis := &models.AIDiagnosis{
		PossibleConditions: payload.PossibleConditions,
		UrgencyLevel:       payload.UrgencyLevel,
		RecommendedTests:   payload.RecommendedTests,
		Notes:              payload.Notes,
	}
	if diagnosis.PossibleConditions == nil {
		diagnosis.PossibleConditions = []models.PossibleCondition{}
	}
	if translated {
		diagnosis.TranslatedSymptoms = description
	}

	c.Log.Info("openAIClient.GenerateDiagnosis succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingUrgencyLevelKey, diagnosis.UrgencyLevel),
	)

	return diagnosis, nil
}

func formatMedicalHistory(records []models.MedicalRecord) string {
	if len(records) == 0 {
		return "No previous medical records available."
	}

	entries := make([]string, 0, len(records))
	for _, record := range records {
		notes := record.Notes
		if notes == "" {
			notes = "None"
		}
		entries = append(entries, fmt.Sprintf("- Date: %s\n  Diagnosis: %s\n  Treatment: %s\n  Notes: %s",
			record.Date, record.Diagnosis, record.Treatment, notes))
	}
	return "Medical history:\n" + strings.Join(entries, "\n\n")
}
