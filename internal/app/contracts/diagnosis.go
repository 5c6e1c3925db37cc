package contracts

import (
	"context"
	"mycare-service/internal/app/models"
)

// DiagnosisInput carries everything the collaborator needs to produce a
// preliminary analysis. PriorRecords is the patient's history, may be empty.
type DiagnosisInput struct {
	PatientDescription string
	Language           string
	PriorRecords       []models.MedicalRecord
}

// DiagnosisClient is the contract the consultation service relies on: the
// urgency level is always within 1-10, PossibleConditions is never nil, and
// failure is signaled through the error, never a half-filled result.
type DiagnosisClient interface {
	GenerateDiagnosis(ctx context.Context, input *DiagnosisInput) (*models.AIDiagnosis, error)
}

type Translator interface {
	Translate(ctx context.Context, text, sourceLanguage, targetLanguage string) (string, error)
}
