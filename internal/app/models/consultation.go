package models

type ConsultationStatus string

const (
	ConsultationStatusScheduled  ConsultationStatus = "scheduled"
	ConsultationStatusInProgress ConsultationStatus = "in_progress"
	ConsultationStatusCompleted  ConsultationStatus = "completed"
	ConsultationStatusCancelled  ConsultationStatus = "cancelled"
)

type ConsultationType string

const (
	ConsultationTypeVideo ConsultationType = "video"
	ConsultationTypeChat  ConsultationType = "chat"
	ConsultationTypeVoice ConsultationType = "voice"
)

type PossibleCondition struct {
	Condition  string  `json:"condition" bson:"condition"`
	Confidence float64 `json:"confidence" bson:"confidence"`
	ICD10Code  string  `json:"icd10Code,omitempty" bson:"icd10Code,omitempty"`
}

type AIDiagnosis struct {
	TranslatedSymptoms string              `json:"translatedSymptoms,omitempty" bson:"translatedSymptoms,omitempty"`
	PossibleConditions []PossibleCondition `json:"possibleConditions" bson:"possibleConditions"`
	UrgencyLevel       int                 `json:"urgencyLevel" bson:"urgencyLevel"`
	RecommendedTests   []string            `json:"recommendedTests,omitempty" bson:"recommendedTests,omitempty"`
	Notes              string              `json:"notes" bson:"notes"`
}

// Consultation tracks a care episode from symptom submission through doctor
// assignment to completion. DoctorID stays "" until a doctor is assigned.
// RecordID is set if and only if the status is completed.
type Consultation struct {
	ID                     string             `json:"id" bson:"_id"`
	PatientID              string             `json:"patientId" bson:"patientId"`
	DoctorID               string             `json:"doctorId" bson:"doctorId"`
	Date                   string             `json:"date" bson:"date"`
	Status                 ConsultationStatus `json:"status" bson:"status"`
	Type                   ConsultationType   `json:"type" bson:"type"`
	Symptoms               string             `json:"symptoms" bson:"symptoms"`
	Language               string             `json:"language" bson:"language"`
	AIDiagnosis            *AIDiagnosis       `json:"aiDiagnosis,omitempty" bson:"aiDiagnosis,omitempty"`
	DoctorNotes            string             `json:"doctorNotes,omitempty" bson:"doctorNotes,omitempty"`
	Prescription           []string           `json:"prescription,omitempty" bson:"prescription,omitempty"`
	FollowUpRecommendation string             `json:"followUpRecommendation,omitempty" bson:"followUpRecommendation,omitempty"`
	RecordID               string             `json:"recordId,omitempty" bson:"recordId,omitempty"`
	TimeModel              `bson:",inline"`
}

func (c *Consultation) IsUrgent() bool {
	return c.AIDiagnosis != nil && c.AIDiagnosis.UrgencyLevel >= 8
}
