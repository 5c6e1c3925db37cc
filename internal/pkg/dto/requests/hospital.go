package requests

type HospitalRecommendationRequest struct {
	Condition    string   `json:"condition" validate:"required"`
	Location     string   `json:"location" validate:"required"`
	UrgencyLevel int      `json:"urgencyLevel" validate:"urgency_level"`
	PatientNeeds []string `json:"patientNeeds,omitempty"`
}
