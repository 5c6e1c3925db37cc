package requests

type InitiateConsultationRequest struct {
	PatientID string `json:"patientId" validate:"required"`
	Symptoms  string `json:"symptoms" validate:"required,min=3"`
	Language  string `json:"language" validate:"omitempty,language_code"`
}

type AssignDoctorRequest struct {
	ConsultationID string `json:"-"`
	DoctorID       string `json:"doctorId" validate:"required"`
}

type CompleteConsultationRequest struct {
	ConsultationID         string   `json:"-"`
	DoctorNotes            string   `json:"doctorNotes" validate:"required"`
	Prescription           []string `json:"prescription,omitempty"`
	FollowUpRecommendation string   `json:"followUpRecommendation,omitempty"`
}
