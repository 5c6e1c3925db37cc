package requests

type StartWorkflowRequest struct {
	PatientID      string `json:"patientId" validate:"required"`
	WithUploadStep bool   `json:"withUploadStep"`
}

type CompleteUploadRequest struct {
	FileReferences []string `json:"fileReferences" validate:"required,min=1"`
}

type SubmitSymptomsRequest struct {
	Symptoms string `json:"symptoms" validate:"required,min=3"`
	Language string `json:"language" validate:"omitempty,language_code"`
}

type RequestDoctorRequest struct {
	Location string `json:"location,omitempty"`
}
