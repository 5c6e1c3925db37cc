package constvars

const (
	ConsultationInitiatedSuccessMessage  = "Consultation initiated successfully"
	ConsultationListSuccessMessage       = "Consultations fetched successfully"
	ConsultationAssignedSuccessMessage   = "Doctor assigned to consultation successfully"
	ConsultationCompletedSuccessMessage  = "Consultation completed successfully"
	ConsultationCancelledSuccessMessage  = "Consultation cancelled successfully"
	HospitalRecommendationSuccessMessage = "Hospital recommendations fetched successfully"
	MockDataInitializedSuccessMessage    = "Demo data initialized"
	WorkflowStartedSuccessMessage        = "Consultation workflow started"
	WorkflowUpdatedSuccessMessage        = "Workflow step updated"
	WorkflowExitedSuccessMessage         = "Workflow session closed"
	AudioTranscribedSuccessMessage       = "Audio transcribed successfully"
	RecordsUploadedSuccessMessage        = "Records uploaded successfully"
	MeetingCreatedSuccessMessage         = "Meeting created successfully"
	AssistantAnswerSuccessMessage        = "Answer generated successfully"
)
