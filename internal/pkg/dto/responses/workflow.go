package responses

import "mycare-service/internal/app/models"

type WorkflowSession struct {
	SessionToken   string                `json:"sessionToken,omitempty"`
	State          models.WorkflowState  `json:"state"`
	WithUploadStep bool                  `json:"withUploadStep"`
	UploadedFiles  []string              `json:"uploadedFiles,omitempty"`
	Consultation   *models.Consultation  `json:"consultation,omitempty"`
	MeetingJoinURL string                `json:"meetingJoinUrl,omitempty"`
}
