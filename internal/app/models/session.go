package models

import "time"

type WorkflowState string

const (
	WorkflowStateUpload    WorkflowState = "upload"
	WorkflowStateDiagnosis WorkflowState = "diagnosis"
	WorkflowStateResult    WorkflowState = "result"
	WorkflowStateDoctor    WorkflowState = "doctor"
)

// WorkflowSession holds the server-side state of one consultation workflow.
// It lives in redis under a TTL; the client addresses it through a signed
// session token.
type WorkflowSession struct {
	ID             string        `json:"id"`
	PatientID      string        `json:"patientId"`
	State          WorkflowState `json:"state"`
	WithUploadStep bool          `json:"withUploadStep"`
	UploadedFiles  []string      `json:"uploadedFiles,omitempty"`
	ConsultationID string        `json:"consultationId,omitempty"`
	MeetingJoinURL string        `json:"meetingJoinUrl,omitempty"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
}

// InitialState returns the first step for this session's workflow variant.
func (s *WorkflowSession) InitialState() WorkflowState {
	if s.WithUploadStep {
		return WorkflowStateUpload
	}
	return WorkflowStateDiagnosis
}
