package contracts

import "context"

type NotificationPriority string

const (
	NotificationPriorityUrgent NotificationPriority = "urgent"
	NotificationPriorityNormal NotificationPriority = "normal"
)

type Notification struct {
	Priority       NotificationPriority `json:"priority"`
	PatientID      string               `json:"patient_id"`
	ConsultationID string               `json:"consultation_id"`
	Message        string               `json:"message"`
}

// NotificationService publishes user-visible notifications. The urgent-case
// side effect of InitiateConsultation goes through here exactly once.
type NotificationService interface {
	Publish(ctx context.Context, notification *Notification) error
}
