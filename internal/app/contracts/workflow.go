package contracts

import (
	"context"
	"mime/multipart"
	"mycare-service/internal/pkg/dto/requests"
	"mycare-service/internal/pkg/dto/responses"
)

type WorkflowUsecase interface {
	Start(ctx context.Context, request *requests.StartWorkflowRequest) (*responses.WorkflowSession, error)
	CompleteUpload(ctx context.Context, sessionID string, request *requests.CompleteUploadRequest) (*responses.WorkflowSession, error)
	SkipUpload(ctx context.Context, sessionID string) (*responses.WorkflowSession, error)
	// SubmitSymptoms holds the single in-flight guarantee: a second submit
	// while one is pending is rejected, never queued.
	SubmitSymptoms(ctx context.Context, sessionID string, request *requests.SubmitSymptomsRequest) (*responses.WorkflowSession, error)
	// TranscribeSubmit is the voice-input shortcut: the recording is
	// transcribed and the transcript goes through the same guarded submit
	// path as SubmitSymptoms.
	TranscribeSubmit(ctx context.Context, sessionID string, file multipart.File, fileHeader *multipart.FileHeader, language string) (*responses.WorkflowSession, error)
	RequestDoctor(ctx context.Context, sessionID string, request *requests.RequestDoctorRequest) (*responses.WorkflowSession, error)
	StartNew(ctx context.Context, sessionID string) (*responses.WorkflowSession, error)
	Exit(ctx context.Context, sessionID string) error
}

type SessionStore interface {
	SaveSession(ctx context.Context, sessionID string, payload interface{}) error
	// GetSession returns ("", nil) when the session does not exist.
	GetSession(ctx context.Context, sessionID string) (string, error)
	DeleteSession(ctx context.Context, sessionID string) error
	// TryAcquireLock returns false without error when the lock is held.
	TryAcquireLock(ctx context.Context, key string) (bool, error)
	ReleaseLock(ctx context.Context, key string) error
}
