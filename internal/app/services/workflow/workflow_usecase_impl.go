package workflow

import (
	"context"
	"fmt"
	"mime/multipart"
	"sync"
	"time"

	"mycare-service/internal/app/config"
	"mycare-service/internal/app/contracts"
	"mycare-service/internal/app/models"
	"mycare-service/internal/pkg/constvars"
	"mycare-service/internal/pkg/dto/requests"
	"mycare-service/internal/pkg/dto/responses"
	"mycare-service/internal/pkg/exceptions"
	"mycare-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// workflowUsecase drives the consultation workflow state machine:
// upload -> diagnosis -> result -> doctor, with the upload step optional per
// session. State lives in redis so any instance of this service can pick up
// the session.
type workflowUsecase struct {
	SessionStore         contracts.SessionStore
	ConsultationUsecase  contracts.ConsultationUsecase
	MeetingUsecase       contracts.MeetingUsecase
	TranscriptionUsecase contracts.TranscriptionUsecase
	InternalConfig       *config.InternalConfig
	Log                  *zap.Logger
}

var (
	workflowUsecaseInstance contracts.WorkflowUsecase
	onceWorkflowUsecase     sync.Once
)

func NewWorkflowUsecase(
	sessionStore contracts.SessionStore,
	consultationUsecase contracts.ConsultationUsecase,
	meetingUsecase contracts.MeetingUsecase,
	transcriptionUsecase contracts.TranscriptionUsecase,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.WorkflowUsecase {
	onceWorkflowUsecase.Do(func() {
		instance := &workflowUsecase{
			SessionStore:         sessionStore,
			ConsultationUsecase:  consultationUsecase,
			MeetingUsecase:       meetingUsecase,
			TranscriptionUsecase: transcriptionUsecase,
			InternalConfig:       internalConfig,
			Log:                  logger,
		}
		workflowUsecaseInstance = instance
	})
	return workflowUsecaseInstance
}

func (uc *workflowUsecase) Start(ctx context.Context, request *requests.StartWorkflowRequest) (*responses.WorkflowSession, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	now := time.Now()
	session := &models.WorkflowSession{
		ID:             utils.GenerateWorkflowSessionID(),
		PatientID:      request.PatientID,
		WithUploadStep: request.WithUploadStep,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	session.State = session.InitialState()

	uc.Log.Info("workflowUsecase.Start called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
		zap.String(constvars.LoggingSessionIDKey, session.ID),
	)

	if err := uc.SessionStore.SaveSession(ctx, session.ID, session); err != nil {
		return nil, err
	}

	token, err := utils.GenerateSessionJWT(session.ID, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return nil, exceptions.ErrServerProcess(err)
	}

	return &responses.WorkflowSession{
		SessionToken:   token,
		State:          session.State,
		WithUploadStep: session.WithUploadStep,
	}, nil
}

func (uc *workflowUsecase) CompleteUpload(ctx context.Context, sessionID string, request *requests.CompleteUploadRequest) (*responses.WorkflowSession, error) {
	session, err := uc.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.State != models.WorkflowStateUpload {
		return nil, exceptions.ErrWorkflowInvalidTransition(nil)
	}

	session.UploadedFiles = request.FileReferences
	session.State = models.WorkflowStateDiagnosis
	session.UpdatedAt = time.Now()

	if err := uc.SessionStore.SaveSession(ctx, session.ID, session); err != nil {
		return nil, err
	}
	return sessionResponse(session, nil), nil
}

// SkipUpload is always available from the upload state, never disabled.
func (uc *workflowUsecase) SkipUpload(ctx context.Context, sessionID string) (*responses.WorkflowSession, error) {
	session, err := uc.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.State != models.WorkflowStateUpload {
		return nil, exceptions.ErrWorkflowInvalidTransition(nil)
	}

	session.State = models.WorkflowStateDiagnosis
	session.UpdatedAt = time.Now()

	if err := uc.SessionStore.SaveSession(ctx, session.ID, session); err != nil {
		return nil, err
	}
	return sessionResponse(session, nil), nil
}

// SubmitSymptoms runs the diagnosis. Only one submission may be in flight per
// session: the redis lock rejects a second submit instead of queueing it, and
// on any failure the session stays on the diagnosis step.
func (uc *workflowUsecase) SubmitSymptoms(ctx context.Context, sessionID string, request *requests.SubmitSymptomsRequest) (*responses.WorkflowSession, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	session, err := uc.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.State != models.WorkflowStateDiagnosis {
		return nil, exceptions.ErrWorkflowInvalidTransition(nil)
	}

	lockKey := fmt.Sprintf(constvars.RedisKeyDiagnosisLock, sessionID)
	acquired, err := uc.SessionStore.TryAcquireLock(ctx, lockKey)
	if err != nil {
		return nil, err
	}
	if !acquired {
		uc.Log.Warn("workflowUsecase.SubmitSymptoms rejected, diagnosis already in flight",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, sessionID),
		)
		return nil, exceptions.ErrWorkflowBusy(nil)
	}
	defer func() {
		if releaseErr := uc.SessionStore.ReleaseLock(context.WithoutCancel(ctx), lockKey); releaseErr != nil {
			uc.Log.Error("workflowUsecase.SubmitSymptoms error releasing lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingSessionIDKey, sessionID),
				zap.Error(releaseErr),
			)
		}
	}()

	consultation, err := uc.ConsultationUsecase.InitiateConsultation(ctx, &requests.InitiateConsultationRequest{
		PatientID: session.PatientID,
		Symptoms:  request.Symptoms,
		Language:  request.Language,
	})
	if err != nil {
		return nil, err
	}

	session.ConsultationID = consultation.ID
	session.State = models.WorkflowStateResult
	session.UpdatedAt = time.Now()

	if err := uc.SessionStore.SaveSession(ctx, session.ID, session); err != nil {
		return nil, err
	}
	return sessionResponse(session, consultation), nil
}

// TranscribeSubmit transcribes a recording and feeds the transcript through
// SubmitSymptoms, so the state check and the in-flight lock apply to voice
// input exactly as they do to typed symptoms.
func (uc *workflowUsecase) TranscribeSubmit(ctx context.Context, sessionID string, file multipart.File, fileHeader *multipart.FileHeader, language string) (*responses.WorkflowSession, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	session, err := uc.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	// Checked again under the lock inside SubmitSymptoms; this early check
	// avoids transcribing a recording the state machine would reject anyway.
	if session.State != models.WorkflowStateDiagnosis {
		return nil, exceptions.ErrWorkflowInvalidTransition(nil)
	}

	transcription, err := uc.TranscriptionUsecase.TranscribeUpload(ctx, file, fileHeader)
	if err != nil {
		uc.Log.Error("workflowUsecase.TranscribeSubmit transcription failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, sessionID),
			zap.Error(err),
		)
		return nil, err
	}

	request := &requests.SubmitSymptomsRequest{
		Symptoms: transcription.Transcript,
		Language: language,
	}
	// An empty or near-empty transcript cannot drive a diagnosis.
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	return uc.SubmitSymptoms(ctx, sessionID, request)
}

func (uc *workflowUsecase) RequestDoctor(ctx context.Context, sessionID string, request *requests.RequestDoctorRequest) (*responses.WorkflowSession, error) {
	session, err := uc.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.State != models.WorkflowStateResult {
		return nil, exceptions.ErrWorkflowInvalidTransition(nil)
	}

	meeting, err := uc.MeetingUsecase.CreateMeeting(ctx)
	if err != nil {
		return nil, err
	}

	session.MeetingJoinURL = meeting.JoinURL
	session.State = models.WorkflowStateDoctor
	session.UpdatedAt = time.Now()

	if err := uc.SessionStore.SaveSession(ctx, session.ID, session); err != nil {
		return nil, err
	}
	return sessionResponse(session, nil), nil
}

// StartNew resets the session to its initial state and drops the held
// consultation reference.
func (uc *workflowUsecase) StartNew(ctx context.Context, sessionID string) (*responses.WorkflowSession, error) {
	session, err := uc.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.State != models.WorkflowStateDoctor {
		return nil, exceptions.ErrWorkflowInvalidTransition(nil)
	}

	session.ConsultationID = ""
	session.MeetingJoinURL = ""
	session.UploadedFiles = nil
	session.State = session.InitialState()
	session.UpdatedAt = time.Now()

	if err := uc.SessionStore.SaveSession(ctx, session.ID, session); err != nil {
		return nil, err
	}
	return sessionResponse(session, nil), nil
}

func (uc *workflowUsecase) Exit(ctx context.Context, sessionID string) error {
	return uc.SessionStore.DeleteSession(ctx, sessionID)
}

func (uc *workflowUsecase) loadSession(ctx context.Context, sessionID string) (*models.WorkflowSession, error) {
	data, err := uc.SessionStore.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if data == "" {
		return nil, exceptions.ErrWorkflowSessionNotFound(nil)
	}

	var session models.WorkflowSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, exceptions.ErrServerProcess(err)
	}
	return &session, nil
}

func sessionResponse(session *models.WorkflowSession, consultation *models.Consultation) *responses.WorkflowSession {
	return &responses.WorkflowSession{
		State:          session.State,
		WithUploadStep: session.WithUploadStep,
		UploadedFiles:  session.UploadedFiles,
		Consultation:   consultation,
		MeetingJoinURL: session.MeetingJoinURL,
	}
}
