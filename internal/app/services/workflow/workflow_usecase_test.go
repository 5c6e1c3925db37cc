package workflow

import (
	"context"
	"errors"
	"mime/multipart"
	"net/textproto"
	"strings"
	"sync"
	"testing"
	"time"

	"mycare-service/internal/app/config"
	"mycare-service/internal/app/contracts"
	"mycare-service/internal/app/models"
	"mycare-service/internal/pkg/dto/requests"
	"mycare-service/internal/pkg/dto/responses"
	"mycare-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// memorySessionStore mirrors the redis-backed store for tests: sessions as
// JSON strings, locks as set-if-absent keys.
type memorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]string
	locks    map[string]bool
}

func newMemorySessionStore() *memorySessionStore {
	return &memorySessionStore{
		sessions: make(map[string]string),
		locks:    make(map[string]bool),
	}
}

func (s *memorySessionStore) SaveSession(ctx context.Context, sessionID string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = string(data)
	return nil
}

func (s *memorySessionStore) GetSession(ctx context.Context, sessionID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions[sessionID], nil
}

func (s *memorySessionStore) DeleteSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}

func (s *memorySessionStore) TryAcquireLock(ctx context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.locks[key] {
		return false, nil
	}
	s.locks[key] = true
	return true, nil
}

func (s *memorySessionStore) ReleaseLock(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.locks, key)
	return nil
}

type fakeConsultationUsecase struct {
	contracts.ConsultationUsecase

	mu           sync.Mutex
	initErr      error
	barrier      chan struct{}
	initiate     int
	lastSymptoms string
}

func (f *fakeConsultationUsecase) InitiateConsultation(ctx context.Context, request *requests.InitiateConsultationRequest) (*models.Consultation, error) {
	if f.barrier != nil {
		<-f.barrier
	}
	f.mu.Lock()
	f.initiate++
	f.lastSymptoms = request.Symptoms
	f.mu.Unlock()
	if f.initErr != nil {
		return nil, f.initErr
	}
	return &models.Consultation{
		ID:        "cons-test",
		PatientID: request.PatientID,
		Status:    models.ConsultationStatusScheduled,
	}, nil
}

func (f *fakeConsultationUsecase) initiateCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.initiate
}

func (f *fakeConsultationUsecase) submittedSymptoms() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastSymptoms
}

type fakeTranscriptionUsecase struct {
	contracts.TranscriptionUsecase

	mu         sync.Mutex
	transcript string
	err        error
	calls      int
}

func (f *fakeTranscriptionUsecase) TranscribeUpload(ctx context.Context, file multipart.File, fileHeader *multipart.FileHeader) (*responses.Transcription, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return &responses.Transcription{
		Transcript: f.transcript,
		English:    f.transcript,
		Malay:      f.transcript,
	}, nil
}

func (f *fakeTranscriptionUsecase) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// audioFile pairs a seekable in-memory reader with the Close method
// multipart.File requires.
type audioFile struct {
	*strings.Reader
}

func (audioFile) Close() error { return nil }

func newAudioUpload(content string) (multipart.File, *multipart.FileHeader) {
	header := &multipart.FileHeader{
		Filename: "symptoms.webm",
		Size:     int64(len(content)),
		Header:   textproto.MIMEHeader{"Content-Type": []string{"audio/webm"}},
	}
	return audioFile{strings.NewReader(content)}, header
}

type fakeMeetingUsecase struct {
	err error
}

func (f *fakeMeetingUsecase) CreateMeeting(ctx context.Context) (*responses.Meeting, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &responses.Meeting{
		JoinURL:  "https://zoom.us/j/abcd1234",
		StartURL: "https://zoom.us/s/abcd1234",
	}, nil
}

type workflowFixture struct {
	usecase       *workflowUsecase
	store         *memorySessionStore
	consultation  *fakeConsultationUsecase
	meeting       *fakeMeetingUsecase
	transcription *fakeTranscriptionUsecase
}

func newWorkflowFixture() *workflowFixture {
	store := newMemorySessionStore()
	consultation := &fakeConsultationUsecase{}
	meeting := &fakeMeetingUsecase{}
	transcription := &fakeTranscriptionUsecase{transcript: "sharp pain in my lower back since yesterday"}

	usecase := &workflowUsecase{
		SessionStore:         store,
		ConsultationUsecase:  consultation,
		MeetingUsecase:       meeting,
		TranscriptionUsecase: transcription,
		InternalConfig: &config.InternalConfig{
			JWT: config.JWT{Secret: "workflow-test-secret", ExpTimeInHour: 1},
		},
		Log: zap.NewNop(),
	}

	return &workflowFixture{
		usecase:       usecase,
		store:         store,
		consultation:  consultation,
		meeting:       meeting,
		transcription: transcription,
	}
}

func (f *workflowFixture) start(t *testing.T, withUpload bool) string {
	t.Helper()
	response, err := f.usecase.Start(context.Background(), &requests.StartWorkflowRequest{
		PatientID:      "p1",
		WithUploadStep: withUpload,
	})
	require.NoError(t, err)
	require.NotEmpty(t, response.SessionToken)

	sessionID, err := utils.ParseSessionJWT(response.SessionToken, "workflow-test-secret")
	require.NoError(t, err)
	return sessionID
}

func (f *workflowFixture) sessionState(t *testing.T, sessionID string) models.WorkflowState {
	t.Helper()
	data, err := f.store.GetSession(context.Background(), sessionID)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	var session models.WorkflowSession
	require.NoError(t, json.Unmarshal([]byte(data), &session))
	return session.State
}

func TestWorkflowStart(t *testing.T) {
	t.Run("with upload step starts at upload", func(t *testing.T) {
		fixture := newWorkflowFixture()
		sessionID := fixture.start(t, true)
		assert.Equal(t, models.WorkflowStateUpload, fixture.sessionState(t, sessionID))
	})

	t.Run("without upload step starts at diagnosis", func(t *testing.T) {
		fixture := newWorkflowFixture()
		sessionID := fixture.start(t, false)
		assert.Equal(t, models.WorkflowStateDiagnosis, fixture.sessionState(t, sessionID))
	})
}

func TestWorkflowUploadTransitions(t *testing.T) {
	ctx := context.Background()

	t.Run("complete upload moves to diagnosis", func(t *testing.T) {
		fixture := newWorkflowFixture()
		sessionID := fixture.start(t, true)

		response, err := fixture.usecase.CompleteUpload(ctx, sessionID, &requests.CompleteUploadRequest{
			FileReferences: []string{"record/p1/report.pdf"},
		})
		require.NoError(t, err)
		assert.Equal(t, models.WorkflowStateDiagnosis, response.State)
		assert.Equal(t, []string{"record/p1/report.pdf"}, response.UploadedFiles)
	})

	t.Run("skip upload moves to diagnosis without files", func(t *testing.T) {
		fixture := newWorkflowFixture()
		sessionID := fixture.start(t, true)

		response, err := fixture.usecase.SkipUpload(ctx, sessionID)
		require.NoError(t, err)
		assert.Equal(t, models.WorkflowStateDiagnosis, response.State)
		assert.Empty(t, response.UploadedFiles)
	})

	t.Run("upload from diagnosis state is rejected", func(t *testing.T) {
		fixture := newWorkflowFixture()
		sessionID := fixture.start(t, false)

		_, err := fixture.usecase.CompleteUpload(ctx, sessionID, &requests.CompleteUploadRequest{
			FileReferences: []string{"record/p1/report.pdf"},
		})
		require.Error(t, err)
		assert.Equal(t, models.WorkflowStateDiagnosis, fixture.sessionState(t, sessionID))
	})

	t.Run("unknown session is rejected", func(t *testing.T) {
		fixture := newWorkflowFixture()

		_, err := fixture.usecase.SkipUpload(ctx, "missing-session")
		require.Error(t, err)
	})
}

func TestWorkflowSubmitSymptoms(t *testing.T) {
	ctx := context.Background()

	t.Run("submit runs diagnosis and moves to result", func(t *testing.T) {
		fixture := newWorkflowFixture()
		sessionID := fixture.start(t, false)

		response, err := fixture.usecase.SubmitSymptoms(ctx, sessionID, &requests.SubmitSymptomsRequest{
			Symptoms: "stomach ache",
		})
		require.NoError(t, err)
		assert.Equal(t, models.WorkflowStateResult, response.State)
		require.NotNil(t, response.Consultation)
		assert.Equal(t, "cons-test", response.Consultation.ID)
		assert.Equal(t, 1, fixture.consultation.initiateCount())
	})

	t.Run("second submit while one is in flight is rejected", func(t *testing.T) {
		fixture := newWorkflowFixture()
		sessionID := fixture.start(t, false)

		barrier := make(chan struct{})
		fixture.consultation.barrier = barrier

		firstDone := make(chan error, 1)
		go func() {
			_, err := fixture.usecase.SubmitSymptoms(ctx, sessionID, &requests.SubmitSymptomsRequest{
				Symptoms: "stomach ache",
			})
			firstDone <- err
		}()

		// Wait until the first submit holds the lock.
		require.Eventually(t, func() bool {
			fixture.store.mu.Lock()
			defer fixture.store.mu.Unlock()
			return len(fixture.store.locks) == 1
		}, time.Second, 5*time.Millisecond)

		_, err := fixture.usecase.SubmitSymptoms(ctx, sessionID, &requests.SubmitSymptomsRequest{
			Symptoms: "stomach ache again",
		})
		require.Error(t, err)

		close(barrier)
		require.NoError(t, <-firstDone)

		assert.Equal(t, 1, fixture.consultation.initiateCount())
		assert.Equal(t, models.WorkflowStateResult, fixture.sessionState(t, sessionID))
	})

	t.Run("diagnosis failure leaves the session on the diagnosis step", func(t *testing.T) {
		fixture := newWorkflowFixture()
		sessionID := fixture.start(t, false)
		fixture.consultation.initErr = errors.New("collaborator unavailable")

		_, err := fixture.usecase.SubmitSymptoms(ctx, sessionID, &requests.SubmitSymptomsRequest{
			Symptoms: "stomach ache",
		})
		require.Error(t, err)
		assert.Equal(t, models.WorkflowStateDiagnosis, fixture.sessionState(t, sessionID))

		// The lock is released, a retry is possible.
		fixture.consultation.initErr = nil
		_, err = fixture.usecase.SubmitSymptoms(ctx, sessionID, &requests.SubmitSymptomsRequest{
			Symptoms: "stomach ache",
		})
		require.NoError(t, err)
	})

	t.Run("submit from result state is rejected", func(t *testing.T) {
		fixture := newWorkflowFixture()
		sessionID := fixture.start(t, false)

		_, err := fixture.usecase.SubmitSymptoms(ctx, sessionID, &requests.SubmitSymptomsRequest{
			Symptoms: "stomach ache",
		})
		require.NoError(t, err)

		_, err = fixture.usecase.SubmitSymptoms(ctx, sessionID, &requests.SubmitSymptomsRequest{
			Symptoms: "stomach ache again",
		})
		require.Error(t, err)
		assert.Equal(t, 1, fixture.consultation.initiateCount())
	})
}

func TestWorkflowTranscribeSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run("transcribed audio drives the diagnosis", func(t *testing.T) {
		fixture := newWorkflowFixture()
		sessionID := fixture.start(t, false)

		file, fileHeader := newAudioUpload("webm bytes")
		response, err := fixture.usecase.TranscribeSubmit(ctx, sessionID, file, fileHeader, "en")
		require.NoError(t, err)
		assert.Equal(t, models.WorkflowStateResult, response.State)
		require.NotNil(t, response.Consultation)
		assert.Equal(t, 1, fixture.transcription.callCount())
		assert.Equal(t, "sharp pain in my lower back since yesterday", fixture.consultation.submittedSymptoms())
	})

	t.Run("typed submit while a voice submit is in flight is rejected", func(t *testing.T) {
		fixture := newWorkflowFixture()
		sessionID := fixture.start(t, false)

		barrier := make(chan struct{})
		fixture.consultation.barrier = barrier

		firstDone := make(chan error, 1)
		go func() {
			file, fileHeader := newAudioUpload("webm bytes")
			_, err := fixture.usecase.TranscribeSubmit(ctx, sessionID, file, fileHeader, "")
			firstDone <- err
		}()

		// Wait until the voice submit holds the lock.
		require.Eventually(t, func() bool {
			fixture.store.mu.Lock()
			defer fixture.store.mu.Unlock()
			return len(fixture.store.locks) == 1
		}, time.Second, 5*time.Millisecond)

		_, err := fixture.usecase.SubmitSymptoms(ctx, sessionID, &requests.SubmitSymptomsRequest{
			Symptoms: "stomach ache",
		})
		require.Error(t, err)

		file, fileHeader := newAudioUpload("more webm bytes")
		_, err = fixture.usecase.TranscribeSubmit(ctx, sessionID, file, fileHeader, "")
		require.Error(t, err)

		close(barrier)
		require.NoError(t, <-firstDone)

		assert.Equal(t, 1, fixture.consultation.initiateCount())
		assert.Equal(t, models.WorkflowStateResult, fixture.sessionState(t, sessionID))
	})

	t.Run("transcription failure leaves the diagnosis step", func(t *testing.T) {
		fixture := newWorkflowFixture()
		sessionID := fixture.start(t, false)
		fixture.transcription.err = errors.New("transcription backend down")

		file, fileHeader := newAudioUpload("webm bytes")
		_, err := fixture.usecase.TranscribeSubmit(ctx, sessionID, file, fileHeader, "")
		require.Error(t, err)
		assert.Equal(t, models.WorkflowStateDiagnosis, fixture.sessionState(t, sessionID))
		assert.Equal(t, 0, fixture.consultation.initiateCount())
	})

	t.Run("empty transcript is rejected before diagnosis", func(t *testing.T) {
		fixture := newWorkflowFixture()
		sessionID := fixture.start(t, false)
		fixture.transcription.transcript = ""

		file, fileHeader := newAudioUpload("webm bytes")
		_, err := fixture.usecase.TranscribeSubmit(ctx, sessionID, file, fileHeader, "")
		require.Error(t, err)
		assert.Equal(t, 0, fixture.consultation.initiateCount())
		assert.Equal(t, models.WorkflowStateDiagnosis, fixture.sessionState(t, sessionID))
	})

	t.Run("voice submit outside the diagnosis state skips transcription", func(t *testing.T) {
		fixture := newWorkflowFixture()
		sessionID := fixture.start(t, true)

		file, fileHeader := newAudioUpload("webm bytes")
		_, err := fixture.usecase.TranscribeSubmit(ctx, sessionID, file, fileHeader, "")
		require.Error(t, err)
		assert.Equal(t, 0, fixture.transcription.callCount())
	})
}

func TestWorkflowDoctorAndReset(t *testing.T) {
	ctx := context.Background()

	toResult := func(t *testing.T, fixture *workflowFixture) string {
		t.Helper()
		sessionID := fixture.start(t, false)
		_, err := fixture.usecase.SubmitSymptoms(ctx, sessionID, &requests.SubmitSymptomsRequest{
			Symptoms: "stomach ache",
		})
		require.NoError(t, err)
		return sessionID
	}

	t.Run("request doctor produces a meeting link", func(t *testing.T) {
		fixture := newWorkflowFixture()
		sessionID := toResult(t, fixture)

		response, err := fixture.usecase.RequestDoctor(ctx, sessionID, &requests.RequestDoctorRequest{})
		require.NoError(t, err)
		assert.Equal(t, models.WorkflowStateDoctor, response.State)
		assert.Equal(t, "https://zoom.us/j/abcd1234", response.MeetingJoinURL)
	})

	t.Run("meeting failure keeps the result state", func(t *testing.T) {
		fixture := newWorkflowFixture()
		sessionID := toResult(t, fixture)
		fixture.meeting.err = errors.New("meeting backend down")

		_, err := fixture.usecase.RequestDoctor(ctx, sessionID, &requests.RequestDoctorRequest{})
		require.Error(t, err)
		assert.Equal(t, models.WorkflowStateResult, fixture.sessionState(t, sessionID))
	})

	t.Run("start new resets to the initial state", func(t *testing.T) {
		fixture := newWorkflowFixture()
		sessionID := toResult(t, fixture)
		_, err := fixture.usecase.RequestDoctor(ctx, sessionID, &requests.RequestDoctorRequest{})
		require.NoError(t, err)

		response, err := fixture.usecase.StartNew(ctx, sessionID)
		require.NoError(t, err)
		assert.Equal(t, models.WorkflowStateDiagnosis, response.State)
		assert.Nil(t, response.Consultation)
		assert.Empty(t, response.MeetingJoinURL)
	})

	t.Run("exit deletes the session", func(t *testing.T) {
		fixture := newWorkflowFixture()
		sessionID := toResult(t, fixture)

		require.NoError(t, fixture.usecase.Exit(ctx, sessionID))

		_, err := fixture.usecase.RequestDoctor(ctx, sessionID, &requests.RequestDoctorRequest{})
		require.Error(t, err)
	})
}
