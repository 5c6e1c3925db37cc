package consultations

import (
	"context"
	"strings"
	"sync"
	"time"

	"mycare-service/internal/app/contracts"
	"mycare-service/internal/app/models"
	"mycare-service/internal/pkg/constvars"
	"mycare-service/internal/pkg/dto/requests"
	"mycare-service/internal/pkg/dto/responses"
	"mycare-service/internal/pkg/exceptions"
	"mycare-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type consultationUsecase struct {
	ConsultationRepository  contracts.ConsultationRepository
	PatientRepository       contracts.PatientRepository
	MedicalRecordRepository contracts.MedicalRecordRepository
	DiagnosisClient         contracts.DiagnosisClient
	Translator              contracts.Translator
	HospitalResolver        contracts.HospitalResolver
	NotificationService     contracts.NotificationService
	Log                     *zap.Logger
}

var (
	consultationUsecaseInstance contracts.ConsultationUsecase
	onceConsultationUsecase     sync.Once
)

func NewConsultationUsecase(
	consultationRepository contracts.ConsultationRepository,
	patientRepository contracts.PatientRepository,
	medicalRecordRepository contracts.MedicalRecordRepository,
	diagnosisClient contracts.DiagnosisClient,
	translator contracts.Translator,
	hospitalResolver contracts.HospitalResolver,
	notificationService contracts.NotificationService,
	logger *zap.Logger,
) contracts.ConsultationUsecase {
	onceConsultationUsecase.Do(func() {
		instance := &consultationUsecase{
			ConsultationRepository:  consultationRepository,
			PatientRepository:       patientRepository,
			MedicalRecordRepository: medicalRecordRepository,
			DiagnosisClient:         diagnosisClient,
			Translator:              translator,
			HospitalResolver:        hospitalResolver,
			NotificationService:     notificationService,
			Log:                     logger,
		}
		consultationUsecaseInstance = instance
	})
	return consultationUsecaseInstance
}

func (uc *consultationUsecase) InitiateConsultation(ctx context.Context, request *requests.InitiateConsultationRequest) (*models.Consultation, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	language := request.Language
	if language == "" {
		language = constvars.LanguageEnglish
	}

	uc.Log.Info("consultationUsecase.InitiateConsultation called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
		zap.String(constvars.LoggingLanguageKey, language),
	)

	if err := uc.ensurePatientExists(ctx, request.PatientID, language); err != nil {
		return nil, err
	}

	// Translation failure keeps the original text rather than blocking the
	// diagnosis entirely.
	translatedSymptoms := request.Symptoms
	if language != constvars.LanguageEnglish {
		englishText, err := uc.Translator.Translate(ctx, request.Symptoms, language, constvars.LanguageEnglish)
		if err != nil {
			uc.Log.Warn("consultationUsecase.InitiateConsultation translation failed, using original symptoms",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		} else {
			translatedSymptoms = englishText
		}
	}

	priorRecords, err := uc.MedicalRecordRepository.FindByPatientID(ctx, request.PatientID)
	if err != nil {
		return nil, err
	}

	diagnosis, err := uc.DiagnosisClient.GenerateDiagnosis(ctx, &contracts.DiagnosisInput{
		PatientDescription: translatedSymptoms,
		Language:           constvars.LanguageEnglish,
		PriorRecords:       priorRecords,
	})
	if err != nil {
		uc.Log.Error("consultationUsecase.InitiateConsultation diagnosis failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if language != constvars.LanguageEnglish {
		diagnosis.TranslatedSymptoms = translatedSymptoms
	} else {
		diagnosis.TranslatedSymptoms = ""
	}

	now := time.Now()
	consultation := &models.Consultation{
		ID:          utils.GenerateConsultationID(),
		PatientID:   request.PatientID,
		DoctorID:    "",
		Date:        now.UTC().Format(time.RFC3339),
		Status:      models.ConsultationStatusScheduled,
		Type:        models.ConsultationTypeVideo,
		Symptoms:    request.Symptoms,
		Language:    language,
		AIDiagnosis: diagnosis,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := uc.ConsultationRepository.Insert(ctx, consultation); err != nil {
		return nil, err
	}

	if consultation.IsUrgent() {
		uc.notifyUrgentCase(ctx, consultation)
	}

	uc.Log.Info("consultationUsecase.InitiateConsultation succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingConsultationIDKey, consultation.ID),
		zap.Int(constvars.LoggingUrgencyLevelKey, diagnosis.UrgencyLevel),
	)

	return consultation, nil
}

func (uc *consultationUsecase) ensurePatientExists(ctx context.Context, patientID, language string) error {
	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return err
	}
	if patient != nil {
		return nil
	}

	now := time.Now()
	newPatient := &models.Patient{
		ID:                patientID,
		Name:              constvars.PlaceholderPatientName,
		DateOfBirth:       constvars.PlaceholderPatientDateOfBirth,
		Gender:            models.GenderMale,
		PreferredLanguage: language,
		ContactNumber:     constvars.PlaceholderPatientContact,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	return uc.PatientRepository.Insert(ctx, newPatient)
}

// notifyUrgentCase publishes the urgent-queue alert. A broker failure is
// logged and swallowed; the consultation is already stored at this point.
func (uc *consultationUsecase) notifyUrgentCase(ctx context.Context, consultation *models.Consultation) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	err := uc.NotificationService.Publish(ctx, &contracts.Notification{
		Priority:       contracts.NotificationPriorityUrgent,
		PatientID:      consultation.PatientID,
		ConsultationID: consultation.ID,
		Message:        constvars.UrgentCaseNotificationMessage,
	})
	if err != nil {
		uc.Log.Error("consultationUsecase.notifyUrgentCase error publishing notification",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingConsultationIDKey, consultation.ID),
			zap.Error(err),
		)
	}
}

func (uc *consultationUsecase) GetPatientConsultations(ctx context.Context, patientID string) ([]models.Consultation, error) {
	return uc.ConsultationRepository.FindByPatientID(ctx, patientID)
}

func (uc *consultationUsecase) GetDoctorConsultations(ctx context.Context, doctorID string) ([]models.Consultation, error) {
	return uc.ConsultationRepository.FindByDoctorID(ctx, doctorID)
}

// AssignDoctorToConsultation rejects reassignment once the consultation left
// the scheduled status. This is stricter than the behavior it replaces, which
// silently overwrote the doctor on in-progress and completed consultations.
func (uc *consultationUsecase) AssignDoctorToConsultation(ctx context.Context, consultationID, doctorID string) (*models.Consultation, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	uc.Log.Info("consultationUsecase.AssignDoctorToConsultation called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingConsultationIDKey, consultationID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	consultation, err := uc.ConsultationRepository.FindByID(ctx, consultationID)
	if err != nil {
		return nil, err
	}
	if consultation == nil {
		return nil, nil
	}
	if consultation.Status != models.ConsultationStatusScheduled {
		return nil, exceptions.ErrReassignNotAllowed(nil)
	}

	consultation.DoctorID = doctorID
	consultation.Status = models.ConsultationStatusInProgress
	consultation.UpdatedAt = time.Now()

	if err := uc.ConsultationRepository.Update(ctx, consultation); err != nil {
		return nil, err
	}
	return consultation, nil
}

func (uc *consultationUsecase) CompleteConsultation(ctx context.Context, request *requests.CompleteConsultationRequest) (*responses.CompleteConsultation, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	uc.Log.Info("consultationUsecase.CompleteConsultation called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingConsultationIDKey, request.ConsultationID),
	)

	consultation, err := uc.ConsultationRepository.FindByID(ctx, request.ConsultationID)
	if err != nil {
		return nil, err
	}
	if consultation == nil {
		return nil, nil
	}
	if consultation.Status != models.ConsultationStatusInProgress {
		return nil, exceptions.ErrCompleteNotAllowed(nil)
	}

	diagnosisText := constvars.DiagnosisFallbackCondition
	if consultation.AIDiagnosis != nil && len(consultation.AIDiagnosis.PossibleConditions) > 0 {
		diagnosisText = consultation.AIDiagnosis.PossibleConditions[0].Condition
	}

	treatmentText := constvars.TreatmentFallbackText
	if len(request.Prescription) > 0 {
		treatmentText = strings.Join(request.Prescription, ", ")
	}

	now := time.Now()
	record := &models.MedicalRecord{
		ID:           utils.GenerateMedicalRecordID(),
		PatientID:    consultation.PatientID,
		Date:         now.UTC().Format(time.RFC3339),
		Diagnosis:    diagnosisText,
		Treatment:    treatmentText,
		DoctorID:     consultation.DoctorID,
		DoctorName:   constvars.PlaceholderDoctorName,
		Notes:        request.DoctorNotes,
		Medications:  request.Prescription,
		FollowUpDate: request.FollowUpRecommendation,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := uc.MedicalRecordRepository.Insert(ctx, record); err != nil {
		return nil, err
	}

	consultation.Status = models.ConsultationStatusCompleted
	consultation.DoctorNotes = request.DoctorNotes
	consultation.Prescription = request.Prescription
	consultation.FollowUpRecommendation = request.FollowUpRecommendation
	consultation.RecordID = record.ID
	consultation.UpdatedAt = now

	if err := uc.ConsultationRepository.Update(ctx, consultation); err != nil {
		return nil, err
	}

	uc.Log.Info("consultationUsecase.CompleteConsultation succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingConsultationIDKey, consultation.ID),
	)

	return &responses.CompleteConsultation{
		Consultation:  consultation,
		MedicalRecord: record,
	}, nil
}

func (uc *consultationUsecase) CancelConsultation(ctx context.Context, consultationID string) (*models.Consultation, error) {
	consultation, err := uc.ConsultationRepository.FindByID(ctx, consultationID)
	if err != nil {
		return nil, err
	}
	if consultation == nil {
		return nil, nil
	}
	if consultation.Status == models.ConsultationStatusCompleted {
		return nil, exceptions.ErrCancelNotAllowed(nil)
	}

	consultation.Status = models.ConsultationStatusCancelled
	consultation.UpdatedAt = time.Now()

	if err := uc.ConsultationRepository.Update(ctx, consultation); err != nil {
		return nil, err
	}
	return consultation, nil
}

func (uc *consultationUsecase) GetHospitalRecommendations(ctx context.Context, request *requests.HospitalRecommendationRequest) ([]models.HospitalRecommendation, error) {
	return uc.HospitalResolver.RecommendHospitals(ctx, request)
}

// InitializeMockData resets the three collections to the fixed demo seed. It
// is idempotent and intended for demo bootstrap only, so it is guarded by the
// superadmin API key at the delivery layer.
func (uc *consultationUsecase) InitializeMockData(ctx context.Context) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	uc.Log.Info("consultationUsecase.InitializeMockData called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := uc.ConsultationRepository.DeleteAll(ctx); err != nil {
		return err
	}
	if err := uc.MedicalRecordRepository.DeleteAll(ctx); err != nil {
		return err
	}
	if err := uc.PatientRepository.DeleteAll(ctx); err != nil {
		return err
	}

	now := time.Now()
	for _, patient := range seedPatients() {
		patient.TimeModel = models.TimeModel{CreatedAt: now, UpdatedAt: now}
		if err := uc.PatientRepository.Insert(ctx, &patient); err != nil {
			return err
		}
	}
	for _, record := range seedMedicalRecords() {
		record.TimeModel = models.TimeModel{CreatedAt: now, UpdatedAt: now}
		if err := uc.MedicalRecordRepository.Insert(ctx, &record); err != nil {
			return err
		}
	}

	return nil
}
