package contracts

import (
	"context"
	"mycare-service/internal/app/models"
	"mycare-service/internal/pkg/dto/requests"
	"mycare-service/internal/pkg/dto/responses"
)

type ConsultationUsecase interface {
	// InitiateConsultation translates the symptoms when needed, runs the AI
	// diagnosis, and appends the new consultation before returning it.
	InitiateConsultation(ctx context.Context, request *requests.InitiateConsultationRequest) (*models.Consultation, error)
	GetPatientConsultations(ctx context.Context, patientID string) ([]models.Consultation, error)
	GetDoctorConsultations(ctx context.Context, doctorID string) ([]models.Consultation, error)
	// AssignDoctorToConsultation returns (nil, nil) for an unknown id.
	AssignDoctorToConsultation(ctx context.Context, consultationID, doctorID string) (*models.Consultation, error)
	// CompleteConsultation returns (nil, nil) for an unknown id.
	CompleteConsultation(ctx context.Context, request *requests.CompleteConsultationRequest) (*responses.CompleteConsultation, error)
	CancelConsultation(ctx context.Context, consultationID string) (*models.Consultation, error)
	GetHospitalRecommendations(ctx context.Context, request *requests.HospitalRecommendationRequest) ([]models.HospitalRecommendation, error)
	// InitializeMockData resets the three collections to the fixed demo seed.
	InitializeMockData(ctx context.Context) error
}

type ConsultationRepository interface {
	FindByID(ctx context.Context, consultationID string) (*models.Consultation, error)
	FindByPatientID(ctx context.Context, patientID string) ([]models.Consultation, error)
	FindByDoctorID(ctx context.Context, doctorID string) ([]models.Consultation, error)
	Insert(ctx context.Context, consultation *models.Consultation) error
	Update(ctx context.Context, consultation *models.Consultation) error
	Count(ctx context.Context) (int64, error)
	DeleteAll(ctx context.Context) error
}
