package consultations

import (
	"context"
	"sync"

	"mycare-service/internal/app/contracts"
	"mycare-service/internal/app/models"
)

// ConsultationInMemoryRepository backs demo mode. Insertion order is kept so
// listings mirror the order consultations were created in.
type ConsultationInMemoryRepository struct {
	mu            sync.RWMutex
	consultations []models.Consultation
}

func NewConsultationInMemoryRepository() contracts.ConsultationRepository {
	return &ConsultationInMemoryRepository{
		consultations: make([]models.Consultation, 0),
	}
}

func (r *ConsultationInMemoryRepository) FindByID(ctx context.Context, consultationID string) (*models.Consultation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, consultation := range r.consultations {
		if consultation.ID == consultationID {
			found := consultation
			return &found, nil
		}
	}
	return nil, nil
}

func (r *ConsultationInMemoryRepository) FindByPatientID(ctx context.Context, patientID string) ([]models.Consultation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]models.Consultation, 0)
	for _, consultation := range r.consultations {
		if consultation.PatientID == patientID {
			matched = append(matched, consultation)
		}
	}
	return matched, nil
}

func (r *ConsultationInMemoryRepository) FindByDoctorID(ctx context.Context, doctorID string) ([]models.Consultation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]models.Consultation, 0)
	for _, consultation := range r.consultations {
		if consultation.DoctorID == doctorID {
			matched = append(matched, consultation)
		}
	}
	return matched, nil
}

func (r *ConsultationInMemoryRepository) Insert(ctx context.Context, consultation *models.Consultation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.consultations = append(r.consultations, *consultation)
	return nil
}

func (r *ConsultationInMemoryRepository) Update(ctx context.Context, consultation *models.Consultation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.consultations {
		if r.consultations[i].ID == consultation.ID {
			r.consultations[i] = *consultation
			return nil
		}
	}
	return nil
}

func (r *ConsultationInMemoryRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.consultations)), nil
}

func (r *ConsultationInMemoryRepository) DeleteAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.consultations = r.consultations[:0]
	return nil
}
