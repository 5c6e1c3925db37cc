package patients

import (
	"context"
	"sync"

	"mycare-service/internal/app/contracts"
	"mycare-service/internal/app/models"
)

// PatientInMemoryRepository backs demo mode: no database required, data lives
// for the lifetime of the process.
type PatientInMemoryRepository struct {
	mu       sync.RWMutex
	patients map[string]models.Patient
}

func NewPatientInMemoryRepository() contracts.PatientRepository {
	return &PatientInMemoryRepository{
		patients: make(map[string]models.Patient),
	}
}

func (r *PatientInMemoryRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	patient, ok := r.patients[patientID]
	if !ok {
		return nil, nil
	}
	return &patient, nil
}

func (r *PatientInMemoryRepository) Insert(ctx context.Context, patient *models.Patient) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.patients[patient.ID] = *patient
	return nil
}

func (r *PatientInMemoryRepository) DeleteAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.patients = make(map[string]models.Patient)
	return nil
}
