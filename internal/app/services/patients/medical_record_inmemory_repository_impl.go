package patients

import (
	"context"
	"sync"

	"mycare-service/internal/app/contracts"
	"mycare-service/internal/app/models"
)

type MedicalRecordInMemoryRepository struct {
	mu      sync.RWMutex
	records []models.MedicalRecord
}

func NewMedicalRecordInMemoryRepository() contracts.MedicalRecordRepository {
	return &MedicalRecordInMemoryRepository{
		records: make([]models.MedicalRecord, 0),
	}
}

func (r *MedicalRecordInMemoryRepository) FindByPatientID(ctx context.Context, patientID string) ([]models.MedicalRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]models.MedicalRecord, 0)
	for _, record := range r.records {
		if record.PatientID == patientID {
			matched = append(matched, record)
		}
	}
	return matched, nil
}

func (r *MedicalRecordInMemoryRepository) Insert(ctx context.Context, record *models.MedicalRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = append(r.records, *record)
	return nil
}

func (r *MedicalRecordInMemoryRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.records)), nil
}

func (r *MedicalRecordInMemoryRepository) DeleteAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = r.records[:0]
	return nil
}
