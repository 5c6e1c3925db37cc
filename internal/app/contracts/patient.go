package contracts

import (
	"context"
	"mycare-service/internal/app/models"
)

type PatientRepository interface {
	// FindByID returns (nil, nil) when no patient exists for the id.
	FindByID(ctx context.Context, patientID string) (*models.Patient, error)
	Insert(ctx context.Context, patient *models.Patient) error
	DeleteAll(ctx context.Context) error
}

type MedicalRecordRepository interface {
	FindByPatientID(ctx context.Context, patientID string) ([]models.MedicalRecord, error)
	Insert(ctx context.Context, record *models.MedicalRecord) error
	Count(ctx context.Context) (int64, error)
	DeleteAll(ctx context.Context) error
}
