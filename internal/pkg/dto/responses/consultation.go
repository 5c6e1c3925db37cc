package responses

import "mycare-service/internal/app/models"

type CompleteConsultation struct {
	Consultation  *models.Consultation  `json:"consultation"`
	MedicalRecord *models.MedicalRecord `json:"medicalRecord"`
}
