package consultations

import "mycare-service/internal/app/models"

// Demo seed fixtures. Ids are stable so the demo frontend can reference them
// directly.
func seedPatients() []models.Patient {
	return []models.Patient{
		{
			ID:                "p1",
			Name:              "Ahmad bin Abdullah",
			DateOfBirth:       "1980-05-15",
			Gender:            models.GenderMale,
			PreferredLanguage: "ms",
			ContactNumber:     "+60123456789",
			Email:             "ahmad@example.com",
		},
		{
			ID:                "p2",
			Name:              "Mei Ling Tan",
			DateOfBirth:       "1992-11-02",
			Gender:            models.GenderFemale,
			PreferredLanguage: "zh",
			ContactNumber:     "+60198765432",
			Email:             "meiling@example.com",
		},
		{
			ID:                "p3",
			Name:              "Rajesh Kumar",
			DateOfBirth:       "1975-08-23",
			Gender:            models.GenderMale,
			PreferredLanguage: "ta",
			ContactNumber:     "+60134567890",
			Email:             "rajesh@example.com",
		},
	}
}

func seedMedicalRecords() []models.MedicalRecord {
	return []models.MedicalRecord{
		{
			ID:         "mr1",
			PatientID:  "p1",
			Date:       "2023-01-15T08:30:00Z",
			Diagnosis:  "Hypertension, stage 1",
			Treatment:  "Prescribed Lisinopril 10mg daily",
			DoctorID:   "d1",
			DoctorName: "Dr. Sarah Chen",
			Notes:      "Patient advised to reduce sodium intake and exercise regularly",
		},
		{
			ID:         "mr2",
			PatientID:  "p1",
			Date:       "2023-06-22T10:15:00Z",
			Diagnosis:  "Common cold",
			Treatment:  "Rest and over-the-counter cold medication",
			DoctorID:   "d2",
			DoctorName: "Dr. Amir Khan",
			Notes:      "Follow up if symptoms persist beyond 7 days",
		},
		{
			ID:         "mr3",
			PatientID:  "p2",
			Date:       "2023-03-05T14:45:00Z",
			Diagnosis:  "Allergic rhinitis",
			Treatment:  "Cetirizine 10mg daily",
			DoctorID:   "d3",
			DoctorName: "Dr. Li Wei",
			Notes:      "Patient reports seasonal allergies, worse during haze periods",
		},
	}
}
