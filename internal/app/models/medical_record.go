package models

// MedicalRecord is append-only. A record is created when a consultation
// completes or when uploaded documents are submitted, and is never mutated
// afterwards.
type MedicalRecord struct {
	ID           string   `json:"id" bson:"_id"`
	PatientID    string   `json:"patientId" bson:"patientId"`
	Date         string   `json:"date" bson:"date"`
	Diagnosis    string   `json:"diagnosis" bson:"diagnosis"`
	Treatment    string   `json:"treatment" bson:"treatment"`
	DoctorID     string   `json:"doctorId" bson:"doctorId"`
	DoctorName   string   `json:"doctorName" bson:"doctorName"`
	Notes        string   `json:"notes,omitempty" bson:"notes,omitempty"`
	Medications  []string `json:"medications,omitempty" bson:"medications,omitempty"`
	Attachments  []string `json:"attachments,omitempty" bson:"attachments,omitempty"`
	FollowUpDate string   `json:"followUpDate,omitempty" bson:"followUpDate,omitempty"`
	TimeModel    `bson:",inline"`
}
