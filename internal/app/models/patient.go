package models

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Patient is created on first reference and never updated through the
// consultation workflow.
type Patient struct {
	ID                string `json:"id" bson:"_id"`
	Name              string `json:"name" bson:"name"`
	DateOfBirth       string `json:"dateOfBirth" bson:"dateOfBirth"`
	Gender            Gender `json:"gender" bson:"gender"`
	PreferredLanguage string `json:"preferredLanguage" bson:"preferredLanguage"`
	ContactNumber     string `json:"contactNumber" bson:"contactNumber"`
	Address           string `json:"address,omitempty" bson:"address,omitempty"`
	Email             string `json:"email,omitempty" bson:"email,omitempty"`
	EmergencyContact  string `json:"emergencyContact,omitempty" bson:"emergencyContact,omitempty"`
	TimeModel         `bson:",inline"`
}
