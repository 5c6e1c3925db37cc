package models

// HospitalCandidate is an entry of the fixed candidate table the static
// resolver ranks against. Specialties and CapacityPercentage feed the scoring
// heuristic and are stripped from the outgoing recommendation.
type HospitalCandidate struct {
	Name                   string
	Address                string
	Specialties            []string
	SpecialistAvailability bool
	WaitTime               string
	Distance               string
	ContactNumber          string
	CapacityPercentage     int
}

// HospitalRecommendation is derived per request and never persisted.
type HospitalRecommendation struct {
	HospitalName           string `json:"hospitalName"`
	Address                string `json:"address"`
	SpecialistAvailability bool   `json:"specialistAvailability"`
	WaitTime               string `json:"waitTime"`
	Distance               string `json:"distance"`
	ContactNumber          string `json:"contactNumber"`
	SuitabilityReason      string `json:"suitabilityReason"`
}
