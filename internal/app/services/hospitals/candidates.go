package hospitals

import "mycare-service/internal/app/models"

// specialtyRule maps condition keywords to the specialty set used in scoring.
// Order matters: the first rule whose keywords match wins, because condition
// text often matches several keyword sets.
type specialtyRule struct {
	keywords    []string
	specialties []string
}

var specialtyRules = []specialtyRule{
	{keywords: []string{"cardiac", "chest"}, specialties: []string{"Cardiology", "Emergency"}},
	{keywords: []string{"gastro", "stomach"}, specialties: []string{"Gastroenterology", "General Medicine"}},
	{keywords: []string{"bone", "joint", "fracture"}, specialties: []string{"Orthopedics", "Emergency"}},
	{keywords: []string{"skin", "rash", "allergy"}, specialties: []string{"Dermatology", "General Medicine"}},
	{keywords: []string{"brain", "nerve", "head"}, specialties: []string{"Neurology", "Emergency"}},
}

var defaultSpecialties = []string{"General Medicine"}

// candidateHospitals is the fixed table the static resolver ranks. It is
// never mutated; scoring works on copies.
var candidateHospitals = []models.HospitalCandidate{
	{
		Name:                   "Hospital Kuala Lumpur",
		Address:                "Jalan Pahang, 50586 Kuala Lumpur",
		Specialties:            []string{"Cardiology", "Neurology", "Emergency", "General Medicine"},
		SpecialistAvailability: true,
		WaitTime:               "30-45 minutes",
		Distance:               "4.5 km",
		ContactNumber:          "+603-2615 5555",
		CapacityPercentage:     85,
	},
	{
		Name:                   "Gleneagles Hospital Kuala Lumpur",
		Address:                "286 Jalan Ampang, 50450 Kuala Lumpur",
		Specialties:            []string{"Cardiology", "Orthopedics", "Gastroenterology"},
		SpecialistAvailability: true,
		WaitTime:               "10-15 minutes",
		Distance:               "6.1 km",
		ContactNumber:          "+603-4141 3000",
		CapacityPercentage:     55,
	},
	{
		Name:                   "Sunway Medical Centre",
		Address:                "5 Jalan Lagoon Selatan, 47500 Bandar Sunway",
		Specialties:            []string{"Cardiology", "Dermatology", "General Medicine"},
		SpecialistAvailability: true,
		WaitTime:               "15-30 minutes",
		Distance:               "12.3 km",
		ContactNumber:          "+603-7491 9191",
		CapacityPercentage:     62,
	},
	{
		Name:                   "Hospital Selayang",
		Address:                "Lebuhraya Selayang-Kepong, 68100 Batu Caves",
		Specialties:            []string{"Gastroenterology", "General Medicine", "Emergency"},
		SpecialistAvailability: false,
		WaitTime:               "45-60 minutes",
		Distance:               "9.8 km",
		ContactNumber:          "+603-6126 3333",
		CapacityPercentage:     78,
	},
	{
		Name:                   "Prince Court Medical Centre",
		Address:                "39 Jalan Kia Peng, 50450 Kuala Lumpur",
		Specialties:            []string{"Neurology", "Orthopedics", "Dermatology"},
		SpecialistAvailability: true,
		WaitTime:               "15-30 minutes",
		Distance:               "5.2 km",
		ContactNumber:          "+603-2160 0000",
		CapacityPercentage:     48,
	},
	{
		Name:                   "Hospital Ampang",
		Address:                "Jalan Mewah Utara, 68000 Ampang",
		Specialties:            []string{"General Medicine", "Emergency"},
		SpecialistAvailability: false,
		WaitTime:               "30-45 minutes",
		Distance:               "8.7 km",
		ContactNumber:          "+603-4289 6000",
		CapacityPercentage:     73,
	},
}
