package utils

import (
	"testing"

	"mycare-service/internal/pkg/dto/requests"

	"github.com/stretchr/testify/assert"
)

func TestValidateStruct(t *testing.T) {
	t.Run("valid consultation request", func(t *testing.T) {
		err := ValidateStruct(&requests.InitiateConsultationRequest{
			PatientID: "p1",
			Symptoms:  "stomach pain after meals",
			Language:  "ms",
		})
		assert.NoError(t, err)
	})

	t.Run("language is optional", func(t *testing.T) {
		err := ValidateStruct(&requests.InitiateConsultationRequest{
			PatientID: "p1",
			Symptoms:  "stomach pain",
		})
		assert.NoError(t, err)
	})

	t.Run("unknown language code rejected", func(t *testing.T) {
		err := ValidateStruct(&requests.InitiateConsultationRequest{
			PatientID: "p1",
			Symptoms:  "stomach pain",
			Language:  "xx",
		})
		assert.Error(t, err)
	})

	t.Run("short symptoms rejected", func(t *testing.T) {
		err := ValidateStruct(&requests.InitiateConsultationRequest{
			PatientID: "p1",
			Symptoms:  "ow",
		})
		assert.Error(t, err)
	})

	t.Run("urgency level bounds", func(t *testing.T) {
		valid := &requests.HospitalRecommendationRequest{
			Condition:    "chest pain",
			Location:     "Kuala Lumpur",
			UrgencyLevel: 10,
		}
		assert.NoError(t, ValidateStruct(valid))

		valid.UrgencyLevel = 11
		assert.Error(t, ValidateStruct(valid))

		valid.UrgencyLevel = 0
		assert.Error(t, ValidateStruct(valid))
	})
}

func TestSessionJWTRoundTrip(t *testing.T) {
	token, err := GenerateSessionJWT("session-1", "secret", 1)
	assert.NoError(t, err)

	sessionID, err := ParseSessionJWT(token, "secret")
	assert.NoError(t, err)
	assert.Equal(t, "session-1", sessionID)

	_, err = ParseSessionJWT(token, "other-secret")
	assert.Error(t, err)

	_, err = ParseSessionJWT("not-a-token", "secret")
	assert.Error(t, err)
}
