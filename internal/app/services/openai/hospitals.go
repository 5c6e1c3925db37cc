package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"mycare-service/internal/app/models"
	"mycare-service/internal/pkg/constvars"
	"mycare-service/internal/pkg/dto/requests"
	"mycare-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type hospitalsPayload struct {
	Hospitals []models.HospitalRecommendation `json:"hospitals"`
}

// RecommendHospitals asks the model for up to three Malaysian hospital
// suggestions matching the case.
func (c *Client) RecommendHospitals(ctx context.Context, request *requests.HospitalRecommendationRequest) ([]models.HospitalRecommendation, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	c.Log.Info("openAIClient.RecommendHospitals called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingConditionKey, request.Condition),
		zap.Int(constvars.LoggingUrgencyLevelKey, request.UrgencyLevel),
	)

	userContent := fmt.Sprintf("Patient condition: %s\nLocation: %s\nUrgency level: %d/10\nSpecial needs: %s",
		request.Condition, request.Location, request.UrgencyLevel, strings.Join(request.PatientNeeds, ", "))

	messages := []chatMessage{
		{Role: "system", Content: hospitalSystemPrompt},
		{Role: "user", Content: userContent},
	}

	content, err := c.chatCompletion(ctx, messages, 0.7, 1000, true)
	if err != nil {
		c.Log.Error("openAIClient.RecommendHospitals error from completion",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	var payload hospitalsPayload
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return nil, exceptions.ErrCollaboratorMalformedResponse(err)
	}

	recommendations := payload.Hospitals
	if recommendations == nil {
		recommendations = []models.HospitalRecommendation{}
	}
	if len(recommendations) > 3 {
		recommendations = recommendations[:3]
	}

	return recommendations, nil
}
