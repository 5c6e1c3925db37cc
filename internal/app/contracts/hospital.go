package contracts

import (
	"context"
	"mycare-service/internal/app/models"
	"mycare-service/internal/pkg/dto/requests"
)

// HospitalResolver ranks hospitals for a condition. Implementations: the
// static heuristic over a fixed candidate table, and the LLM-backed variant.
// Both return at most three recommendations.
type HospitalResolver interface {
	RecommendHospitals(ctx context.Context, request *requests.HospitalRecommendationRequest) ([]models.HospitalRecommendation, error)
}
