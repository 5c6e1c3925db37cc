package hospitals

import (
	"context"

	"mycare-service/internal/app/contracts"
	"mycare-service/internal/app/models"
	"mycare-service/internal/pkg/dto/requests"
)

// llmRecommender is the subset of the language-model client the resolver
// needs.
type llmRecommender interface {
	RecommendHospitals(ctx context.Context, request *requests.HospitalRecommendationRequest) ([]models.HospitalRecommendation, error)
}

// llmResolver delegates ranking to the language-model collaborator. It shares
// the resolver contract with the static heuristic so the backend is swappable
// by configuration.
type llmResolver struct {
	Recommender llmRecommender
}

func NewLLMResolver(recommender llmRecommender) contracts.HospitalResolver {
	return &llmResolver{Recommender: recommender}
}

func (l *llmResolver) RecommendHospitals(ctx context.Context, request *requests.HospitalRecommendationRequest) ([]models.HospitalRecommendation, error) {
	return l.Recommender.RecommendHospitals(ctx, request)
}
