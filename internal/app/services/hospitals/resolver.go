package hospitals

import (
	"time"

	"mycare-service/internal/app/config"
	"mycare-service/internal/app/contracts"

	"go.uber.org/zap"
)

const BackendLLM = "llm"

// NewResolver selects the recommendation backend from configuration. Anything
// other than "llm" falls back to the static heuristic.
func NewResolver(internalConfig *config.InternalConfig, recommender llmRecommender, logger *zap.Logger) contracts.HospitalResolver {
	if internalConfig.Workflow.HospitalResolverBackend == BackendLLM {
		return NewLLMResolver(recommender)
	}
	delay := time.Duration(internalConfig.Workflow.HospitalResolverDelayInMs) * time.Millisecond
	return NewStaticResolver(delay, logger)
}
