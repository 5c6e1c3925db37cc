package hospitals

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"mycare-service/internal/app/contracts"
	"mycare-service/internal/app/models"
	"mycare-service/internal/pkg/constvars"
	"mycare-service/internal/pkg/dto/requests"

	"go.uber.org/zap"
)

const lowWaitMarker = "10-15"

// staticResolver ranks the fixed candidate table with a deterministic
// heuristic. Delay emulates the latency of a real hospital directory lookup
// and is zero in tests.
type staticResolver struct {
	Candidates []models.HospitalCandidate
	Delay      time.Duration
	Log        *zap.Logger
}

func NewStaticResolver(delay time.Duration, logger *zap.Logger) contracts.HospitalResolver {
	return &staticResolver{
		Candidates: candidateHospitals,
		Delay:      delay,
		Log:        logger,
	}
}

func (s *staticResolver) RecommendHospitals(ctx context.Context, request *requests.HospitalRecommendationRequest) ([]models.HospitalRecommendation, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	s.Log.Info("staticResolver.RecommendHospitals called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingConditionKey, request.Condition),
		zap.Int(constvars.LoggingUrgencyLevelKey, request.UrgencyLevel),
	)

	if s.Delay > 0 {
		select {
		case <-time.After(s.Delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	relevantSpecialties := relevantSpecialtiesFor(request.Condition)

	type scoredCandidate struct {
		candidate models.HospitalCandidate
		score     int
	}

	scored := make([]scoredCandidate, 0, len(s.Candidates))
	for _, candidate := range s.Candidates {
		scored = append(scored, scoredCandidate{
			candidate: candidate,
			score:     scoreCandidate(candidate, relevantSpecialties, request.UrgencyLevel),
		})
	}

	// Stable keeps candidate-table order on ties.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	limit := 3
	if len(scored) < limit {
		limit = len(scored)
	}

	recommendations := make([]models.HospitalRecommendation, 0, limit)
	for _, entry := range scored[:limit] {
		recommendations = append(recommendations, models.HospitalRecommendation{
			HospitalName:           entry.candidate.Name,
			Address:                entry.candidate.Address,
			SpecialistAvailability: entry.candidate.SpecialistAvailability,
			WaitTime:               entry.candidate.WaitTime,
			Distance:               entry.candidate.Distance,
			ContactNumber:          entry.candidate.ContactNumber,
			SuitabilityReason:      suitabilityReason(entry.candidate, relevantSpecialties, request),
		})
	}

	s.Log.Info("staticResolver.RecommendHospitals succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingRecommendationsKey, len(recommendations)),
	)

	return recommendations, nil
}

func relevantSpecialtiesFor(condition string) []string {
	lowered := strings.ToLower(condition)
	for _, rule := range specialtyRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lowered, keyword) {
				return rule.specialties
			}
		}
	}
	return defaultSpecialties
}

func scoreCandidate(candidate models.HospitalCandidate, relevantSpecialties []string, urgencyLevel int) int {
	score := 0
	if specialtiesIntersect(candidate.Specialties, relevantSpecialties) {
		score += 5
	}
	if candidate.SpecialistAvailability {
		score += 3
	}
	if candidate.CapacityPercentage < 70 {
		score += 2
	}
	if urgencyLevel >= 7 && strings.Contains(candidate.WaitTime, lowWaitMarker) {
		score += 3
	}
	return score
}

func specialtiesIntersect(hospitalSpecialties, relevantSpecialties []string) bool {
	for _, hospitalSpecialty := range hospitalSpecialties {
		for _, relevant := range relevantSpecialties {
			if hospitalSpecialty == relevant {
				return true
			}
		}
	}
	return false
}

// suitabilityReason picks the highest-priority applicable reason: urgent
// low-wait, then specialty match, then spare capacity, then a generic
// fallback.
func suitabilityReason(candidate models.HospitalCandidate, relevantSpecialties []string, request *requests.HospitalRecommendationRequest) string {
	if request.UrgencyLevel >= 7 && strings.Contains(candidate.WaitTime, lowWaitMarker) {
		return fmt.Sprintf("Short %s wait time, suitable for urgent cases near %s", candidate.WaitTime, request.Location)
	}
	if specialtiesIntersect(candidate.Specialties, relevantSpecialties) {
		return fmt.Sprintf("Has specialists relevant to %s on duty", request.Condition)
	}
	if candidate.CapacityPercentage < 70 {
		return "Currently below capacity and able to accept new patients"
	}
	return fmt.Sprintf("General medical services available near %s", request.Location)
}
