package engine

import "github.com/yourusername/prop-parlay/internal/models"

// Correlation scoring weights. Higher score means less correlated
// outcomes, which is safer for a same-game parlay.
const (
	multiTeamBonus        = 20.0
	statVarietyBonus      = 10.0
	singleStatPenalty     = -30.0
	correlationScoreFloor = -30.0
	correlationScoreCeil  = 50.0
)

// CorrelationScore measures how diversified a set of legs is across
// teams and stat categories. Roughly -30 (fully correlated) to +50
// (well spread) with realistic inputs.
func CorrelationScore(legs []models.Leg) float64 {
	if len(legs) == 0 {
		return 0
	}

	teams := make(map[string]bool, len(legs))
	statTypes := make(map[models.StatType]bool, len(legs))
	for i := range legs {
		teams[legs[i].TeamID] = true
		statTypes[legs[i].StatType] = true
	}

	score := 0.0
	if len(teams) > 1 {
		score += multiTeamBonus
	}
	score += statVarietyBonus * float64(len(statTypes))
	if len(statTypes) == 1 {
		score += singleStatPenalty
	}
	return score
}

// clampCorrelation bounds a correlation score to the range the pricing
// discount is defined over.
func clampCorrelation(score float64) float64 {
	if score < correlationScoreFloor {
		return correlationScoreFloor
	}
	if score > correlationScoreCeil {
		return correlationScoreCeil
	}
	return score
}
