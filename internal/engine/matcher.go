// Package engine implements the parlay grading and pricing engine: prop
// matching, pick grading, correlation scoring, combination building and
// same-game-parlay pricing. All computations are pure functions over
// immutable inputs.
package engine

import (
	"math"

	"github.com/yourusername/prop-parlay/internal/models"
)

const (
	baseHitProbability  = 0.55
	hitProbPerEdgePoint = 0.02
	hitProbEdgeCap      = 10.0
)

// MatchLegs pairs tradable prop lines with predictions for the same
// player and stat category, producing ungraded leg candidates. Props
// with a single priced side or no matching prediction are dropped;
// absence of a model opinion is expected for many markets.
func MatchLegs(props []models.PropLine, predictions []models.Prediction) []models.Leg {
	byPlayer := make(map[string][]*models.Prediction, len(predictions))
	for i := range predictions {
		p := &predictions[i]
		byPlayer[p.AthleteID] = append(byPlayer[p.AthleteID], p)
	}

	legs := make([]models.Leg, 0, len(props))
	for i := range props {
		prop := &props[i]
		if !prop.IsTradable() {
			continue
		}
		prediction := findPrediction(byPlayer[prop.AthleteID], prop.StatType)
		if prediction == nil {
			continue
		}
		legs = append(legs, buildLeg(prop, prediction))
	}
	return legs
}

func findPrediction(candidates []*models.Prediction, rawStatType string) *models.Prediction {
	for _, p := range candidates {
		if models.StatTypesMatch(p.StatType, rawStatType) {
			return p
		}
	}
	return nil
}

// buildLeg derives the recommendation and per-side hit probabilities.
// The favored side gets 0.55 + 0.02 per point of edge (edge capped at
// 10), the other side its complement. A prediction landing exactly on
// the line is a push with no exploitable edge.
func buildLeg(prop *models.PropLine, prediction *models.Prediction) models.Leg {
	leg := models.Leg{
		AthleteID:   prop.AthleteID,
		PlayerName:  prop.PlayerName,
		TeamID:      prop.TeamID,
		StatType:    prop.Category(),
		RawStatType: prop.StatType,
		Line:        prop.Line,
		OverOdds:    *prop.OverOdds,
		UnderOdds:   *prop.UnderOdds,
		Predicted:   prediction.Predicted,
		Edge:        prediction.Edge,
		Confidence:  prediction.Confidence,
		Trend:       prediction.RecentTrend,
	}

	favored := clamp01(baseHitProbability + math.Min(math.Abs(leg.Edge), hitProbEdgeCap)*hitProbPerEdgePoint)

	switch {
	case prediction.Predicted > prop.Line:
		leg.Side = models.SideOver
		leg.RecommendedOdds = leg.OverOdds
		leg.OverProbability = favored
		leg.UnderProbability = clamp01(1 - favored)
	case prediction.Predicted < prop.Line:
		leg.Side = models.SideUnder
		leg.RecommendedOdds = leg.UnderOdds
		leg.UnderProbability = favored
		leg.OverProbability = clamp01(1 - favored)
	default:
		leg.Side = models.SidePush
		leg.OverProbability = 0.5
		leg.UnderProbability = 0.5
	}

	return leg
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
