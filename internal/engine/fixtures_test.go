package engine

import "github.com/yourusername/prop-parlay/internal/models"

func intPtr(v int) *int { return &v }

func prop(athleteID, name, teamID, statType string, line float64, over, under *int) models.PropLine {
	return models.PropLine{
		AthleteID:  athleteID,
		PlayerName: name,
		TeamID:     teamID,
		StatType:   statType,
		Line:       line,
		OverOdds:   over,
		UnderOdds:  under,
	}
}

func prediction(athleteID, statType string, predicted, edge float64, confidence models.Confidence) models.Prediction {
	return models.Prediction{
		AthleteID:  athleteID,
		StatType:   statType,
		Predicted:  predicted,
		Edge:       edge,
		Confidence: confidence,
	}
}

// playableLeg builds a graded leg directly, for builder and pricer tests
// that do not exercise the matcher.
func playableLeg(athleteID, teamID string, stat models.StatType, edge float64, recommendedOdds int, confidence models.Confidence) models.Leg {
	side := models.SideOver
	if edge < 0 {
		side = models.SideUnder
	}
	favored := clamp01(baseHitProbability + minFloat(absFloat(edge), hitProbEdgeCap)*hitProbPerEdgePoint)
	leg := models.Leg{
		AthleteID:       athleteID,
		PlayerName:      "Player " + athleteID,
		TeamID:          teamID,
		StatType:        stat,
		Edge:            edge,
		Confidence:      confidence,
		Side:            side,
		RecommendedOdds: recommendedOdds,
	}
	if side == models.SideOver {
		leg.OverProbability = favored
		leg.UnderProbability = 1 - favored
	} else {
		leg.UnderProbability = favored
		leg.OverProbability = 1 - favored
	}
	return leg
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
