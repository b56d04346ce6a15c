package engine

import (
	"fmt"
	"math"

	"github.com/yourusername/prop-parlay/internal/models"
)

// Grade adjustment weights. Each term is computed independently and the
// sum is clamped to [0,1].
const (
	injuryBonusPerPlayer = 0.08
	injuryBonusCap       = 0.20
	homeEdgeBonus        = 0.05
	paceHighBonus        = 0.08
	paceMediumBonus      = 0.05
	paceLowPenalty       = -0.05
	lowPaceReboundBonus  = 0.05
	closeGameBonus       = 0.06
	blowoutPenalty       = -0.08
	trendAdjustment      = 0.05

	highTotalThreshold     = 230.0
	mediumTotalThreshold   = 220.0
	lowTotalThreshold      = 210.0
	closeSpreadThreshold   = 5.0
	blowoutSpreadThreshold = 12.0
)

// GradeLeg computes the pick-quality grade for a leg from its edge,
// confidence and the game context, and records a human-readable factor
// for every non-zero term. It is a total function: missing context
// simply contributes nothing. The returned leg is a graded copy; the
// input is not mutated.
func GradeLeg(leg models.Leg, ctx models.ContextSignals) models.Leg {
	factors := make([]string, 0, 6)

	base := math.Min(math.Abs(leg.Edge)/10.0, 1.0) * leg.Confidence.Multiplier()
	grade := base
	if base != 0 {
		factors = append(factors, fmt.Sprintf("%s confidence edge of %+.1f (%s)",
			leg.Confidence, leg.Edge, percent(base)))
	}

	if adj := injuryAdjustment(&leg, &ctx); adj != 0 {
		grade += adj
		factors = append(factors, fmt.Sprintf("teammates ruled out boost usage (%s)", percent(adj)))
	}

	leg.IsHome = ctx.IsHomeTeam(leg.TeamID)
	if leg.IsHome && leg.Edge > 0 {
		grade += homeEdgeBonus
		factors = append(factors, fmt.Sprintf("home game with positive edge (%s)", percent(homeEdgeBonus)))
	}

	if adj, reason := paceAdjustment(leg.StatType, ctx.OverUnder); adj != 0 {
		grade += adj
		factors = append(factors, fmt.Sprintf("%s (%s)", reason, percent(adj)))
	}

	if adj, reason := competitivenessAdjustment(&leg, &ctx); adj != 0 {
		grade += adj
		factors = append(factors, fmt.Sprintf("%s (%s)", reason, percent(adj)))
	}

	switch leg.Trend {
	case models.TrendHot:
		grade += trendAdjustment
		factors = append(factors, fmt.Sprintf("player is hot (%s)", percent(trendAdjustment)))
	case models.TrendCold:
		grade -= trendAdjustment
		factors = append(factors, fmt.Sprintf("player is cold (%s)", percent(-trendAdjustment)))
	}

	leg.Grade = clamp01(grade)
	leg.GradeFactors = factors
	return leg
}

func injuryAdjustment(leg *models.Leg, ctx *models.ContextSignals) float64 {
	out := ctx.TeammatesOut(leg.TeamID, leg.AthleteID)
	if out == 0 {
		return 0
	}
	return math.Min(float64(out)*injuryBonusPerPlayer, injuryBonusCap)
}

func paceAdjustment(stat models.StatType, overUnder float64) (float64, string) {
	if overUnder <= 0 {
		return 0, ""
	}
	if stat.IsScoringType() {
		switch {
		case overUnder >= highTotalThreshold:
			return paceHighBonus, "high-total game favors volume"
		case overUnder >= mediumTotalThreshold:
			return paceMediumBonus, "above-average game total"
		case overUnder < lowTotalThreshold:
			return paceLowPenalty, "low-total game limits volume"
		}
		return 0, ""
	}
	if stat.IsDefensiveCountType() && overUnder < lowTotalThreshold {
		return lowPaceReboundBonus, "slow game favors counting stats"
	}
	return 0, ""
}

func competitivenessAdjustment(leg *models.Leg, ctx *models.ContextSignals) (float64, string) {
	if ctx.Spread == 0 {
		return 0, ""
	}
	absSpread := math.Abs(ctx.Spread)
	if absSpread <= closeSpreadThreshold {
		return closeGameBonus, "tight spread means full minutes"
	}
	if absSpread > blowoutSpreadThreshold && ctx.IsUnderdog(leg.TeamID) {
		return blowoutPenalty, "blowout risk for trailing team"
	}
	return 0, ""
}

func percent(v float64) string {
	return fmt.Sprintf("%+.0f%%", v*100)
}
