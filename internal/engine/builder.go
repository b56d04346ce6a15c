package engine

import (
	"fmt"
	"math"
	"sort"

	"github.com/google/uuid"

	"github.com/yourusername/prop-parlay/internal/models"
)

// Leg-selection tuning. Diversified selection walks the strength-ranked
// pool from a handful of fixed rotation offsets and keeps the subset
// with the best blend of edge and diversification. Offsets are fixed,
// not randomized, so output is reproducible for the same inputs.
const (
	rotationOffsets  = 5
	edgeWeight       = 0.7
	diversityWeight  = 0.3
	valuePlayMinEdge = 2.0
)

// Variant definitions emitted by BuildParlays.
var variantSpecs = []struct {
	name       string
	size       int
	diversify  bool
	risk       models.RiskLevel
	confidence models.ConfidenceLabel
}{
	{"Safe", 2, true, models.RiskLow, models.ConfidenceLabelHigh},
	{"Balanced", 3, true, models.RiskMedium, models.ConfidenceLabelMediumHigh},
	{"Aggressive", 4, true, models.RiskHigh, models.ConfidenceLabelMedium},
}

// BuildParlays assembles parlay variants from the graded leg pool. Push
// legs are excluded up front; variants that cannot be filled with enough
// unique player-stat legs are omitted rather than failing.
func BuildParlays(legs []models.Leg) []models.ParlayCandidate {
	pool := rankByStrength(legs)

	candidates := make([]models.ParlayCandidate, 0, len(variantSpecs)+1)
	for _, spec := range variantSpecs {
		selected := selectLegs(pool, spec.size, spec.diversify)
		if len(selected) < spec.size {
			continue
		}
		candidates = append(candidates, newCandidate(spec.name, selected, spec.risk, spec.confidence))
	}

	// Value play: raw edge over diversification, strongest legs only.
	valuePool := make([]models.Leg, 0, len(pool))
	for i := range pool {
		if pool[i].Edge > valuePlayMinEdge {
			valuePool = append(valuePool, pool[i])
		}
	}
	if len(valuePool) >= 2 {
		selected := selectLegs(valuePool, 3, false)
		if len(selected) >= 2 {
			candidates = append(candidates, newCandidate("Value Play", selected, models.RiskMedium, models.ConfidenceLabelHigh))
		}
	}

	return candidates
}

// rankByStrength filters out push legs and sorts by absolute edge
// descending. Ties break on market key to keep ordering deterministic.
func rankByStrength(legs []models.Leg) []models.Leg {
	pool := make([]models.Leg, 0, len(legs))
	for i := range legs {
		if legs[i].IsPlayable() {
			pool = append(pool, legs[i])
		}
	}
	sort.Slice(pool, func(i, j int) bool {
		ei, ej := math.Abs(pool[i].Edge), math.Abs(pool[j].Edge)
		if ei != ej {
			return ei > ej
		}
		return pool[i].Key() < pool[j].Key()
	})
	return pool
}

// selectLegs picks count legs with unique player-stat keys from the
// strength-ranked pool. Without diversification it is a plain greedy
// walk from the top. With diversification it walks from several fixed
// rotation offsets, scores each resulting subset on mean edge plus
// correlation, and keeps the best.
func selectLegs(pool []models.Leg, count int, diversify bool) []models.Leg {
	if !diversify {
		return greedyWalk(pool, count, 0)
	}

	var best []models.Leg
	bestScore := math.Inf(-1)
	for offset := 0; offset < rotationOffsets; offset++ {
		subset := greedyWalk(pool, count, offset)
		if len(subset) < count {
			continue
		}
		score := edgeWeight*meanAbsEdge(subset) + diversityWeight*CorrelationScore(subset)
		if score > bestScore {
			bestScore = score
			best = subset
		}
	}
	return best
}

// greedyWalk takes legs in ranked order starting at offset, wrapping
// around, skipping duplicate player-stat keys.
func greedyWalk(pool []models.Leg, count, offset int) []models.Leg {
	selected := make([]models.Leg, 0, count)
	seen := make(map[string]bool, count)
	for i := 0; i < len(pool) && len(selected) < count; i++ {
		leg := pool[(offset+i)%len(pool)]
		key := leg.Key()
		if seen[key] {
			continue
		}
		seen[key] = true
		selected = append(selected, leg)
	}
	return selected
}

func meanAbsEdge(legs []models.Leg) float64 {
	if len(legs) == 0 {
		return 0
	}
	sum := 0.0
	for i := range legs {
		sum += math.Abs(legs[i].Edge)
	}
	return sum / float64(len(legs))
}

func newCandidate(name string, legs []models.Leg, risk models.RiskLevel, confidence models.ConfidenceLabel) models.ParlayCandidate {
	return models.ParlayCandidate{
		ID:         uuid.New(),
		Name:       name,
		Legs:       legs,
		Risk:       risk,
		Confidence: confidence,
		Reasoning:  describeSelection(legs),
	}
}

// describeSelection summarizes a combination for display. Purely
// descriptive; never used in scoring.
func describeSelection(legs []models.Leg) string {
	teams := make(map[string]bool, len(legs))
	statTypes := make(map[models.StatType]bool, len(legs))
	highConfidence := 0
	for i := range legs {
		teams[legs[i].TeamID] = true
		statTypes[legs[i].StatType] = true
		if legs[i].Confidence == models.ConfidenceHigh {
			highConfidence++
		}
	}
	return fmt.Sprintf("%d legs averaging %.1f points of edge across %d teams and %d stat categories; %d high-confidence picks",
		len(legs), meanAbsEdge(legs), len(teams), len(statTypes), highConfidence)
}
