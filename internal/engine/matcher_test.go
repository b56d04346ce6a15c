package engine

import (
	"math"
	"testing"

	"github.com/yourusername/prop-parlay/internal/models"
)

func TestMatchLegsDropsOneSidedProps(t *testing.T) {
	props := []models.PropLine{
		prop("p1", "Jalen Ford", "BOS", "points", 24.5, intPtr(-110), nil),
		prop("p2", "Marcus Webb", "BOS", "points", 18.5, nil, intPtr(-115)),
	}
	predictions := []models.Prediction{
		prediction("p1", "points", 27.0, 2.5, models.ConfidenceHigh),
		prediction("p2", "points", 16.0, -2.5, models.ConfidenceHigh),
	}

	legs := MatchLegs(props, predictions)
	if len(legs) != 0 {
		t.Fatalf("expected one-sided props to produce zero legs, got %d", len(legs))
	}
}

func TestMatchLegsDropsPropsWithoutPrediction(t *testing.T) {
	props := []models.PropLine{
		prop("p1", "Jalen Ford", "BOS", "points", 24.5, intPtr(-110), intPtr(-110)),
		prop("p9", "Deep Bench", "BOS", "points", 4.5, intPtr(-120), intPtr(100)),
	}
	predictions := []models.Prediction{
		prediction("p1", "points", 27.0, 2.5, models.ConfidenceHigh),
	}

	legs := MatchLegs(props, predictions)
	if len(legs) != 1 {
		t.Fatalf("expected 1 leg, got %d", len(legs))
	}
	if legs[0].AthleteID != "p1" {
		t.Fatalf("expected leg for p1, got %s", legs[0].AthleteID)
	}
}

func TestMatchLegsStatTypeContainment(t *testing.T) {
	props := []models.PropLine{
		prop("p1", "Jalen Ford", "BOS", "Total Points", 24.5, intPtr(-110), intPtr(-110)),
		prop("p1", "Jalen Ford", "BOS", "Rebounds", 8.5, intPtr(-105), intPtr(-115)),
	}
	predictions := []models.Prediction{
		prediction("p1", "points", 27.0, 2.5, models.ConfidenceHigh),
		prediction("p1", "total rebounds", 9.5, 1.0, models.ConfidenceMedium),
	}

	legs := MatchLegs(props, predictions)
	if len(legs) != 2 {
		t.Fatalf("expected 2 legs from containment matching, got %d", len(legs))
	}
	if legs[0].StatType != models.StatPoints || legs[1].StatType != models.StatRebounds {
		t.Fatalf("unexpected stat categories: %s, %s", legs[0].StatType, legs[1].StatType)
	}
}

func TestMatchLegsRecommendation(t *testing.T) {
	tests := []struct {
		name      string
		predicted float64
		line      float64
		wantSide  models.Side
		wantOdds  int
	}{
		{"over when predicted above line", 27.0, 24.5, models.SideOver, -110},
		{"under when predicted below line", 22.0, 24.5, models.SideUnder, -120},
		{"push when predicted equals line", 24.5, 24.5, models.SidePush, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			props := []models.PropLine{
				prop("p1", "Jalen Ford", "BOS", "points", tt.line, intPtr(-110), intPtr(-120)),
			}
			predictions := []models.Prediction{
				prediction("p1", "points", tt.predicted, tt.predicted-tt.line, models.ConfidenceHigh),
			}

			legs := MatchLegs(props, predictions)
			if len(legs) != 1 {
				t.Fatalf("expected 1 leg, got %d", len(legs))
			}
			leg := legs[0]
			if leg.Side != tt.wantSide {
				t.Errorf("side = %s, want %s", leg.Side, tt.wantSide)
			}
			if leg.RecommendedOdds != tt.wantOdds {
				t.Errorf("recommended odds = %d, want %d", leg.RecommendedOdds, tt.wantOdds)
			}
		})
	}
}

func TestMatchLegsHitProbability(t *testing.T) {
	tests := []struct {
		name        string
		edge        float64
		wantFavored float64
	}{
		{"moderate edge", 2.5, 0.60},
		{"strong edge", 5.0, 0.65},
		{"edge capped at ten", 15.0, 0.75},
		{"negative edge uses magnitude", -4.0, 0.63},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := 24.5
			props := []models.PropLine{
				prop("p1", "Jalen Ford", "BOS", "points", line, intPtr(-110), intPtr(-110)),
			}
			predictions := []models.Prediction{
				prediction("p1", "points", line+tt.edge, tt.edge, models.ConfidenceHigh),
			}

			legs := MatchLegs(props, predictions)
			if len(legs) != 1 {
				t.Fatalf("expected 1 leg, got %d", len(legs))
			}
			got := legs[0].HitProbability()
			if math.Abs(got-tt.wantFavored) > 1e-9 {
				t.Errorf("favored probability = %f, want %f", got, tt.wantFavored)
			}
			other := legs[0].OverProbability
			if legs[0].Side == models.SideOver {
				other = legs[0].UnderProbability
			}
			if math.Abs(other-(1-tt.wantFavored)) > 1e-9 {
				t.Errorf("complement probability = %f, want %f", other, 1-tt.wantFavored)
			}
		})
	}
}

func TestMatchLegsPushProbabilities(t *testing.T) {
	props := []models.PropLine{
		prop("p1", "Jalen Ford", "BOS", "points", 24.5, intPtr(-110), intPtr(-110)),
	}
	predictions := []models.Prediction{
		prediction("p1", "points", 24.5, 0, models.ConfidenceHigh),
	}

	legs := MatchLegs(props, predictions)
	if len(legs) != 1 {
		t.Fatalf("expected 1 leg, got %d", len(legs))
	}
	leg := legs[0]
	if leg.OverProbability != 0.5 || leg.UnderProbability != 0.5 {
		t.Fatalf("push leg probabilities = %f/%f, want 0.5/0.5", leg.OverProbability, leg.UnderProbability)
	}
	if leg.IsPlayable() {
		t.Fatal("push leg should not be playable")
	}
}
