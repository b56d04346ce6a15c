package engine

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/prop-parlay/internal/metrics"
	"github.com/yourusername/prop-parlay/internal/models"
)

// SlateInput is everything the engine needs for one game. All data must
// be fully fetched by the calling layer before invocation; the engine
// itself never blocks on I/O.
type SlateInput struct {
	GameID      string
	Props       []models.PropLine
	Predictions []models.Prediction
	Context     models.ContextSignals
}

// SlateResult is the terminal output for one game: every graded leg for
// tabular display plus the priced parlay variants.
type SlateResult struct {
	GameID      string                `json:"game_id"`
	GeneratedAt time.Time             `json:"generated_at"`
	Legs        []models.Leg          `json:"legs"`
	Parlays     []models.PricedParlay `json:"parlays"`
}

// Engine runs the full grading and pricing pipeline. Stateless per
// invocation; safe for concurrent use.
type Engine struct {
	logger *logrus.Logger
}

// New creates an engine.
func New(logger *logrus.Logger) *Engine {
	return &Engine{logger: logger}
}

// Run matches props to predictions, grades every leg, assembles parlay
// variants and prices each one for the given stake.
func (e *Engine) Run(input SlateInput, stake float64) (*SlateResult, error) {
	legs := MatchLegs(input.Props, input.Predictions)
	for i := range legs {
		legs[i] = GradeLeg(legs[i], input.Context)
	}

	metrics.LegsMatchedTotal.Add(float64(len(legs)))
	metrics.PropsDroppedTotal.Add(float64(len(input.Props) - len(legs)))

	candidates := BuildParlays(legs)
	parlays := make([]models.PricedParlay, 0, len(candidates))
	for _, candidate := range candidates {
		priced, err := PriceParlay(candidate, stake)
		if err != nil {
			return nil, fmt.Errorf("price parlay %q: %w", candidate.Name, err)
		}
		parlays = append(parlays, priced)
	}

	metrics.ParlaysBuiltTotal.Add(float64(len(parlays)))
	metrics.SlatesGradedTotal.Inc()

	e.logger.WithFields(logrus.Fields{
		"game_id": input.GameID,
		"props":   len(input.Props),
		"legs":    len(legs),
		"parlays": len(parlays),
	}).Info("Slate graded")

	return &SlateResult{
		GameID:      input.GameID,
		GeneratedAt: time.Now().UTC(),
		Legs:        legs,
		Parlays:     parlays,
	}, nil
}
