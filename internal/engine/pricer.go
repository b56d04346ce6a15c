package engine

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/yourusername/prop-parlay/internal/models"
	"github.com/yourusername/prop-parlay/internal/odds"
)

// SGP discount parameters. The naive independent price is discounted on
// its profit portion by a factor derived from the correlation score:
// fully correlated legs keep 65% of the profit, fully diversified 95%.
const (
	discountFactorFloor = 0.65
	discountFactorRange = 0.30
)

// discountFactor maps a clamped correlation score to the fraction of
// naive profit the book would still pay. Always within [0.65, 0.95].
func discountFactor(correlation float64) float64 {
	correlation = clampCorrelation(correlation)
	return discountFactorFloor + ((correlation-correlationScoreFloor)/(correlationScoreCeil-correlationScoreFloor))*discountFactorRange
}

// PriceParlay converts a candidate into its final priced form for the
// given stake. An empty candidate prices at even decimal 1 (stake back,
// zero profit) by contract, so callers never divide by zero.
func PriceParlay(candidate models.ParlayCandidate, stake float64) (models.PricedParlay, error) {
	priced := models.PricedParlay{
		ParlayCandidate: candidate,
		Stake:           decimal.NewFromFloat(stake).Round(2),
	}

	if len(candidate.Legs) == 0 {
		priced.DecimalOdds = 1.0
		priced.Payout = priced.Stake
		priced.Profit = decimal.Zero
		priced.HitProbability = 100.0
		return priced, nil
	}

	baseDecimal := 1.0
	hitProbability := 1.0
	for i := range candidate.Legs {
		leg := &candidate.Legs[i]
		dec, err := odds.AmericanToDecimal(leg.RecommendedOdds)
		if err != nil {
			return models.PricedParlay{}, fmt.Errorf("leg %s: %w", leg.Key(), err)
		}
		baseDecimal *= dec
		hitProbability *= leg.HitProbability()
	}

	correlation := clampCorrelation(CorrelationScore(candidate.Legs))
	factor := discountFactor(correlation)

	// Discount applies to the profit portion only, never the principal.
	adjustedDecimal := 1.0 + (baseDecimal-1.0)*factor

	american, err := odds.DecimalToAmerican(adjustedDecimal)
	if err != nil {
		return models.PricedParlay{}, fmt.Errorf("combined odds: %w", err)
	}

	payout := stake * adjustedDecimal

	priced.DecimalOdds = adjustedDecimal
	priced.AmericanOdds = american
	priced.CorrelationScore = correlation
	priced.DiscountPercent = (1.0 - factor) * 100.0
	priced.Payout = decimal.NewFromFloat(payout).Round(2)
	priced.Profit = priced.Payout.Sub(priced.Stake)
	priced.HitProbability = hitProbability * 100.0
	return priced, nil
}
