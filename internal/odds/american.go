// Package odds provides conversions between American odds, decimal odds
// and implied probability.
package odds

import (
	"fmt"
	"math"

	"github.com/yourusername/prop-parlay/internal/models"
)

// AmericanToDecimal converts American odds to decimal odds.
// +150 → 2.50, -150 → 1.67. Zero odds are a data-integrity fault.
func AmericanToDecimal(american int) (float64, error) {
	if american == 0 {
		return 0, fmt.Errorf("american to decimal: %w", models.ErrInvalidOdds)
	}

	if american > 0 {
		return float64(american)/100.0 + 1.0, nil
	}

	return 100.0/float64(-american) + 1.0, nil
}

// DecimalToAmerican converts decimal odds to American odds.
// 2.50 → +150, 1.67 → -150. Round-trips AmericanToDecimal within one
// unit of integer rounding.
func DecimalToAmerican(dec float64) (int, error) {
	if dec <= 1.0 {
		return 0, fmt.Errorf("decimal to american: %w", models.ErrInvalidDecimal)
	}

	if dec >= 2.0 {
		return int(math.Round((dec - 1.0) * 100.0)), nil
	}

	return int(math.Round(-100.0 / (dec - 1.0))), nil
}

// ImpliedProbability converts American odds to the probability the price
// implies. -110 → 0.5238, +150 → 0.40.
func ImpliedProbability(american int) (float64, error) {
	dec, err := AmericanToDecimal(american)
	if err != nil {
		return 0, err
	}
	return 1.0 / dec, nil
}
