package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RiskLevel labels the volatility of a parlay variant.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// ConfidenceLabel summarizes overall conviction in a parlay variant.
type ConfidenceLabel string

const (
	ConfidenceLabelLow        ConfidenceLabel = "low"
	ConfidenceLabelMedium     ConfidenceLabel = "medium"
	ConfidenceLabelMediumHigh ConfidenceLabel = "medium-high"
	ConfidenceLabelHigh       ConfidenceLabel = "high"
)

// ParlayCandidate is a duplicate-free combination of legs assembled by
// the builder. Constructed per request and consumed immediately by the
// pricer; never persisted.
type ParlayCandidate struct {
	ID         uuid.UUID       `json:"id"`
	Name       string          `json:"name"`
	Legs       []Leg           `json:"legs"`
	Risk       RiskLevel       `json:"risk"`
	Confidence ConfidenceLabel `json:"confidence"`
	Reasoning  string          `json:"reasoning"`
}

// PricedParlay is the terminal output: a candidate plus its combined
// price after the same-game correlation discount.
type PricedParlay struct {
	ParlayCandidate

	DecimalOdds      float64         `json:"decimal_odds"`
	AmericanOdds     int             `json:"american_odds"`
	CorrelationScore float64         `json:"correlation_score"`
	DiscountPercent  float64         `json:"discount_percent"`
	Stake            decimal.Decimal `json:"stake"`
	Payout           decimal.Decimal `json:"payout"`
	Profit           decimal.Decimal `json:"profit"`
	HitProbability   float64         `json:"hit_probability_percent"`
}
