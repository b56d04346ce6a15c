package models

// Confidence is the model's stated confidence level for a prediction.
type Confidence string

const (
	ConfidenceLow    Confidence = "Low"
	ConfidenceMedium Confidence = "Medium"
	ConfidenceHigh   Confidence = "High"
)

// Multiplier returns the grade base multiplier for the confidence level.
// Unknown levels are treated as Low.
func (c Confidence) Multiplier() float64 {
	switch c {
	case ConfidenceHigh:
		return 1.0
	case ConfidenceMedium:
		return 0.85
	default:
		return 0.70
	}
}

// Trend is an optional recent-form tag carried by a prediction.
type Trend string

const (
	TrendHot     Trend = "hot"
	TrendCold    Trend = "cold"
	TrendNeutral Trend = "neutral"
)

// Prediction represents a statistical model's opinion on one player stat,
// as delivered by the prediction feed.
type Prediction struct {
	AthleteID   string     `json:"athlete_id" validate:"required"`
	StatType    string     `json:"stat_type" validate:"required"`
	Predicted   float64    `json:"prediction"`
	Edge        float64    `json:"edge"`
	Confidence  Confidence `json:"confidence" validate:"required,oneof=Low Medium High"`
	RecentTrend Trend      `json:"recent_trend,omitempty"`
}

// Category returns the normalized stat category for the prediction.
func (p *Prediction) Category() StatType {
	return NormalizeStatType(p.StatType)
}
