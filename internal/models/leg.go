package models

// Side is the recommended side of a prop market.
type Side string

const (
	SideOver  Side = "over"
	SideUnder Side = "under"
	SidePush  Side = "push"
)

// Leg is a matched and graded prop pick: one sportsbook line paired with
// the model's prediction for the same player and stat. Built once by the
// matcher and grade calculator, never mutated afterward.
type Leg struct {
	AthleteID   string   `json:"athlete_id"`
	PlayerName  string   `json:"player_name"`
	TeamID      string   `json:"team_id"`
	StatType    StatType `json:"stat_type"`
	RawStatType string   `json:"raw_stat_type"`
	Line        float64  `json:"line"`
	OverOdds    int      `json:"over_odds"`
	UnderOdds   int      `json:"under_odds"`

	Predicted  float64    `json:"predicted"`
	Edge       float64    `json:"edge"`
	Confidence Confidence `json:"confidence"`
	Trend      Trend      `json:"trend,omitempty"`

	Side            Side    `json:"recommended_side"`
	RecommendedOdds int     `json:"recommended_odds"`
	OverProbability  float64 `json:"over_probability"`
	UnderProbability float64 `json:"under_probability"`

	Grade        float64  `json:"grade"`
	GradeFactors []string `json:"grade_factors"`
	IsHome       bool     `json:"is_home"`
}

// Key identifies the market a leg belongs to. Parlay combinations never
// carry two legs with the same key.
func (l *Leg) Key() string {
	return l.AthleteID + "|" + string(l.StatType)
}

// HitProbability returns the estimated probability of the recommended
// side landing. Push legs have no recommended side and report 0.5.
func (l *Leg) HitProbability() float64 {
	switch l.Side {
	case SideOver:
		return l.OverProbability
	case SideUnder:
		return l.UnderProbability
	default:
		return 0.5
	}
}

// IsPlayable reports whether the leg carries an exploitable edge.
func (l *Leg) IsPlayable() bool {
	return l.Side == SideOver || l.Side == SideUnder
}
