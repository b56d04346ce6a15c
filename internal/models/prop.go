package models

// PropLine represents a sportsbook player prop market as delivered by the
// prop feed. Immutable once decoded.
type PropLine struct {
	AthleteID  string   `json:"player_id" validate:"required"`
	PlayerName string   `json:"player_name" validate:"required"`
	TeamID     string   `json:"team_id"`
	StatType   string   `json:"stat_type" validate:"required"`
	Line       float64  `json:"line" validate:"gte=0"`
	OverOdds   *int     `json:"over_odds"`
	UnderOdds  *int     `json:"under_odds"`
}

// IsTradable reports whether both sides of the market are priced. Lines
// with a single side are alternate lines and are excluded from matching.
func (p *PropLine) IsTradable() bool {
	return p.OverOdds != nil && *p.OverOdds != 0 && p.UnderOdds != nil && *p.UnderOdds != 0
}

// Category returns the normalized stat category for the line.
func (p *PropLine) Category() StatType {
	return NormalizeStatType(p.StatType)
}
