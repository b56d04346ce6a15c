package models

import "strings"

// InjuryStatus values observed on the injury report feed.
const InjuryStatusOut = "Out"

// InjuryReport is one entry on a game's injury report.
type InjuryReport struct {
	AthleteID string `json:"athlete_id"`
	Status    string `json:"status"`
	Position  string `json:"position"`
	TeamID    string `json:"team_id"`
}

// IsOut reports whether the player is ruled out.
func (r *InjuryReport) IsOut() bool {
	return strings.EqualFold(strings.TrimSpace(r.Status), InjuryStatusOut)
}

// IsPrimaryPosition reports whether the listed position is one of the
// rotation positions that shifts usage when vacated (guard/forward/center).
func (r *InjuryReport) IsPrimaryPosition() bool {
	pos := strings.ToLower(strings.TrimSpace(r.Position))
	switch pos {
	case "g", "f", "c", "pg", "sg", "sf", "pf":
		return true
	}
	return strings.Contains(pos, "guard") || strings.Contains(pos, "forward") || strings.Contains(pos, "center")
}

// ContextSignals carries the per-game betting context consumed by the
// grade calculator. All fields are optional; zero values contribute
// nothing to a grade.
type ContextSignals struct {
	Spread     float64        `json:"spread"`
	OverUnder  float64        `json:"over_under"`
	HomeTeamID string         `json:"home_team_id"`
	AwayTeamID string         `json:"away_team_id"`
	Injuries   []InjuryReport `json:"injuries"`
}

// IsHomeTeam reports whether the given team is the home side.
func (c *ContextSignals) IsHomeTeam(teamID string) bool {
	return teamID != "" && teamID == c.HomeTeamID
}

// IsUnderdog reports whether the given team is the underdog. The spread
// is quoted relative to the home team: negative means home favored.
func (c *ContextSignals) IsUnderdog(teamID string) bool {
	if teamID == "" || c.Spread == 0 {
		return false
	}
	if c.Spread > 0 {
		return teamID == c.HomeTeamID
	}
	return teamID == c.AwayTeamID
}

// TeammatesOut counts players ruled out at a primary position on the
// given team, excluding the player themselves.
func (c *ContextSignals) TeammatesOut(teamID, athleteID string) int {
	if teamID == "" {
		return 0
	}
	count := 0
	for i := range c.Injuries {
		report := &c.Injuries[i]
		if report.TeamID != teamID || report.AthleteID == athleteID {
			continue
		}
		if report.IsOut() && report.IsPrimaryPosition() {
			count++
		}
	}
	return count
}
