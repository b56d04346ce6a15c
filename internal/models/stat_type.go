package models

import "strings"

// StatType is the normalized category of a player prop market.
type StatType string

// Canonical stat categories. Combined markets keep their component
// categories visible in the value so pace logic can classify them.
const (
	StatPoints                StatType = "points"
	StatRebounds              StatType = "rebounds"
	StatAssists               StatType = "assists"
	StatSteals                StatType = "steals"
	StatBlocks                StatType = "blocks"
	StatPointsRebounds        StatType = "points+rebounds"
	StatPointsAssists         StatType = "points+assists"
	StatReboundsAssists       StatType = "rebounds+assists"
	StatPointsReboundsAssists StatType = "points+rebounds+assists"
	StatUnknown               StatType = "unknown"
)

// statTokens maps raw feed vocabulary to canonical category tokens.
var statTokens = map[string]string{
	"points":   "points",
	"pts":      "points",
	"rebounds": "rebounds",
	"reb":      "rebounds",
	"rebs":     "rebounds",
	"assists":  "assists",
	"ast":      "assists",
	"asts":     "assists",
	"steals":   "steals",
	"stl":      "steals",
	"blocks":   "blocks",
	"blk":      "blocks",
	"pra":      "points+rebounds+assists",
}

// NormalizeStatType maps a raw sportsbook or model stat label to a
// canonical StatType. Labels like "Total Points" and "points" normalize
// to the same category; combined markets ("Pts+Rebs+Asts") resolve to
// their combined type.
func NormalizeStatType(raw string) StatType {
	lowered := strings.ToLower(strings.TrimSpace(raw))
	if lowered == "" {
		return StatUnknown
	}

	found := make(map[string]bool)
	for _, token := range splitStatLabel(lowered) {
		if canonical, ok := statTokens[token]; ok {
			if canonical == "points+rebounds+assists" {
				return StatPointsReboundsAssists
			}
			found[canonical] = true
		}
	}

	has := func(c string) bool { return found[c] }
	switch {
	case has("points") && has("rebounds") && has("assists"):
		return StatPointsReboundsAssists
	case has("points") && has("rebounds"):
		return StatPointsRebounds
	case has("points") && has("assists"):
		return StatPointsAssists
	case has("rebounds") && has("assists"):
		return StatReboundsAssists
	case has("points"):
		return StatPoints
	case has("rebounds"):
		return StatRebounds
	case has("assists"):
		return StatAssists
	case has("steals"):
		return StatSteals
	case has("blocks"):
		return StatBlocks
	default:
		return StatUnknown
	}
}

func splitStatLabel(label string) []string {
	return strings.FieldsFunc(label, func(r rune) bool {
		switch r {
		case ' ', '+', '-', '_', '/', ',', '&':
			return true
		}
		return false
	})
}

// StatTypesMatch reports whether two raw stat labels describe the same market,
// using exact or containment matching on normalized categories.
func StatTypesMatch(a, b string) bool {
	na := NormalizeStatType(a)
	nb := NormalizeStatType(b)
	if na == StatUnknown || nb == StatUnknown {
		return false
	}
	return na == nb
}

// IsScoringType reports whether the category involves points or assists.
// These markets benefit from high-pace games.
func (s StatType) IsScoringType() bool {
	return strings.Contains(string(s), "points") || strings.Contains(string(s), "assists")
}

// IsDefensiveCountType reports whether the category is a pure rebound or
// block market, which low-pace games favor.
func (s StatType) IsDefensiveCountType() bool {
	return s == StatRebounds || s == StatBlocks
}

// Valid reports whether the stat type is a recognized category.
func (s StatType) Valid() bool {
	return s != StatUnknown && s != ""
}
