package services

import (
	"league-ranking-system/models"
)

// baseSportRules is the static per-sport rule table.
var baseSportRules = map[string]models.SportRuleSet{
	"basketball": {
		Sport:         "basketball",
		PrimaryStat:   "points",
		SecondaryStat: "assists",
		Duration:      48,
		Scoring: map[string]interface{}{
			"points_per_basket": 2,
			"free_throw":        1,
			"three_pointer":     3,
		},
		Timing: map[string]interface{}{
			"quarters":         4,
			"quarter_duration": 12,
			"overtime":         5,
		},
		Equipment: map[string]string{
			"ball_size":   "regulation",
			"hoop_height": "10ft",
		},
	},
	"netball": {
		Sport:         "netball",
		PrimaryStat:   "goals",
		SecondaryStat: "interceptions",
		Duration:      60,
		Scoring: map[string]interface{}{
			"goal": 1,
		},
		Timing: map[string]interface{}{
			"quarters":         4,
			"quarter_duration": 15,
		},
		Equipment: map[string]string{
			"ball_size":   "size_5",
			"hoop_height": "10ft",
			"rings":       "no_backboard",
		},
	},
	"soccer": {
		Sport:         "soccer",
		PrimaryStat:   "goals",
		SecondaryStat: "assists",
		Duration:      90,
		Scoring: map[string]interface{}{
			"goal":    1,
			"penalty": 1,
		},
		Timing: map[string]interface{}{
			"halves":        2,
			"half_duration": 45,
			"overtime":      30,
		},
		Equipment: map[string]string{
			"ball_size":  "regulation",
			"field_type": "grass",
		},
	},
	"futsal": {
		Sport:         "futsal",
		PrimaryStat:   "goals",
		SecondaryStat: "assists",
		Duration:      40,
		Scoring: map[string]interface{}{
			"goal": 1,
		},
		Timing: map[string]interface{}{
			"halves":        2,
			"half_duration": 20,
		},
		Equipment: map[string]string{
			"ball_size":  "low_bounce",
			"field_type": "indoor_court",
		},
	},
	"indoor_soccer": {
		Sport:         "indoor_soccer",
		PrimaryStat:   "goals",
		SecondaryStat: "assists",
		Duration:      60,
		Timing: map[string]interface{}{
			"quarters":         4,
			"quarter_duration": 15,
		},
		Equipment: map[string]string{
			"field_type": "turf",
			"walls":      "rebound",
		},
	},
	"volleyball": {
		Sport:         "volleyball",
		PrimaryStat:   "kills",
		SecondaryStat: "blocks",
		Duration:      90,
		Scoring: map[string]interface{}{
			"rally_point": 1,
			"set_target":  25,
		},
		Timing: map[string]interface{}{
			"sets_to_win": 3,
		},
		Equipment: map[string]string{
			"net_height": "2.43m",
		},
	},
}

// similarSports groups sports whose compatible rule categories may be
// borrowed during harmonization. Base and age rules always win; only
// still-undefined categories are filled from a similar sport.
var similarSports = map[string][]string{
	"basketball":    {"netball"},
	"netball":       {"basketball"},
	"soccer":        {"futsal", "indoor_soccer"},
	"futsal":        {"soccer", "indoor_soccer"},
	"indoor_soccer": {"soccer", "futsal"},
}

// ageBracketOverrides holds per-bracket sport-specific rule overrides.
// Values mirror the youth federation templates (smaller equipment, shorter
// play).
var ageBracketOverrides = map[string]map[string]models.SportRuleSet{
	"youth_8_10": {
		"basketball": {
			Timing: map[string]interface{}{
				"quarters":         4,
				"quarter_duration": 6,
				"overtime":         3,
			},
			Equipment: map[string]string{
				"ball_size":   "youth",
				"hoop_height": "8ft",
			},
		},
		"soccer": {
			Timing: map[string]interface{}{
				"halves":        2,
				"half_duration": 20,
			},
			Equipment: map[string]string{
				"ball_size": "size_3",
			},
		},
	},
	"youth_11_13": {
		"basketball": {
			Timing: map[string]interface{}{
				"quarters":         4,
				"quarter_duration": 7,
				"overtime":         3,
			},
			Equipment: map[string]string{
				"ball_size":   "intermediate",
				"hoop_height": "9ft",
			},
		},
		"soccer": {
			Timing: map[string]interface{}{
				"halves":        2,
				"half_duration": 30,
			},
			Equipment: map[string]string{
				"ball_size": "size_4",
			},
		},
	},
	"high_school_14_18": {
		"basketball": {
			Timing: map[string]interface{}{
				"quarters":         4,
				"quarter_duration": 8,
				"overtime":         4,
			},
		},
	},
	"college_18_22": {
		"basketball": {
			Timing: map[string]interface{}{
				"halves":        2,
				"half_duration": 20,
				"overtime":      5,
			},
		},
	},
	"adult_18_plus": {},
}

// defaultRuleSet is returned whenever the sport or age group is unknown.
func defaultRuleSet() models.SportRuleSet {
	return models.SportRuleSet{
		Sport:         "default",
		PrimaryStat:   "points",
		SecondaryStat: "assists",
		Duration:      60,
		Scoring: map[string]interface{}{
			"point": 1,
		},
		Equipment: map[string]string{
			"standard": "true",
		},
	}
}

// GetFallbackLeagueRules merges a sport's base ruleset with age-bracket
// overrides and compatible-sport fallbacks. Precedence, highest first:
// age overrides, base rules, similar-sport fill-in. Equipment from similar
// sports is merged as a field-level union instead of category replacement.
func GetFallbackLeagueRules(sport, ageGroup string) models.SportRuleSet {
	base, okSport := baseSportRules[sport]
	brackets, okAge := ageBracketOverrides[ageGroup]
	if !okSport || !okAge {
		return defaultRuleSet()
	}

	harmonized := base.Clone()

	if override, ok := brackets[sport]; ok {
		if override.Scoring != nil {
			harmonized.Scoring = models.SportRuleSet{Scoring: override.Scoring}.Clone().Scoring
		}
		if override.Timing != nil {
			harmonized.Timing = models.SportRuleSet{Timing: override.Timing}.Clone().Timing
		}
		if override.Equipment != nil {
			harmonized.Equipment = models.SportRuleSet{Equipment: override.Equipment}.Clone().Equipment
		}
		if override.Duration > 0 {
			harmonized.Duration = override.Duration
		}
	}

	for _, other := range similarSports[sport] {
		sibling, ok := baseSportRules[other]
		if !ok {
			continue
		}
		if harmonized.Scoring == nil && sibling.Scoring != nil {
			harmonized.Scoring = sibling.Clone().Scoring
		}
		if harmonized.Timing == nil && sibling.Timing != nil {
			harmonized.Timing = sibling.Clone().Timing
		}
		for k, v := range sibling.Equipment {
			if harmonized.Equipment == nil {
				harmonized.Equipment = map[string]string{}
			}
			if _, exists := harmonized.Equipment[k]; !exists {
				harmonized.Equipment[k] = v
			}
		}
	}

	return harmonized
}

// GetBaseSportRule exposes the static table for read endpoints; nil on miss.
func GetBaseSportRule(sport string) *models.SportRuleSet {
	if r, ok := baseSportRules[sport]; ok {
		c := r.Clone()
		return &c
	}
	return nil
}
