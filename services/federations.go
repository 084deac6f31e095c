package services

import (
	"fmt"
	"reflect"
	"time"

	"league-ranking-system/models"
)

// FederationTemplates is the static catalog of governing bodies and their
// per-sport rule overrides.
var FederationTemplates = map[string]models.Federation{
	"global": {
		ID:     "global",
		Name:   "Global Open Federation",
		Type:   "international",
		Region: "North America",
		Sports: []string{"basketball", "soccer", "volleyball", "netball", "futsal", "indoor_soccer"},
		AgeBrackets: []string{
			"youth_8_10", "youth_11_13", "high_school_14_18", "college_18_22", "adult_18_plus",
		},
	},
	"uil": {
		ID:          "uil",
		Name:        "University Interscholastic League",
		Type:        "high_school",
		Region:      "North America",
		Sports:      []string{"basketball", "soccer", "volleyball"},
		AgeBrackets: []string{"high_school_14_18"},
		SportRules: map[string]models.RulePayload{
			"basketball": {
				"timing": {
					"quarters":         4,
					"quarter_duration": 8,
					"overtime":         4,
				},
				"field_dimensions": {
					"court_length": 84,
					"court_width":  50,
				},
			},
		},
	},
	"ncaa": {
		ID:          "ncaa",
		Name:        "National Collegiate Athletic Association",
		Type:        "college",
		Region:      "North America",
		Sports:      []string{"basketball", "soccer", "volleyball"},
		AgeBrackets: []string{"college_18_22"},
		SportRules: map[string]models.RulePayload{
			"basketball": {
				"timing": {
					"halves":        2,
					"half_duration": 20,
					"overtime":      5,
				},
				"field_dimensions": {
					"court_length": 94,
					"court_width":  50,
				},
			},
		},
	},
	"aau": {
		ID:          "aau",
		Name:        "Amateur Athletic Union",
		Type:        "youth",
		Region:      "North America",
		Sports:      []string{"basketball", "soccer", "volleyball"},
		AgeBrackets: []string{"youth_8_10", "youth_11_13", "high_school_14_18"},
		SportRules: map[string]models.RulePayload{
			"basketball": {
				"timing": {
					"quarters":         4,
					"quarter_duration": 6,
					"overtime":         3,
				},
				"equipment": {
					"ball_size":   "youth",
					"hoop_height": "8ft",
				},
				"field_dimensions": {
					"court_length": 74,
					"court_width":  42,
				},
			},
		},
	},
	"fifa": {
		ID:          "fifa",
		Name:        "Federation Internationale de Football Association",
		Type:        "international",
		Region:      "Europe",
		Sports:      []string{"soccer", "futsal"},
		AgeBrackets: []string{"youth_8_10", "youth_11_13", "high_school_14_18", "college_18_22", "adult_18_plus"},
		SportRules: map[string]models.RulePayload{
			"soccer": {
				"timing": {
					"halves":        2,
					"half_duration": 45,
					"overtime":      30,
				},
				"field_dimensions": {
					"field_length": 110,
					"field_width":  70,
				},
			},
		},
	},
	"nba": {
		ID:          "nba",
		Name:        "National Basketball Association",
		Type:        "professional",
		Region:      "North America",
		Sports:      []string{"basketball"},
		AgeBrackets: []string{"adult_18_plus"},
		SportRules: map[string]models.RulePayload{
			"basketball": {
				"timing": {
					"quarters":         4,
					"quarter_duration": 12,
					"overtime":         5,
				},
				"field_dimensions": {
					"court_length": 94,
					"court_width":  50,
				},
			},
		},
	},
}

// conflictRuleTypes are the categories compared during detection, in a fixed
// order so conflict ids are stable.
var conflictRuleTypes = []string{"scoring", "timing", "equipment", "field_dimensions", "player_count"}

// federationEffectiveRules layers a federation's overrides over the base
// sport rules, producing one payload keyed by category. Returns nil when the
// sport has no base rules.
func federationEffectiveRules(federationID, sport string) models.RulePayload {
	base := GetBaseSportRule(sport)
	if base == nil {
		return nil
	}

	payload := models.RulePayload{}
	if base.Scoring != nil {
		payload["scoring"] = base.Scoring
	}
	if base.Timing != nil {
		payload["timing"] = base.Timing
	}
	if base.Equipment != nil {
		eq := make(map[string]interface{}, len(base.Equipment))
		for k, v := range base.Equipment {
			eq[k] = v
		}
		payload["equipment"] = eq
	}

	fed, ok := FederationTemplates[federationID]
	if !ok {
		return payload
	}
	for category, fields := range fed.SportRules[sport] {
		merged := make(map[string]interface{}, len(fields))
		for k, v := range payload[category] {
			merged[k] = v
		}
		for k, v := range fields {
			merged[k] = v
		}
		payload[category] = merged
	}
	return payload
}

// assessConflictSeverity classifies a rule mismatch the way the original
// federation review board did: safety-adjacent categories are critical,
// scoring/timing high, roster mechanics medium, everything else low.
func assessConflictSeverity(ruleType string) string {
	switch ruleType {
	case "equipment", "field_dimensions", "player_count":
		return models.SeverityCritical
	case "scoring", "timing":
		return models.SeverityHigh
	case "substitutions", "timeouts":
		return models.SeverityMedium
	default:
		return models.SeverityLow
	}
}

// DetectRuleConflicts compares two federations' effective rulesets for a
// sport and returns one pending conflict per mismatched category.
func DetectRuleConflicts(fedA, fedB, sport string) []models.RuleConflict {
	rulesA := federationEffectiveRules(fedA, sport)
	rulesB := federationEffectiveRules(fedB, sport)
	if rulesA == nil || rulesB == nil {
		return nil
	}

	var conflicts []models.RuleConflict
	now := time.Now()
	for _, ruleType := range conflictRuleTypes {
		a, okA := rulesA[ruleType]
		b, okB := rulesB[ruleType]
		if !okA || !okB || reflect.DeepEqual(a, b) {
			continue
		}
		conflicts = append(conflicts, models.RuleConflict{
			ID:           fmt.Sprintf("conflict_%s_%s_%s_%s", fedA, fedB, sport, ruleType),
			FederationA:  fedA,
			FederationB:  fedB,
			Sport:        sport,
			RuleType:     ruleType,
			Description:  fmt.Sprintf("Different %s rules between %s and %s", ruleType, fedA, fedB),
			Severity:     assessConflictSeverity(ruleType),
			Status:       models.ConflictPending,
			RuleAPayload: a,
			RuleBPayload: b,
			CreatedAt:    now,
		})
	}
	return conflicts
}
