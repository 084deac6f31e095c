package services

import (
	"league-ranking-system/models"
)

// LeagueTiers is the static tier catalog, loaded once at process start.
// Level 1 is the top of the ladder; only professional has promotion disabled.
var LeagueTiers = map[string]models.Tier{
	"professional": {
		ID:                   "professional",
		Name:                 "Professional",
		Level:                1,
		MinAge:               18,
		MaxAge:               99,
		MaxTeams:             16,
		PromotionSpots:       0,
		RelegationSpots:      3,
		SeasonDurationDays:   120,
		AutoPromotionEnabled: false,
		Eligibility: models.EligibilityRequirements{
			MinMatchesPerSeason: 14,
			MinAttendanceRate:   0.90,
		},
		Rewards: map[string]string{
			"champion": "pro_championship_trophy",
			"top_four": "playoff_qualification",
		},
	},
	"varsity": {
		ID:                   "varsity",
		Name:                 "Varsity",
		Level:                2,
		MinAge:               14,
		MaxAge:               18,
		MaxTeams:             20,
		PromotionSpots:       3,
		RelegationSpots:      4,
		SeasonDurationDays:   90,
		AutoPromotionEnabled: true,
		PromotionCriteria: models.PromotionCriteria{
			MinWins:                     12,
			MinWinPercentage:            0.75,
			MinPerformanceScore:         85,
			MinConsecutiveSeasonsInTier: 2,
		},
		Eligibility: models.EligibilityRequirements{
			MinMatchesPerSeason: 10,
			MinAttendanceRate:   0.80,
		},
		Rewards: map[string]string{
			"champion": "varsity_state_banner",
		},
	},
	"club": {
		ID:                   "club",
		Name:                 "Club",
		Level:                3,
		MinAge:               13,
		MaxAge:               99,
		MaxTeams:             24,
		PromotionSpots:       4,
		RelegationSpots:      5,
		SeasonDurationDays:   75,
		AutoPromotionEnabled: true,
		PromotionCriteria: models.PromotionCriteria{
			MinWins:                     10,
			MinWinPercentage:            0.70,
			MinPerformanceScore:         80,
			MinConsecutiveSeasonsInTier: 2,
		},
		Eligibility: models.EligibilityRequirements{
			MinMatchesPerSeason: 8,
			MinAttendanceRate:   0.70,
		},
		Rewards: map[string]string{
			"champion": "club_cup",
		},
	},
	"amateur": {
		ID:                   "amateur",
		Name:                 "Amateur",
		Level:                4,
		MinAge:               8,
		MaxAge:               99,
		MaxTeams:             32,
		PromotionSpots:       5,
		RelegationSpots:      0,
		SeasonDurationDays:   60,
		AutoPromotionEnabled: true,
		PromotionCriteria: models.PromotionCriteria{
			MinWins:                     8,
			MinWinPercentage:            0.65,
			MinPerformanceScore:         75,
			MinConsecutiveSeasonsInTier: 1,
		},
		Eligibility: models.EligibilityRequirements{
			MinMatchesPerSeason: 6,
			MinAttendanceRate:   0.50,
		},
		Rewards: map[string]string{
			"champion": "amateur_medal",
		},
	},
}

// AgeBrackets mirrors the brackets used by the federation templates.
var AgeBrackets = map[string]models.AgeBracket{
	"youth_8_10":        {ID: "youth_8_10", Name: "Youth 8-10", MinAge: 8, MaxAge: 10},
	"youth_11_13":       {ID: "youth_11_13", Name: "Youth 11-13", MinAge: 11, MaxAge: 13},
	"high_school_14_18": {ID: "high_school_14_18", Name: "High School 14-18", MinAge: 14, MaxAge: 18},
	"college_18_22":     {ID: "college_18_22", Name: "College 18-22", MinAge: 18, MaxAge: 22},
	"adult_18_plus":     {ID: "adult_18_plus", Name: "Adult 18+", MinAge: 18, MaxAge: 99},
}

// GetTier returns the tier definition, or nil when the id is unknown.
func GetTier(tierID string) *models.Tier {
	if t, ok := LeagueTiers[tierID]; ok {
		return &t
	}
	return nil
}

// GetAgeBracket returns the bracket definition, or nil when unknown.
func GetAgeBracket(bracketID string) *models.AgeBracket {
	if b, ok := AgeBrackets[bracketID]; ok {
		return &b
	}
	return nil
}

// CheckAgeEligibility reports whether an age falls inside a bracket.
// Unknown brackets are never eligible.
func CheckAgeEligibility(age int, bracketID string) bool {
	b, ok := AgeBrackets[bracketID]
	if !ok {
		return false
	}
	return age >= b.MinAge && age <= b.MaxAge
}
