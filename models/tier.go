package models

// PromotionCriteria are the thresholds a participant must meet, all of them,
// to qualify for auto-promotion out of a tier.
type PromotionCriteria struct {
	MinWins                     int     `json:"min_wins"`
	MinWinPercentage            float64 `json:"min_win_percentage"`
	MinPerformanceScore         float64 `json:"min_performance_score"`
	MinConsecutiveSeasonsInTier int     `json:"min_consecutive_seasons_in_tier"`
}

// EligibilityRequirements are engagement thresholds checked by the excluded
// registration layer; the engine carries them as tier metadata only.
type EligibilityRequirements struct {
	MinMatchesPerSeason int     `json:"min_matches_per_season"`
	MinAttendanceRate   float64 `json:"min_attendance_rate"`
}

// Tier is a static competitive level definition. Level 1 is the highest.
type Tier struct {
	ID                   string                  `json:"id"`
	Name                 string                  `json:"name"`
	Level                int                     `json:"level"`
	MinAge               int                     `json:"min_age"`
	MaxAge               int                     `json:"max_age"`
	MaxTeams             int                     `json:"max_teams"`
	PromotionSpots       int                     `json:"promotion_spots"`
	RelegationSpots      int                     `json:"relegation_spots"`
	SeasonDurationDays   int                     `json:"season_duration_days"`
	AutoPromotionEnabled bool                    `json:"auto_promotion_enabled"`
	PromotionCriteria    PromotionCriteria       `json:"promotion_criteria"`
	Eligibility          EligibilityRequirements `json:"eligibility"`
	// Reward metadata is non-functional pass-through for the rewards subsystem.
	Rewards map[string]string `json:"rewards,omitempty"`
}

// AgeBracket is a static age band used for eligibility checks and rule
// overrides (e.g. shorter quarters for youth basketball).
type AgeBracket struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	MinAge int    `json:"min_age"`
	MaxAge int    `json:"max_age"`
}
