package models

// ClimateClass buckets regions for the climate adjustment.
type ClimateClass string

const (
	ClimateTemperate ClimateClass = "temperate"
	ClimateMixed     ClimateClass = "mixed"
	ClimateTropical  ClimateClass = "tropical"
)

// RegionFactors is one row of the static region normalization table.
type RegionFactors struct {
	Region             string       `json:"region"`
	StrengthMultiplier float64      `json:"strength_multiplier"`
	TravelPenalty      float64      `json:"travel_penalty"`
	TimezoneAdjustment float64      `json:"timezone_adjustment"`
	ClimateAdjustment  float64      `json:"climate_adjustment"`
	UTCOffset          int          `json:"utc_offset"`
	Climate            ClimateClass `json:"climate"`
}

// RegionStats are the adjustment factors frozen onto a participant when it
// joins a season. They are derived once from the team region vs the league
// region and never recomputed for that season.
type RegionStats struct {
	Region             string  `json:"region"`
	StrengthOfSchedule float64 `json:"strength_of_schedule"`
	RegionalRanking    int     `json:"regional_ranking"`
	TravelDistance     float64 `json:"travel_distance"`
	TimeZoneAdjustment float64 `json:"time_zone_adjustment"`
	ClimateAdjustment  float64 `json:"climate_adjustment"`
}
