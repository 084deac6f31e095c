package services

import (
	"math"

	"league-ranking-system/models"
)

// DefaultRegion is the fallback for unknown region labels. Region lookups are
// deliberately permissive: a bad label degrades to North America defaults
// instead of failing the operation.
const DefaultRegion = "North America"

// RegionTable is the static region normalization table.
var RegionTable = map[string]models.RegionFactors{
	"North America": {
		Region:             "North America",
		StrengthMultiplier: 1.0,
		TravelPenalty:      0.0,
		TimezoneAdjustment: 0.0,
		ClimateAdjustment:  0.0,
		UTCOffset:          -5,
		Climate:            models.ClimateTemperate,
	},
	"Europe": {
		Region:             "Europe",
		StrengthMultiplier: 1.1,
		TravelPenalty:      0.05,
		TimezoneAdjustment: 0.02,
		ClimateAdjustment:  0.01,
		UTCOffset:          1,
		Climate:            models.ClimateTemperate,
	},
	"Asia": {
		Region:             "Asia",
		StrengthMultiplier: 1.05,
		TravelPenalty:      0.08,
		TimezoneAdjustment: 0.03,
		ClimateAdjustment:  0.02,
		UTCOffset:          8,
		Climate:            models.ClimateMixed,
	},
	"South America": {
		Region:             "South America",
		StrengthMultiplier: 1.15,
		TravelPenalty:      0.10,
		TimezoneAdjustment: 0.04,
		ClimateAdjustment:  0.03,
		UTCOffset:          -3,
		Climate:            models.ClimateTropical,
	},
	"Africa": {
		Region:             "Africa",
		StrengthMultiplier: 0.95,
		TravelPenalty:      0.12,
		TimezoneAdjustment: 0.05,
		ClimateAdjustment:  0.04,
		UTCOffset:          2,
		Climate:            models.ClimateTropical,
	},
	"Oceania": {
		Region:             "Oceania",
		StrengthMultiplier: 0.90,
		TravelPenalty:      0.15,
		TimezoneAdjustment: 0.06,
		ClimateAdjustment:  0.02,
		UTCOffset:          10,
		Climate:            models.ClimateMixed,
	},
}

type regionPair struct {
	a, b string
}

// regionDistances is intentionally partial: only North America↔X and
// Europe↔X pairs carry distances. Unlisted pairs resolve to 0 after the
// reverse lookup, and calling code depends on that default.
var regionDistances = map[regionPair]float64{
	{"North America", "Europe"}:        7000,
	{"North America", "Asia"}:          10000,
	{"North America", "South America"}: 8000,
	{"North America", "Africa"}:        12000,
	{"North America", "Oceania"}:       15000,
	{"Europe", "Asia"}:                 8000,
	{"Europe", "South America"}:        10000,
	{"Europe", "Africa"}:               5000,
	{"Europe", "Oceania"}:              18000,
}

// GetRegionFactors resolves a region label, falling back to the North America
// entry for anything unknown.
func GetRegionFactors(region string) models.RegionFactors {
	if f, ok := RegionTable[region]; ok {
		return f
	}
	return RegionTable[DefaultRegion]
}

// TravelDistance returns the approximate distance in kilometers between two
// regions, trying the reverse pair before defaulting to 0.
func TravelDistance(regionA, regionB string) float64 {
	if d, ok := regionDistances[regionPair{regionA, regionB}]; ok {
		return d
	}
	if d, ok := regionDistances[regionPair{regionB, regionA}]; ok {
		return d
	}
	return 0
}

// climatePenalty is 0 for the same climate class, 0.05 for the
// tropical↔temperate extremes, and 0.02 for any other mismatch.
func climatePenalty(a, b models.ClimateClass) float64 {
	if a == b {
		return 0
	}
	if (a == models.ClimateTropical && b == models.ClimateTemperate) ||
		(a == models.ClimateTemperate && b == models.ClimateTropical) {
		return 0.05
	}
	return 0.02
}

// BuildRegionStats derives the adjustment factors frozen onto a participant
// at join time. Strength of schedule comes from the team's own region, not
// the league's.
func BuildRegionStats(teamRegion, leagueRegion string) models.RegionStats {
	team := GetRegionFactors(teamRegion)
	league := GetRegionFactors(leagueRegion)

	return models.RegionStats{
		Region:             teamRegion,
		StrengthOfSchedule: team.StrengthMultiplier,
		TravelDistance:     TravelDistance(team.Region, league.Region),
		TimeZoneAdjustment: math.Abs(float64(team.UTCOffset-league.UTCOffset)) * 0.01,
		ClimateAdjustment:  climatePenalty(team.Climate, league.Climate),
	}
}
