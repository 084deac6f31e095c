package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetRegionFactorsFallsBackToNorthAmerica(t *testing.T) {
	unknown := GetRegionFactors("Atlantis")
	assert.Equal(t, "North America", unknown.Region)
	assert.Equal(t, 1.0, unknown.StrengthMultiplier)
}

func TestTravelDistanceLookups(t *testing.T) {
	tests := []struct {
		name    string
		regionA string
		regionB string
		want    float64
	}{
		{"forward pair", "North America", "Europe", 7000},
		{"reverse pair", "Europe", "North America", 7000},
		{"europe to oceania", "Europe", "Oceania", 18000},
		{"unlisted pair defaults to zero", "Asia", "Oceania", 0},
		{"same region", "Asia", "Asia", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TravelDistance(tt.regionA, tt.regionB))
		})
	}
}

func TestClimatePenalty(t *testing.T) {
	assert.Equal(t, 0.0, climatePenalty("temperate", "temperate"))
	assert.Equal(t, 0.05, climatePenalty("tropical", "temperate"))
	assert.Equal(t, 0.05, climatePenalty("temperate", "tropical"))
	assert.Equal(t, 0.02, climatePenalty("mixed", "temperate"))
	assert.Equal(t, 0.02, climatePenalty("tropical", "mixed"))
}

func TestBuildRegionStats(t *testing.T) {
	stats := BuildRegionStats("South America", "North America")

	assert.Equal(t, "South America", stats.Region)
	assert.Equal(t, 1.15, stats.StrengthOfSchedule, "strength comes from the team region")
	assert.Equal(t, 8000.0, stats.TravelDistance)
	assert.InDelta(t, 0.02, stats.TimeZoneAdjustment, 1e-9, "|-3 - -5| * 0.01")
	assert.Equal(t, 0.05, stats.ClimateAdjustment, "tropical vs temperate")
}

func TestBuildRegionStatsUnknownTeamRegion(t *testing.T) {
	stats := BuildRegionStats("Atlantis", "North America")

	// unknown labels degrade to North America factors
	assert.Equal(t, "Atlantis", stats.Region)
	assert.Equal(t, 1.0, stats.StrengthOfSchedule)
	assert.Equal(t, 0.0, stats.TravelDistance)
	assert.Equal(t, 0.0, stats.TimeZoneAdjustment)
	assert.Equal(t, 0.0, stats.ClimateAdjustment)
}
