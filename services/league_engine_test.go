package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"league-ranking-system/storage"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestEngine(t *testing.T) *LeagueEngine {
	t.Helper()
	return NewLeagueEngine(storage.NewMemorySeasonRepository(), testLogger())
}

func TestCreateSeasonUnknownTierFails(t *testing.T) {
	engine := newTestEngine(t)

	_, err := engine.CreateSeason(context.Background(), "legendary", "Legendary League", "", "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownTier))
}

func TestCreateSeasonDefaults(t *testing.T) {
	engine := newTestEngine(t)
	ctx := context.Background()

	id, err := engine.CreateSeason(ctx, "amateur", "Spring Cup", "", "")
	require.NoError(t, err)

	season := engine.GetLeagueInfo(ctx, id)
	require.NotNil(t, season)
	assert.Equal(t, "North America", season.Region)
	assert.Equal(t, "global", season.FederationID)
	assert.Equal(t, "upcoming", season.Status)
	assert.Empty(t, season.Participants)
	assert.True(t, season.EndDate.After(season.StartDate))
}

func TestJoinSeasonFailSoft(t *testing.T) {
	engine := newTestEngine(t)
	ctx := context.Background()

	id, err := engine.CreateSeason(ctx, "professional", "Pro League", "", "")
	require.NoError(t, err)

	assert.False(t, engine.JoinSeason(ctx, "missing-season", "team-a", "cap", "Team A", "Cap", ""),
		"unknown season must reject, not panic")

	assert.True(t, engine.JoinSeason(ctx, id, "team-a", "cap-a", "Team A", "Captain A", ""))
	assert.False(t, engine.JoinSeason(ctx, id, "team-a", "cap-a", "Team A", "Captain A", ""),
		"duplicate team id must be rejected")

	season := engine.GetLeagueInfo(ctx, id)
	require.NotNil(t, season)
	assert.Len(t, season.Participants, 1, "rejected join must not change the roster")

	// fill to professional capacity (16) and verify the overflow join fails
	for i := 1; i < 16; i++ {
		require.True(t, engine.JoinSeason(ctx, id, fmt.Sprintf("team-%d", i), "cap", "Team", "Cap", ""))
	}
	assert.False(t, engine.JoinSeason(ctx, id, "team-overflow", "cap", "Team", "Cap", ""))

	season = engine.GetLeagueInfo(ctx, id)
	assert.Len(t, season.Participants, 16)
}

func TestJoinSeasonFreezesRegionStats(t *testing.T) {
	engine := newTestEngine(t)
	ctx := context.Background()

	id, err := engine.CreateSeason(ctx, "club", "Euro Club", "Europe", "")
	require.NoError(t, err)
	require.True(t, engine.JoinSeason(ctx, id, "team-asia", "cap", "Asia Team", "Cap", "Asia"))

	season := engine.GetLeagueInfo(ctx, id)
	p := season.FindParticipant("team-asia")
	require.NotNil(t, p)
	assert.Equal(t, 1.05, p.RegionStats.StrengthOfSchedule, "strength comes from the team region")
	assert.Equal(t, 8000.0, p.RegionStats.TravelDistance, "Europe-Asia distance via reverse lookup")
	assert.InDelta(t, 0.07, p.RegionStats.TimeZoneAdjustment, 1e-9)
	assert.Equal(t, 0.02, p.RegionStats.ClimateAdjustment, "temperate vs mixed")
	assert.Equal(t, 1, p.ConsecutiveSeasonsInTier)
}

func TestRecordMatchResultScoring(t *testing.T) {
	engine := newTestEngine(t)
	ctx := context.Background()

	id, err := engine.CreateSeason(ctx, "amateur", "Match Test", "", "")
	require.NoError(t, err)
	require.True(t, engine.JoinSeason(ctx, id, "team-a", "cap-a", "Team A", "Cap A", ""))
	require.True(t, engine.JoinSeason(ctx, id, "team-b", "cap-b", "Team B", "Cap B", ""))

	engine.RecordMatchResult(ctx, id, "team-a", "team-b", 3, 1)

	season := engine.GetLeagueInfo(ctx, id)
	teamA := season.FindParticipant("team-a")
	teamB := season.FindParticipant("team-b")
	require.NotNil(t, teamA)
	require.NotNil(t, teamB)

	assert.Equal(t, 1, teamA.Wins)
	assert.Equal(t, 3, teamA.TotalPoints)
	assert.Equal(t, 1, teamB.Losses)
	assert.Equal(t, 0, teamB.TotalPoints)
	assert.Equal(t, 1, teamA.MatchesPlayed)
	assert.Equal(t, 1, teamB.MatchesPlayed)

	// winner: base 100 + 10 margin bonus, capped at 100; loser: 50 + 10
	assert.Equal(t, 100.0, teamA.PerformanceScore)
	assert.Equal(t, 60.0, teamB.PerformanceScore)

	assert.Len(t, season.Standings, 2, "standings recompute in the same call")
	assert.Equal(t, "team-a", season.Standings[0].TeamID)
}

func TestRecordMatchResultTie(t *testing.T) {
	engine := newTestEngine(t)
	ctx := context.Background()

	id, err := engine.CreateSeason(ctx, "amateur", "Tie Test", "", "")
	require.NoError(t, err)
	require.True(t, engine.JoinSeason(ctx, id, "team-a", "cap", "Team A", "Cap", ""))
	require.True(t, engine.JoinSeason(ctx, id, "team-b", "cap", "Team B", "Cap", ""))

	engine.RecordMatchResult(ctx, id, "team-a", "team-b", 2, 2)

	season := engine.GetLeagueInfo(ctx, id)
	for _, teamID := range []string{"team-a", "team-b"} {
		p := season.FindParticipant(teamID)
		require.NotNil(t, p)
		assert.Equal(t, 1, p.Ties)
		assert.Equal(t, 1, p.TotalPoints)
		assert.Equal(t, 50.0, p.PerformanceScore, "tie scores base 50 with zero margin")
	}
}

func TestPerformanceScoreOverwritesNotAverages(t *testing.T) {
	engine := newTestEngine(t)
	ctx := context.Background()

	id, err := engine.CreateSeason(ctx, "amateur", "Overwrite Test", "", "")
	require.NoError(t, err)
	require.True(t, engine.JoinSeason(ctx, id, "team-a", "cap", "Team A", "Cap", ""))
	require.True(t, engine.JoinSeason(ctx, id, "team-b", "cap", "Team B", "Cap", ""))

	engine.RecordMatchResult(ctx, id, "team-a", "team-b", 10, 0)
	engine.RecordMatchResult(ctx, id, "team-a", "team-b", 0, 1)

	season := engine.GetLeagueInfo(ctx, id)
	teamA := season.FindParticipant("team-a")
	require.NotNil(t, teamA)

	// 55 = losing base 50 + margin bonus 5; a running average of the blowout
	// win and the narrow loss would land far higher
	assert.Equal(t, 55.0, teamA.PerformanceScore)
	assert.Equal(t, 1, teamA.Wins)
	assert.Equal(t, 1, teamA.Losses)
	assert.Equal(t, 2, teamA.MatchesPlayed)
}

func TestRecordMatchResultSilentNoOp(t *testing.T) {
	engine := newTestEngine(t)
	ctx := context.Background()

	id, err := engine.CreateSeason(ctx, "amateur", "NoOp Test", "", "")
	require.NoError(t, err)
	require.True(t, engine.JoinSeason(ctx, id, "team-a", "cap", "Team A", "Cap", ""))

	// unknown season and unknown opponent: both swallowed
	engine.RecordMatchResult(ctx, "missing-season", "team-a", "team-b", 1, 0)
	engine.RecordMatchResult(ctx, id, "team-a", "team-ghost", 1, 0)

	season := engine.GetLeagueInfo(ctx, id)
	teamA := season.FindParticipant("team-a")
	require.NotNil(t, teamA)
	assert.Equal(t, 0, teamA.MatchesPlayed)
	assert.Equal(t, 0.0, teamA.PerformanceScore)
}

func TestGetLeagueStandingsMisses(t *testing.T) {
	engine := newTestEngine(t)
	ctx := context.Background()

	assert.Nil(t, engine.GetLeagueStandings(ctx, "missing"))
	assert.Nil(t, engine.GetLeagueInfo(ctx, "missing"))
}

func TestGetAvailableLeaguesFiltersByTier(t *testing.T) {
	engine := newTestEngine(t)
	ctx := context.Background()

	_, err := engine.CreateSeason(ctx, "amateur", "Amateur One", "", "")
	require.NoError(t, err)
	_, err = engine.CreateSeason(ctx, "club", "Club One", "", "")
	require.NoError(t, err)

	assert.Len(t, engine.GetAvailableLeagues(ctx, ""), 2)
	assert.Len(t, engine.GetAvailableLeagues(ctx, "club"), 1)
	assert.Empty(t, engine.GetAvailableLeagues(ctx, "varsity"))
}

func TestSetSeasonStatus(t *testing.T) {
	engine := newTestEngine(t)
	ctx := context.Background()

	id, err := engine.CreateSeason(ctx, "amateur", "Status Test", "", "")
	require.NoError(t, err)

	require.NoError(t, engine.SetSeasonStatus(ctx, id, "active"))
	assert.Equal(t, "active", engine.GetLeagueInfo(ctx, id).Status)

	assert.ErrorIs(t, engine.SetSeasonStatus(ctx, "missing", "active"), ErrSeasonNotFound)
}
