package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"league-ranking-system/models"
	"league-ranking-system/storage"
)

func seasonWithParticipants(t *testing.T, repo storage.SeasonRepository, tierID string, participants []models.Participant) string {
	t.Helper()
	season := &models.Season{
		ID:           "season-" + tierID,
		TierID:       tierID,
		Name:         "Test Season",
		Region:       "North America",
		Status:       models.SeasonActive,
		Participants: participants,
	}
	require.NoError(t, repo.Create(context.Background(), season))
	return season.ID
}

func TestProcessPromotionRelegationAmateur(t *testing.T) {
	repo := storage.NewMemorySeasonRepository()
	engine := NewLeagueEngine(repo, testLogger())

	participants := []models.Participant{
		neutralParticipant("team-1", 90),
		neutralParticipant("team-2", 80),
		neutralParticipant("team-3", 70),
		neutralParticipant("team-4", 60),
		neutralParticipant("team-5", 50),
		neutralParticipant("team-6", 40),
	}
	id := seasonWithParticipants(t, repo, "amateur", participants)

	result, err := engine.ProcessPromotionRelegation(context.Background(), id)
	require.NoError(t, err)

	assert.Equal(t, []string{"team-1", "team-2", "team-3", "team-4", "team-5"}, result.Promotions)
	assert.Empty(t, result.Relegations, "amateur has no relegation spots")

	// auto-promotions never overlap rank promotions or exceed slot headroom
	tier := GetTier("amateur")
	for _, auto := range result.AutoPromotions {
		assert.NotContains(t, result.Promotions, auto)
	}
	assert.LessOrEqual(t, len(result.Promotions)+len(result.AutoPromotions), tier.PromotionSpots)
}

func TestProcessPromotionRelegationWritesBack(t *testing.T) {
	repo := storage.NewMemorySeasonRepository()
	engine := NewLeagueEngine(repo, testLogger())
	ctx := context.Background()

	participants := []models.Participant{
		neutralParticipant("team-1", 90),
		neutralParticipant("team-2", 50),
	}
	id := seasonWithParticipants(t, repo, "professional", participants)

	result, err := engine.ProcessPromotionRelegation(ctx, id)
	require.NoError(t, err)

	// professional has zero promotion spots and 3 relegation spots; with only
	// two teams relegation clamps to the whole field
	assert.Empty(t, result.Promotions)
	assert.Empty(t, result.AutoPromotions)
	assert.Equal(t, []string{"team-1", "team-2"}, result.Relegations)

	season, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, result.Promotions, season.Promotions)
	assert.Equal(t, result.Relegations, season.Relegations)
	assert.Len(t, season.Standings, 2)
}

func TestProcessPromotionRelegationIdempotent(t *testing.T) {
	repo := storage.NewMemorySeasonRepository()
	engine := NewLeagueEngine(repo, testLogger())
	ctx := context.Background()

	participants := []models.Participant{
		neutralParticipant("team-1", 90),
		neutralParticipant("team-2", 80),
		neutralParticipant("team-3", 70),
	}
	id := seasonWithParticipants(t, repo, "varsity", participants)

	first, err := engine.ProcessPromotionRelegation(ctx, id)
	require.NoError(t, err)
	second, err := engine.ProcessPromotionRelegation(ctx, id)
	require.NoError(t, err)

	assert.Equal(t, first, second, "repeated resolution without new results is stable")
}

func TestProcessPromotionRelegationUnknownSeason(t *testing.T) {
	engine := NewLeagueEngine(storage.NewMemorySeasonRepository(), testLogger())

	_, err := engine.ProcessPromotionRelegation(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrSeasonNotFound)
}
