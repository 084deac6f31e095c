package storage

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"league-ranking-system/models"
)

func TestMemorySeasonRepositoryRoundTrip(t *testing.T) {
	repo := NewMemorySeasonRepository()
	ctx := context.Background()

	season := &models.Season{
		ID:     "season-1",
		TierID: "amateur",
		Name:   "Test",
		Status: models.SeasonUpcoming,
	}
	require.NoError(t, repo.Create(ctx, season))

	got, err := repo.Get(ctx, "season-1")
	require.NoError(t, err)
	assert.Equal(t, "amateur", got.TierID)

	_, err = repo.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemorySeasonRepositoryIsolation(t *testing.T) {
	repo := NewMemorySeasonRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Season{
		ID:           "season-1",
		Participants: []models.Participant{{TeamID: "team-a"}},
	}))

	got, err := repo.Get(ctx, "season-1")
	require.NoError(t, err)
	got.Participants[0].TeamID = "mutated"

	fresh, err := repo.Get(ctx, "season-1")
	require.NoError(t, err)
	assert.Equal(t, "team-a", fresh.Participants[0].TeamID,
		"callers must not share slices with stored state")
}

func TestMemorySeasonRepositoryUpdate(t *testing.T) {
	repo := NewMemorySeasonRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Season{ID: "season-1", Status: models.SeasonUpcoming}))

	err := repo.Update(ctx, "season-1", func(s *models.Season) error {
		s.Status = models.SeasonActive
		return nil
	})
	require.NoError(t, err)

	got, err := repo.Get(ctx, "season-1")
	require.NoError(t, err)
	assert.Equal(t, models.SeasonActive, got.Status)

	assert.ErrorIs(t, repo.Update(ctx, "missing", func(s *models.Season) error { return nil }), ErrNotFound)
}

func TestMemorySeasonRepositoryUpdateAborts(t *testing.T) {
	repo := NewMemorySeasonRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Season{ID: "season-1", Status: models.SeasonUpcoming}))

	sentinel := assert.AnError
	err := repo.Update(ctx, "season-1", func(s *models.Season) error {
		s.Status = models.SeasonCancelled
		return sentinel
	})
	assert.ErrorIs(t, err, sentinel)

	got, err := repo.Get(ctx, "season-1")
	require.NoError(t, err)
	assert.Equal(t, models.SeasonUpcoming, got.Status, "failed update must not persist")
}

func TestMemorySeasonRepositoryConcurrentUpdates(t *testing.T) {
	repo := NewMemorySeasonRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Season{
		ID:           "season-1",
		Participants: []models.Participant{{TeamID: "team-a"}},
	}))

	const writers = 50
	var wg sync.WaitGroup
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func() {
			defer wg.Done()
			_ = repo.Update(ctx, "season-1", func(s *models.Season) error {
				s.Participants[0].MatchesPlayed++
				return nil
			})
		}()
	}
	wg.Wait()

	got, err := repo.Get(ctx, "season-1")
	require.NoError(t, err)
	assert.Equal(t, writers, got.Participants[0].MatchesPlayed,
		"per-season locking must serialize read-modify-write cycles")
}

func TestMemorySeasonRepositoryList(t *testing.T) {
	repo := NewMemorySeasonRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Season{ID: "s1", Status: models.SeasonActive}))
	require.NoError(t, repo.Create(ctx, &models.Season{ID: "s2", Status: models.SeasonUpcoming}))
	require.NoError(t, repo.Create(ctx, &models.Season{ID: "s3", Status: models.SeasonActive}))

	all, err := repo.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	active, err := repo.List(ctx, models.SeasonActive)
	require.NoError(t, err)
	assert.Len(t, active, 2)
}

func TestMemoryConflictRepository(t *testing.T) {
	repo := NewMemoryConflictRepository()
	ctx := context.Background()

	conflict := &models.RuleConflict{ID: "c1", Status: models.ConflictPending}
	require.NoError(t, repo.Save(ctx, conflict))

	got, err := repo.Get(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, models.ConflictPending, got.Status)

	pending, err := repo.ListPending(ctx)
	require.NoError(t, err)
	assert.Len(t, pending, 1)

	conflict.Status = models.ConflictResolved
	require.NoError(t, repo.Save(ctx, conflict))

	pending, err = repo.ListPending(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)

	_, err = repo.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
