package storage

import (
	"context"
	"errors"

	"league-ranking-system/models"
)

// ErrNotFound is returned by Get/Update when the aggregate does not exist.
var ErrNotFound = errors.New("storage: not found")

// SeasonRepository stores whole season aggregates. Update serializes writers
// per season id so read-modify-write cycles on one season never interleave.
type SeasonRepository interface {
	Create(ctx context.Context, season *models.Season) error
	Get(ctx context.Context, id string) (*models.Season, error)
	List(ctx context.Context, status string) ([]models.Season, error)

	// Update loads the season, applies fn to it under the season's write
	// lock and persists the result. fn returning an error aborts the write.
	Update(ctx context.Context, id string, fn func(*models.Season) error) error
}

// ConflictRepository stores federation rule conflicts.
type ConflictRepository interface {
	Save(ctx context.Context, conflict *models.RuleConflict) error
	Get(ctx context.Context, id string) (*models.RuleConflict, error)
	ListPending(ctx context.Context) ([]models.RuleConflict, error)
}
