package storage

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"league-ranking-system/models"
)

// GormSeasonRepository persists seasons in Postgres. Update takes a row-level
// lock inside a transaction so concurrent mutations of one season serialize
// at the database.
type GormSeasonRepository struct {
	db *gorm.DB
}

func NewGormSeasonRepository(db *gorm.DB) *GormSeasonRepository {
	return &GormSeasonRepository{db: db}
}

func (r *GormSeasonRepository) Create(ctx context.Context, season *models.Season) error {
	return r.db.WithContext(ctx).Create(season).Error
}

func (r *GormSeasonRepository) Get(ctx context.Context, id string) (*models.Season, error) {
	var season models.Season
	err := r.db.WithContext(ctx).First(&season, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &season, nil
}

func (r *GormSeasonRepository) List(ctx context.Context, status string) ([]models.Season, error) {
	var seasons []models.Season
	query := r.db.WithContext(ctx)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Find(&seasons).Error; err != nil {
		return nil, err
	}
	return seasons, nil
}

func (r *GormSeasonRepository) Update(ctx context.Context, id string, fn func(*models.Season) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var season models.Season
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&season, "id = ?", id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		if err := fn(&season); err != nil {
			return err
		}
		return tx.Save(&season).Error
	})
}

// GormConflictRepository persists federation rule conflicts.
type GormConflictRepository struct {
	db *gorm.DB
}

func NewGormConflictRepository(db *gorm.DB) *GormConflictRepository {
	return &GormConflictRepository{db: db}
}

func (r *GormConflictRepository) Save(ctx context.Context, conflict *models.RuleConflict) error {
	return r.db.WithContext(ctx).Save(conflict).Error
}

func (r *GormConflictRepository) Get(ctx context.Context, id string) (*models.RuleConflict, error) {
	var conflict models.RuleConflict
	err := r.db.WithContext(ctx).First(&conflict, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &conflict, nil
}

func (r *GormConflictRepository) ListPending(ctx context.Context) ([]models.RuleConflict, error) {
	var conflicts []models.RuleConflict
	err := r.db.WithContext(ctx).
		Where("status = ?", models.ConflictPending).
		Find(&conflicts).Error
	if err != nil {
		return nil, err
	}
	return conflicts, nil
}
