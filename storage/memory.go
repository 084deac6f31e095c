package storage

import (
	"context"
	"encoding/json"
	"sync"

	"league-ranking-system/models"
)

// MemorySeasonRepository keeps seasons in process memory. Each season gets
// its own mutex so Update calls for different seasons run concurrently while
// writers to the same season queue up.
type MemorySeasonRepository struct {
	mu      sync.RWMutex
	seasons map[string]*models.Season
	locks   map[string]*sync.Mutex
}

func NewMemorySeasonRepository() *MemorySeasonRepository {
	return &MemorySeasonRepository{
		seasons: make(map[string]*models.Season),
		locks:   make(map[string]*sync.Mutex),
	}
}

// cloneSeason round-trips through JSON so callers never share slices or maps
// with the stored aggregate.
func cloneSeason(s *models.Season) *models.Season {
	raw, err := json.Marshal(s)
	if err != nil {
		return nil
	}
	var out models.Season
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return &out
}

func (r *MemorySeasonRepository) seasonLock(id string) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()
	lock, ok := r.locks[id]
	if !ok {
		lock = &sync.Mutex{}
		r.locks[id] = lock
	}
	return lock
}

func (r *MemorySeasonRepository) Create(ctx context.Context, season *models.Season) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seasons[season.ID] = cloneSeason(season)
	if _, ok := r.locks[season.ID]; !ok {
		r.locks[season.ID] = &sync.Mutex{}
	}
	return nil
}

func (r *MemorySeasonRepository) Get(ctx context.Context, id string) (*models.Season, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	season, ok := r.seasons[id]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneSeason(season), nil
}

func (r *MemorySeasonRepository) List(ctx context.Context, status string) ([]models.Season, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Season, 0, len(r.seasons))
	for _, season := range r.seasons {
		if status != "" && season.Status != status {
			continue
		}
		out = append(out, *cloneSeason(season))
	}
	return out, nil
}

func (r *MemorySeasonRepository) Update(ctx context.Context, id string, fn func(*models.Season) error) error {
	lock := r.seasonLock(id)
	lock.Lock()
	defer lock.Unlock()

	r.mu.RLock()
	stored, ok := r.seasons[id]
	r.mu.RUnlock()
	if !ok {
		return ErrNotFound
	}

	working := cloneSeason(stored)
	if err := fn(working); err != nil {
		return err
	}

	r.mu.Lock()
	r.seasons[id] = working
	r.mu.Unlock()
	return nil
}

// MemoryConflictRepository keeps rule conflicts in process memory.
type MemoryConflictRepository struct {
	mu        sync.RWMutex
	conflicts map[string]models.RuleConflict
}

func NewMemoryConflictRepository() *MemoryConflictRepository {
	return &MemoryConflictRepository{conflicts: make(map[string]models.RuleConflict)}
}

func (r *MemoryConflictRepository) Save(ctx context.Context, conflict *models.RuleConflict) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.conflicts[conflict.ID] = *conflict
	return nil
}

func (r *MemoryConflictRepository) Get(ctx context.Context, id string) (*models.RuleConflict, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	conflict, ok := r.conflicts[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := conflict
	return &out, nil
}

func (r *MemoryConflictRepository) ListPending(ctx context.Context) ([]models.RuleConflict, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.RuleConflict
	for _, conflict := range r.conflicts {
		if conflict.Status == models.ConflictPending {
			out = append(out, conflict)
		}
	}
	return out, nil
}
