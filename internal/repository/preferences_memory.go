package repository

import (
	"context"
	"sync"

	"socialflow/internal/models"
)

type PreferencesRepository interface {
	Get(ctx context.Context) (*models.Preferences, error)
	Save(ctx context.Context, prefs *models.Preferences) error
}

type memoryPreferencesRepository struct {
	mu    sync.RWMutex
	prefs models.Preferences
}

func NewMemoryPreferencesRepository(initial models.Preferences) PreferencesRepository {
	return &memoryPreferencesRepository{prefs: initial}
}

func (r *memoryPreferencesRepository) Get(ctx context.Context) (*models.Preferences, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cp := r.prefs
	cp.DefaultPlatforms = append([]string(nil), r.prefs.DefaultPlatforms...)
	return &cp, nil
}

func (r *memoryPreferencesRepository) Save(ctx context.Context, prefs *models.Preferences) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.prefs = *prefs
	r.prefs.DefaultPlatforms = append([]string(nil), prefs.DefaultPlatforms...)
	return nil
}
