package repository

import (
	"context"
	"sync"

	"socialflow/internal/models"
)

type PlatformRepository interface {
	List(ctx context.Context) ([]*models.Platform, error)
	GetByID(ctx context.Context, id string) (*models.Platform, error)
	Update(ctx context.Context, platform *models.Platform) error
}

// Platform connections are demo fixtures in this system; there is no
// durable variant.
type memoryPlatformRepository struct {
	mu        sync.RWMutex
	platforms []*models.Platform
}

func NewMemoryPlatformRepository(seed ...*models.Platform) PlatformRepository {
	r := &memoryPlatformRepository{}
	for _, p := range seed {
		cp := *p
		r.platforms = append(r.platforms, &cp)
	}
	return r
}

func (r *memoryPlatformRepository) List(ctx context.Context) ([]*models.Platform, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*models.Platform, 0, len(r.platforms))
	for _, p := range r.platforms {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memoryPlatformRepository) GetByID(ctx context.Context, id string) (*models.Platform, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.platforms {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryPlatformRepository) Update(ctx context.Context, platform *models.Platform) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.platforms {
		if p.ID == platform.ID {
			cp := *platform
			r.platforms[i] = &cp
			return nil
		}
	}
	return ErrNotFound
}
