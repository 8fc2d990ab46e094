package repository

import (
	"context"
	"sync"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"socialflow/internal/models"
)

// memoryPostRepository keeps posts in process memory, in insertion order.
// It backs the demo mode (no POSTGRES_URI), matching the fixture-backed
// mock server this service replaces. Returned records are copies.
type memoryPostRepository struct {
	mu    sync.RWMutex
	posts []*models.Post
}

func NewMemoryPostRepository(seed ...*models.Post) PostRepository {
	r := &memoryPostRepository{}
	for _, p := range seed {
		cp := clonePost(p)
		r.posts = append(r.posts, cp)
	}
	return r
}

func clonePost(p *models.Post) *models.Post {
	cp := *p
	cp.Platforms = append([]string(nil), p.Platforms...)
	if p.PublishedAt != nil {
		t := *p.PublishedAt
		cp.PublishedAt = &t
	}
	if p.ScheduledFor != nil {
		t := *p.ScheduledFor
		cp.ScheduledFor = &t
	}
	return &cp
}

func (r *memoryPostRepository) Create(ctx context.Context, post *models.Post) error {
	id, err := gonanoid.New()
	if err != nil {
		return err
	}
	post.ID = id
	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now().UTC()
	}
	if post.Status == "" {
		post.Status = models.PostStatusDraft
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.posts = append(r.posts, clonePost(post))
	return nil
}

func (r *memoryPostRepository) GetByID(ctx context.Context, id string) (*models.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.posts {
		if p.ID == id {
			return clonePost(p), nil
		}
	}
	return nil, ErrNotFound
}

// List returns posts newest-first, the order the dashboard displays them.
func (r *memoryPostRepository) List(ctx context.Context) ([]*models.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*models.Post, 0, len(r.posts))
	for i := len(r.posts) - 1; i >= 0; i-- {
		out = append(out, clonePost(r.posts[i]))
	}
	return out, nil
}

func (r *memoryPostRepository) Update(ctx context.Context, post *models.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.posts {
		if p.ID == post.ID {
			r.posts[i] = clonePost(post)
			return nil
		}
	}
	return ErrNotFound
}

func (r *memoryPostRepository) Remove(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.posts {
		if p.ID == id {
			r.posts = append(r.posts[:i], r.posts[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
