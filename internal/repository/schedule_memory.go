package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"socialflow/internal/models"
	"socialflow/pkg/dates"
)

// memoryScheduleRepository keeps schedules in insertion order so that
// same-instant schedules sort deterministically. Returned records are
// copies.
type memoryScheduleRepository struct {
	mu        sync.RWMutex
	schedules []*models.Schedule
}

func NewMemoryScheduleRepository(seed ...*models.Schedule) ScheduleRepository {
	r := &memoryScheduleRepository{}
	for _, s := range seed {
		cp := *s
		r.schedules = append(r.schedules, &cp)
	}
	return r
}

func (r *memoryScheduleRepository) Create(ctx context.Context, schedule *models.Schedule) error {
	id, err := gonanoid.New()
	if err != nil {
		return err
	}
	schedule.ID = id
	if schedule.CreatedAt.IsZero() {
		schedule.CreatedAt = time.Now().UTC()
	}

	cp := *schedule
	r.mu.Lock()
	defer r.mu.Unlock()
	r.schedules = append(r.schedules, &cp)
	return nil
}

func (r *memoryScheduleRepository) GetByID(ctx context.Context, id string) (*models.Schedule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.schedules {
		if s.ID == id {
			cp := *s
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryScheduleRepository) GetByPostID(ctx context.Context, postID string) (*models.Schedule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.schedules {
		if s.PostID == postID {
			cp := *s
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryScheduleRepository) List(ctx context.Context) ([]*models.Schedule, error) {
	return r.filter(func(s *models.Schedule) bool { return true }), nil
}

func (r *memoryScheduleRepository) ListForDay(ctx context.Context, day time.Time) ([]*models.Schedule, error) {
	return r.filter(func(s *models.Schedule) bool {
		return dates.SameDay(s.ScheduledAt, day)
	}), nil
}

func (r *memoryScheduleRepository) ListForRange(ctx context.Context, start, end time.Time) ([]*models.Schedule, error) {
	return r.filter(func(s *models.Schedule) bool {
		return dates.InRange(s.ScheduledAt, start, end)
	}), nil
}

func (r *memoryScheduleRepository) ListDueBefore(ctx context.Context, cutoff time.Time) ([]*models.Schedule, error) {
	return r.filter(func(s *models.Schedule) bool {
		return !s.ScheduledAt.After(cutoff)
	}), nil
}

// filter copies matching schedules sorted ascending by time; insertion
// order breaks ties, so repeated reads are deterministic.
func (r *memoryScheduleRepository) filter(keep func(*models.Schedule) bool) []*models.Schedule {
	r.mu.RLock()
	var out []*models.Schedule
	for _, s := range r.schedules {
		if keep(s) {
			cp := *s
			out = append(out, &cp)
		}
	}
	r.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ScheduledAt.Before(out[j].ScheduledAt)
	})
	return out
}

func (r *memoryScheduleRepository) UpdateTime(ctx context.Context, id string, scheduledAt time.Time) (*models.Schedule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.schedules {
		if s.ID == id {
			s.ScheduledAt = scheduledAt
			cp := *s
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryScheduleRepository) Remove(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, s := range r.schedules {
		if s.ID == id {
			r.schedules = append(r.schedules[:i], r.schedules[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
