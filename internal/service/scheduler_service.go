package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"socialflow/internal/models"
	"socialflow/internal/repository"
)

var (
	// ErrAlreadyScheduled means the post already has an active schedule;
	// callers must reschedule instead of scheduling again.
	ErrAlreadyScheduled = errors.New("post already has a schedule")

	// ErrInvalidTransition means the post's status does not permit the
	// requested operation.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrValidation means a required field is missing.
	ErrValidation = errors.New("validation failed")
)

// SchedulerService owns every write that touches a post and its schedule
// together. The rule it maintains: a post is "scheduled" exactly when one
// schedule references it, and the post's scheduledFor mirrors that
// schedule's time.
type SchedulerService interface {
	SchedulePost(ctx context.Context, postID string, when time.Time) (*models.Schedule, error)
	Reschedule(ctx context.Context, scheduleID string, when time.Time) (*models.Schedule, error)
	Unschedule(ctx context.Context, scheduleID string) error
	PublishNow(ctx context.Context, postID string) (*models.Post, error)
	DeletePost(ctx context.Context, postID string) error
}

type schedulerService struct {
	mu sync.Mutex
	pr repository.PostRepository
	sr repository.ScheduleRepository
}

func NewSchedulerService(pr repository.PostRepository, sr repository.ScheduleRepository) SchedulerService {
	return &schedulerService{
		pr: pr,
		sr: sr,
	}
}

// SchedulePost moves a draft (or failed) post into the scheduled state and
// creates its schedule. Both writes happen under the service mutex, so no
// reader of the stores observes one without the other.
func (s *schedulerService) SchedulePost(ctx context.Context, postID string, when time.Time) (*models.Schedule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, err := s.pr.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if post.Status == models.PostStatusPublished {
		slog.Info("refusing to schedule a published post", "post_id", postID)
		return nil, ErrInvalidTransition
	}
	if _, err := s.sr.GetByPostID(ctx, postID); err == nil {
		return nil, ErrAlreadyScheduled
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if err := validatePublishable(post); err != nil {
		return nil, err
	}

	schedule := models.Schedule{
		PostID:      postID,
		ScheduledAt: when,
	}
	if err := s.sr.Create(ctx, &schedule); err != nil {
		return nil, fmt.Errorf("error creating schedule: %w", err)
	}

	post.Status = models.PostStatusScheduled
	post.ScheduledFor = &schedule.ScheduledAt
	if err := s.pr.Update(ctx, post); err != nil {
		// Roll the schedule back so a reader never sees the pair half-written.
		if rbErr := s.sr.Remove(ctx, schedule.ID); rbErr != nil {
			slog.Error("rollback failed", "schedule_id", schedule.ID, "error", rbErr.Error())
		}
		return nil, fmt.Errorf("error updating post: %w", err)
	}

	return &schedule, nil
}

// Reschedule moves an existing schedule to a new time and keeps the owning
// post's scheduledFor in step.
func (s *schedulerService) Reschedule(ctx context.Context, scheduleID string, when time.Time) (*models.Schedule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	schedule, err := s.sr.GetByID(ctx, scheduleID)
	if err != nil {
		return nil, err
	}

	updated, err := s.sr.UpdateTime(ctx, scheduleID, when)
	if err != nil {
		return nil, fmt.Errorf("error updating schedule: %w", err)
	}

	post, err := s.pr.GetByID(ctx, schedule.PostID)
	if err != nil {
		slog.Error("schedule points at missing post", "schedule_id", scheduleID, "post_id", schedule.PostID)
		return nil, fmt.Errorf("error loading scheduled post: %w", err)
	}
	post.ScheduledFor = &updated.ScheduledAt
	if err := s.pr.Update(ctx, post); err != nil {
		if _, rbErr := s.sr.UpdateTime(ctx, scheduleID, schedule.ScheduledAt); rbErr != nil {
			slog.Error("rollback failed", "schedule_id", scheduleID, "error", rbErr.Error())
		}
		return nil, fmt.Errorf("error updating post: %w", err)
	}

	return updated, nil
}

// Unschedule removes a schedule and returns its post to draft.
func (s *schedulerService) Unschedule(ctx context.Context, scheduleID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	schedule, err := s.sr.GetByID(ctx, scheduleID)
	if err != nil {
		return err
	}

	if err := s.sr.Remove(ctx, scheduleID); err != nil {
		return fmt.Errorf("error removing schedule: %w", err)
	}

	post, err := s.pr.GetByID(ctx, schedule.PostID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// Post already gone; nothing left to put back into draft.
			return nil
		}
		return fmt.Errorf("error loading scheduled post: %w", err)
	}
	post.Status = models.PostStatusDraft
	post.ScheduledFor = nil
	if err := s.pr.Update(ctx, post); err != nil {
		return fmt.Errorf("error updating post: %w", err)
	}
	return nil
}

// PublishNow marks a post published, stamping publishedAt and clearing any
// schedule it still carries. Publishing a published post is rejected;
// failed posts may retry.
func (s *schedulerService) PublishNow(ctx context.Context, postID string) (*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, err := s.pr.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.Status == models.PostStatusPublished {
		slog.Info("post is already published", "post_id", postID)
		return nil, ErrInvalidTransition
	}
	if err := validatePublishable(post); err != nil {
		return nil, err
	}

	if schedule, err := s.sr.GetByPostID(ctx, postID); err == nil {
		if err := s.sr.Remove(ctx, schedule.ID); err != nil {
			return nil, fmt.Errorf("error removing schedule: %w", err)
		}
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	post.Status = models.PostStatusPublished
	post.PublishedAt = &now
	post.ScheduledFor = nil
	if err := s.pr.Update(ctx, post); err != nil {
		return nil, fmt.Errorf("error updating post: %w", err)
	}

	return post, nil
}

// DeletePost removes a post and cascades to its schedule, so no dangling
// schedule survives.
func (s *schedulerService) DeletePost(ctx context.Context, postID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.pr.GetByID(ctx, postID); err != nil {
		return err
	}

	if schedule, err := s.sr.GetByPostID(ctx, postID); err == nil {
		if err := s.sr.Remove(ctx, schedule.ID); err != nil {
			return fmt.Errorf("error removing schedule: %w", err)
		}
	} else if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	if err := s.pr.Remove(ctx, postID); err != nil {
		return fmt.Errorf("error removing post: %w", err)
	}
	return nil
}

func validatePublishable(post *models.Post) error {
	if post.Title == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if post.Content == "" {
		return fmt.Errorf("%w: content is required", ErrValidation)
	}
	if len(post.Platforms) == 0 {
		return fmt.Errorf("%w: at least one platform is required", ErrValidation)
	}
	return nil
}
