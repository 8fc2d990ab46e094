package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"socialflow/internal/models"
	"socialflow/internal/repository"
	"socialflow/pkg/dates"
)

// excerptLen caps the content preview joined onto calendar entries.
const excerptLen = 120

// CalendarService is the read side of the scheduler: it projects the
// current posts and schedules into day buckets for the calendar views.
// Buckets are rebuilt on every call and never cached.
type CalendarService interface {
	BucketsForMonth(ctx context.Context, anchor time.Time) ([]models.DayBucket, error)
	BucketForDay(ctx context.Context, day time.Time) (*models.DayBucket, error)
	Upcoming(ctx context.Context, days int) ([]models.ScheduledItem, error)
}

type calendarService struct {
	pr        repository.PostRepository
	sr        repository.ScheduleRepository
	weekStart time.Weekday
}

func NewCalendarService(pr repository.PostRepository, sr repository.ScheduleRepository) CalendarService {
	return &calendarService{
		pr:        pr,
		sr:        sr,
		weekStart: time.Sunday,
	}
}

func (s *calendarService) BucketsForMonth(ctx context.Context, anchor time.Time) ([]models.DayBucket, error) {
	days := dates.Grid(anchor, s.weekStart)

	// One range query for the whole grid, bucketed locally, instead of a
	// per-day store query.
	start := days[0]
	end := days[len(days)-1].AddDate(0, 0, 1).Add(-time.Nanosecond)
	schedules, err := s.sr.ListForRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("error listing schedules: %w", err)
	}

	buckets := make([]models.DayBucket, 0, len(days))
	for _, day := range days {
		bucket := models.DayBucket{Date: day, Schedules: []models.ScheduledItem{}}
		for _, sch := range schedules {
			if dates.SameDay(sch.ScheduledAt, day) {
				item, err := s.join(ctx, sch)
				if err != nil {
					return nil, err
				}
				bucket.Schedules = append(bucket.Schedules, item)
			}
		}
		buckets = append(buckets, bucket)
	}
	return buckets, nil
}

func (s *calendarService) BucketForDay(ctx context.Context, day time.Time) (*models.DayBucket, error) {
	schedules, err := s.sr.ListForDay(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("error listing schedules: %w", err)
	}

	bucket := models.DayBucket{Date: dates.StartOfDay(day), Schedules: []models.ScheduledItem{}}
	for _, sch := range schedules {
		item, err := s.join(ctx, sch)
		if err != nil {
			return nil, err
		}
		bucket.Schedules = append(bucket.Schedules, item)
	}
	return &bucket, nil
}

func (s *calendarService) Upcoming(ctx context.Context, days int) ([]models.ScheduledItem, error) {
	now := time.Now().UTC()
	schedules, err := s.sr.ListForRange(ctx, now, now.AddDate(0, 0, days))
	if err != nil {
		return nil, fmt.Errorf("error listing schedules: %w", err)
	}

	items := make([]models.ScheduledItem, 0, len(schedules))
	for _, sch := range schedules {
		item, err := s.join(ctx, sch)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// join attaches the post summary to a schedule. A missing post degrades to
// a placeholder summary; the calendar must render stale references, not
// fail on them.
func (s *calendarService) join(ctx context.Context, schedule *models.Schedule) (models.ScheduledItem, error) {
	item := models.ScheduledItem{Schedule: *schedule}

	post, err := s.pr.GetByID(ctx, schedule.PostID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			item.Post = models.PostSummary{Title: "Untitled", Platforms: []string{}}
			return item, nil
		}
		return item, fmt.Errorf("error loading post %s: %w", schedule.PostID, err)
	}

	item.Post = models.PostSummary{
		Title:     post.Title,
		Excerpt:   excerpt(post.Content),
		Platforms: post.Platforms,
	}
	return item, nil
}

func excerpt(content string) string {
	runes := []rune(content)
	if len(runes) <= excerptLen {
		return content
	}
	return string(runes[:excerptLen]) + "..."
}
