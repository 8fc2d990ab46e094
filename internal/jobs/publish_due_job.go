package job

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"socialflow/internal/repository"
	"socialflow/internal/service"
)

// PublishDueJob sweeps overdue schedules and publishes their posts. It
// backs up the delayed queue: schedules missed while the worker was down
// are caught on the next sweep, and when no queue is configured the sweep
// is the only publisher.
type PublishDueJob struct {
	sr    repository.ScheduleRepository
	sched service.SchedulerService
}

func NewPublishDueJob(sr repository.ScheduleRepository, sched service.SchedulerService) *PublishDueJob {
	return &PublishDueJob{
		sr:    sr,
		sched: sched,
	}
}

func (j *PublishDueJob) PublishDue() {
	ctx := context.Background()

	due, err := j.sr.ListDueBefore(ctx, time.Now().UTC())
	if err != nil {
		slog.Error(err.Error())
		return
	}

	for _, schedule := range due {
		if _, err := j.sched.PublishNow(ctx, schedule.PostID); err != nil {
			if errors.Is(err, repository.ErrNotFound) || errors.Is(err, service.ErrInvalidTransition) {
				continue
			}
			slog.Error("unable to publish due schedule", "schedule_id", schedule.ID, "error", err.Error())
			continue
		}
		slog.Info("published due schedule", "schedule_id", schedule.ID, "post_id", schedule.PostID)
	}
}
