package queue

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"socialflow/internal/repository"
	"socialflow/internal/service"
)

// publishSlack tolerates clock skew between enqueue time and worker pickup
// when deciding whether a task still matches its schedule.
const publishSlack = time.Minute

func (q *Queue) HandlePublishPostTask(ctx context.Context, task *asynq.Task) error {
	var payload PublishPostPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return err
	}

	schedule, err := q.sr.GetByID(ctx, payload.ScheduleID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// Unscheduled or already published since the task was enqueued.
			slog.Info("skipping publish task, schedule is gone", "schedule_id", payload.ScheduleID)
			return nil
		}
		return err
	}

	if schedule.ScheduledAt.After(time.Now().Add(publishSlack)) {
		// Rescheduled to a later time; the newer task will handle it.
		slog.Info("skipping publish task, schedule moved", "schedule_id", schedule.ID)
		return nil
	}

	if _, err := q.sched.PublishNow(ctx, schedule.PostID); err != nil {
		if errors.Is(err, service.ErrInvalidTransition) || errors.Is(err, repository.ErrNotFound) {
			slog.Info("skipping publish task", "schedule_id", schedule.ID, "reason", err.Error())
			return nil
		}
		slog.Error("publish task failed", "schedule_id", schedule.ID, "error", err.Error())
		return err
	}

	slog.Info("post published on schedule", "schedule_id", schedule.ID, "post_id", schedule.PostID)
	return nil
}
