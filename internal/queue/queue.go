package queue

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"
)

// EnqueuePublish schedules a publish task for the moment the schedule is
// due. Rescheduling enqueues a fresh task; the worker discards the stale
// one when it fires.
func EnqueuePublish(asynqClient *asynq.Client, payload PublishPostPayload, delay time.Duration) error {
	taskPayload, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	if delay < 0 {
		delay = 0
	}

	task := asynq.NewTask(TaskTypePublishPost, taskPayload)
	_, err = asynqClient.Enqueue(task, asynq.ProcessIn(delay))
	if err != nil {
		return err
	}

	slog.Info("publish task enqueued", "schedule_id", payload.ScheduleID, "delay", delay.String())
	return nil
}
