package queue

import (
	"socialflow/internal/repository"
	"socialflow/internal/service"
)

type Queue struct {
	sr    repository.ScheduleRepository
	sched service.SchedulerService
}

func NewQueue(sr repository.ScheduleRepository, sched service.SchedulerService) *Queue {
	return &Queue{
		sr:    sr,
		sched: sched,
	}
}

const TaskTypePublishPost = "publish:post"

type PublishPostPayload struct {
	ScheduleID string `json:"schedule_id"`
}
