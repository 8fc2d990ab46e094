package transfer

import "time"

type ScheduleCreation struct {
	PostID      string    `json:"postId"`
	ScheduledAt time.Time `json:"scheduledAt"`
}

type ScheduleUpdate struct {
	ScheduledAt time.Time `json:"scheduledAt"`
}
