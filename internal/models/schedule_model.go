package models

import "time"

type Schedule struct {
	ID          string    `db:"id" json:"id"`
	PostID      string    `db:"post_id" json:"postId"`
	ScheduledAt time.Time `db:"scheduled_at" json:"scheduledAt"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}
