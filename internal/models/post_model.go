package models

import "time"

type Post struct {
	ID           string     `db:"id" json:"id"`
	Title        string     `db:"title" json:"title"`
	Content      string     `db:"content" json:"content"`
	Platforms    []string   `db:"platforms" json:"platforms"`
	Status       string     `db:"status" json:"status"` // draft, scheduled, published, failed
	CreatedAt    time.Time  `db:"created_at" json:"createdAt"`
	PublishedAt  *time.Time `db:"published_at" json:"publishedAt,omitempty"`
	ScheduledFor *time.Time `db:"scheduled_for" json:"scheduledFor,omitempty"`
}

const (
	PostStatusDraft     = "draft"
	PostStatusScheduled = "scheduled"
	PostStatusPublished = "published"
	PostStatusFailed    = "failed"
)
