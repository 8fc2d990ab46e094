package models

import "time"

// PostSummary is the shallow post view joined onto calendar entries.
type PostSummary struct {
	Title     string   `json:"title"`
	Excerpt   string   `json:"excerpt"`
	Platforms []string `json:"platforms"`
}

// ScheduledItem is a schedule together with its post summary.
type ScheduledItem struct {
	Schedule
	Post PostSummary `json:"post"`
}

// DayBucket groups the schedules of one calendar day, ascending by time.
// It is recomputed per request and never persisted.
type DayBucket struct {
	Date      time.Time       `json:"date"`
	Schedules []ScheduledItem `json:"schedules"`
}
