package models

type Platform struct {
	ID         string `db:"id" json:"id"`
	Name       string `db:"name" json:"name"`
	Status     string `db:"status" json:"status"` // connected, disconnected
	Handle     string `db:"handle" json:"handle"`
	Followers  int    `db:"followers" json:"followers"`
	Engagement int    `db:"engagement" json:"engagement,omitempty"`
	Views      int    `db:"views" json:"views,omitempty"`
}

const (
	PlatformStatusConnected    = "connected"
	PlatformStatusDisconnected = "disconnected"
)
