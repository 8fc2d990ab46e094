package transfer

type PostCreation struct {
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Platforms []string `json:"platforms"`
	Publish   bool     `json:"publish"`
}

// PostUpdate is a shallow merge: nil fields keep their current value.
// Status and scheduling fields are deliberately absent; those move only
// through the scheduler.
type PostUpdate struct {
	Title     *string  `json:"title"`
	Content   *string  `json:"content"`
	Platforms []string `json:"platforms"`
}
