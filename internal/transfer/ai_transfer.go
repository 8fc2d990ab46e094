package transfer

type GenerationRequest struct {
	Topic     string   `json:"topic"`
	Template  string   `json:"template"`
	Tone      string   `json:"tone"`
	Platforms []string `json:"platforms"`
}

type GenerationResult struct {
	PrimaryContent string   `json:"primaryContent"`
	Variants       []string `json:"variants"`
	Topic          string   `json:"topic"`
	Platforms      []string `json:"platforms"`
	Template       string   `json:"template"`
	Tone           string   `json:"tone"`
}
