package transfer

import "socialflow/internal/models"

// PreferencesUpdate merges shallowly into the stored preferences, the way
// the dashboard posts partial preference objects.
type PreferencesUpdate struct {
	Theme            *string                   `json:"theme"`
	DefaultPlatforms []string                  `json:"defaultPlatforms"`
	Notifications    *models.NotificationPrefs `json:"notifications"`
}

type ThemeUpdate struct {
	Theme string `json:"theme"`
}

type PlatformConnection struct {
	Platform string `json:"platform"`
	Handle   string `json:"handle"`
}
