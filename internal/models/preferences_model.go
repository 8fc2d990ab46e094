package models

type NotificationPrefs struct {
	Email            bool `json:"email"`
	Push             bool `json:"push"`
	PostPublishing   bool `json:"postPublishing"`
	AnalyticsReports bool `json:"analyticsReports"`
}

type Preferences struct {
	Theme            string            `json:"theme"`
	DefaultPlatforms []string          `json:"defaultPlatforms"`
	Notifications    NotificationPrefs `json:"notifications"`
}
