package repository

import "socialflow/internal/models"

// Demo fixtures matching the dashboard's sample data. Loaded only when the
// service runs without a database.

func PlatformFixtures() []*models.Platform {
	return []*models.Platform{
		{ID: "twitter", Name: "Twitter", Status: models.PlatformStatusConnected, Handle: "@YourBrand", Followers: 16800, Engagement: 4500},
		{ID: "instagram", Name: "Instagram", Status: models.PlatformStatusConnected, Handle: "@your_brand", Followers: 28300, Engagement: 7900},
		{ID: "facebook", Name: "Facebook", Status: models.PlatformStatusConnected, Handle: "Your Brand Page", Followers: 35600, Engagement: 3400},
		{ID: "linkedin", Name: "LinkedIn", Status: models.PlatformStatusConnected, Handle: "Your Brand", Followers: 14100, Engagement: 3000},
		{ID: "tiktok", Name: "TikTok", Status: models.PlatformStatusConnected, Handle: "@yourbrand", Followers: 25400, Views: 89700},
		{ID: "youtube", Name: "YouTube", Status: models.PlatformStatusDisconnected, Handle: "", Followers: 0, Views: 0},
	}
}

func DefaultPreferences() models.Preferences {
	return models.Preferences{
		Theme:            "light",
		DefaultPlatforms: []string{"twitter", "instagram"},
		Notifications: models.NotificationPrefs{
			Email:            true,
			Push:             true,
			PostPublishing:   true,
			AnalyticsReports: false,
		},
	}
}
