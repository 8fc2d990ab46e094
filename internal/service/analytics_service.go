package service

import (
	"context"

	"socialflow/internal/models"
)

// AnalyticsService serves the dashboard's demo analytics. Real platform
// metrics are out of scope; the numbers are fixtures.
type AnalyticsService interface {
	Overview(ctx context.Context) (*models.Analytics, error)
}

type analyticsService struct{}

func NewAnalyticsService() AnalyticsService {
	return &analyticsService{}
}

func (s *analyticsService) Overview(ctx context.Context) (*models.Analytics, error) {
	return &models.Analytics{
		Engagement: map[string]int{
			"twitter": 4526, "instagram": 7892, "facebook": 3456,
			"linkedin": 2987, "tiktok": 8965, "youtube": 3245,
		},
		Followers: map[string]int{
			"twitter": 17200, "instagram": 28300, "facebook": 35600,
			"linkedin": 14100, "tiktok": 25400, "youtube": 5800,
		},
		RecentEngagement: []models.EngagementPoint{
			{Date: "2025-04-04", Likes: 1242, Comments: 342, Shares: 156},
			{Date: "2025-04-05", Likes: 1536, Comments: 456, Shares: 234},
			{Date: "2025-04-06", Likes: 1798, Comments: 523, Shares: 287},
			{Date: "2025-04-07", Likes: 1654, Comments: 489, Shares: 267},
			{Date: "2025-04-08", Likes: 2103, Comments: 567, Shares: 324},
			{Date: "2025-04-09", Likes: 1892, Comments: 498, Shares: 298},
			{Date: "2025-04-10", Likes: 2156, Comments: 543, Shares: 312},
		},
	}, nil
}
