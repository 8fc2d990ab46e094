package models

type EngagementPoint struct {
	Date     string `json:"date"`
	Likes    int    `json:"likes"`
	Comments int    `json:"comments"`
	Shares   int    `json:"shares"`
}

type Analytics struct {
	Engagement       map[string]int    `json:"engagement"`
	Followers        map[string]int    `json:"followers"`
	RecentEngagement []EngagementPoint `json:"recentEngagement"`
}
