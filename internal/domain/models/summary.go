// internal/domain/models/summary.go
package models

import "time"

// SummaryTotals is the derived part of the dashboard summary.
type SummaryTotals struct {
	TotalNotifications int       `bson:"total_notifications" json:"totalNotifications"`
	LastUpdated        time.Time `bson:"last_updated" json:"lastUpdated"`
}

// DashboardSummary is the combined overview the analytics dashboard loads
// in one request: the freshest stats and activity alongside unread
// notifications and top sellers.
type DashboardSummary struct {
	Stats            []AnalyticsStat  `json:"stats"`
	RecentActivities []RecentActivity `json:"recentActivities"`
	Notifications    []Notification   `json:"notifications"`
	TopProducts      []ProductPerf    `json:"topProducts"`
	Summary          SummaryTotals    `json:"summary"`
}
