// internal/app/store/analytics/store.go
package analytics

import (
	"context"

	"github.com/pulseboard/pulseboard/internal/app/store/resource"
	"github.com/pulseboard/pulseboard/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Default list orders for the analytics collections.
var (
	SortStats         = bson.D{{Key: "created_at", Value: -1}}
	SortCharts        = bson.D{{Key: "created_at", Value: -1}}
	SortProducts      = bson.D{{Key: "sales", Value: -1}}
	SortActivities    = bson.D{{Key: "timestamp", Value: -1}}
	SortGeo           = bson.D{{Key: "revenue", Value: -1}}
	SortDevices       = bson.D{{Key: "users", Value: -1}}
	SortNotifications = bson.D{{Key: "created_at", Value: -1}}
	SortQuickActions  = bson.D{{Key: "order", Value: 1}}
)

// Stores bundles the analytics collections.
type Stores struct {
	Stats         *resource.Store[models.AnalyticsStat, *models.AnalyticsStat]
	Charts        *resource.Store[models.Chart, *models.Chart]
	Products      *resource.Store[models.ProductPerf, *models.ProductPerf]
	Activities    *resource.Store[models.RecentActivity, *models.RecentActivity]
	Geo           *resource.Store[models.GeoStat, *models.GeoStat]
	Devices       *resource.Store[models.DeviceStat, *models.DeviceStat]
	Notifications *resource.Store[models.Notification, *models.Notification]
	QuickActions  *resource.Store[models.QuickAction, *models.QuickAction]
}

// New creates stores for the analytics collections.
func New(db *mongo.Database) *Stores {
	return &Stores{
		Stats:         resource.New[models.AnalyticsStat](db, "analytics_stats"),
		Charts:        resource.New[models.Chart](db, "charts"),
		Products:      resource.New[models.ProductPerf](db, "product_perf"),
		Activities:    resource.New[models.RecentActivity](db, "recent_activities"),
		Geo:           resource.New[models.GeoStat](db, "geo_stats"),
		Devices:       resource.New[models.DeviceStat](db, "device_stats"),
		Notifications: resource.New[models.Notification](db, "notifications"),
		QuickActions:  resource.New[models.QuickAction](db, "quick_actions"),
	}
}

// RecentStats returns the latest stat cards for the dashboard summary.
func (s *Stores) RecentStats(ctx context.Context, limit int64) ([]models.AnalyticsStat, error) {
	return s.Stats.Find(ctx, bson.M{}, SortStats, limit)
}

// RecentActivities returns the latest feed entries, newest first.
func (s *Stores) RecentActivities(ctx context.Context, limit int64) ([]models.RecentActivity, error) {
	return s.Activities.Find(ctx, bson.M{}, SortActivities, limit)
}

// UnreadNotifications returns the latest notifications still marked unread.
func (s *Stores) UnreadNotifications(ctx context.Context, limit int64) ([]models.Notification, error) {
	return s.Notifications.Find(ctx, bson.M{"is_read": false}, SortNotifications, limit)
}

// TopProducts returns the best sellers by unit sales.
func (s *Stores) TopProducts(ctx context.Context, limit int64) ([]models.ProductPerf, error) {
	return s.Products.Find(ctx, bson.M{"sales": bson.M{"$gt": 0}}, SortProducts, limit)
}

// EnabledQuickActions returns the action shortcuts shown on the dashboard,
// in display order.
func (s *Stores) EnabledQuickActions(ctx context.Context) ([]models.QuickAction, error) {
	return s.QuickActions.Find(ctx, bson.M{"is_enabled": true}, SortQuickActions, 0)
}
