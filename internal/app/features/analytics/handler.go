// internal/app/features/analytics/handler.go
package analytics

import (
	"context"
	"encoding/json"
	"net/http"

	store "github.com/pulseboard/pulseboard/internal/app/store/analytics"
	"github.com/pulseboard/pulseboard/internal/app/system/crud"
	"github.com/pulseboard/pulseboard/internal/app/system/listquery"
	"github.com/pulseboard/pulseboard/internal/app/system/timeouts"
	"github.com/pulseboard/pulseboard/internal/app/system/webapi"
	"github.com/pulseboard/pulseboard/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Summary fan-out sizes: how many of each the dashboard summary returns.
const (
	summaryStats         = 4
	summaryActivities    = 5
	summaryNotifications = 3
	summaryProducts      = 5
)

// Handler serves the analytics domain: stat cards, charts, product
// performance, the activity feed, geographic and device aggregates,
// notifications, quick actions, and the combined dashboard summary.
type Handler struct {
	Stores *store.Stores
	Log    *zap.Logger

	stats         *crud.Controller[models.AnalyticsStat, *models.AnalyticsStat]
	charts        *crud.Controller[models.Chart, *models.Chart]
	products      *crud.Controller[models.ProductPerf, *models.ProductPerf]
	activities    *crud.Controller[models.RecentActivity, *models.RecentActivity]
	geo           *crud.Controller[models.GeoStat, *models.GeoStat]
	devices       *crud.Controller[models.DeviceStat, *models.DeviceStat]
	notifications *crud.Controller[models.Notification, *models.Notification]
	quickActions  *crud.Controller[models.QuickAction, *models.QuickAction]
}

// NewHandler constructs the analytics Handler and its per-resource
// controllers.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	s := store.New(db)
	h := &Handler{Stores: s, Log: logger}

	h.stats = crud.New(crud.Binding[models.AnalyticsStat, *models.AnalyticsStat]{
		Singular: "analytics stat",
		Plural:   "analytics stats",
		Store:    s.Stats,
		Sort:     store.SortStats,
	}, logger)

	h.charts = crud.New(crud.Binding[models.Chart, *models.Chart]{
		Singular: "chart",
		Plural:   "charts",
		Store:    s.Charts,
		Sort:     store.SortCharts,
		Filters: []listquery.Param{
			{Name: "type", Field: "type", Kind: listquery.String},
		},
	}, logger)

	h.products = crud.New(crud.Binding[models.ProductPerf, *models.ProductPerf]{
		Singular: "product",
		Plural:   "products",
		Store:    s.Products,
		Sort:     store.SortProducts,
	}, logger)

	h.activities = crud.New(crud.Binding[models.RecentActivity, *models.RecentActivity]{
		Singular:     "activity",
		Plural:       "activities",
		Store:        s.Activities,
		Sort:         store.SortActivities,
		DefaultLimit: 10,
	}, logger)

	h.geo = crud.New(crud.Binding[models.GeoStat, *models.GeoStat]{
		Singular: "geographic stat",
		Plural:   "geographic stats",
		Store:    s.Geo,
		Sort:     store.SortGeo,
	}, logger)

	h.devices = crud.New(crud.Binding[models.DeviceStat, *models.DeviceStat]{
		Singular: "device stat",
		Plural:   "device stats",
		Store:    s.Devices,
		Sort:     store.SortDevices,
	}, logger)

	h.notifications = crud.New(crud.Binding[models.Notification, *models.Notification]{
		Singular:     "notification",
		Plural:       "notifications",
		Store:        s.Notifications,
		Sort:         store.SortNotifications,
		DefaultLimit: 20,
		Filters: []listquery.Param{
			{Name: "userId", Field: "user_id", Kind: listquery.String},
			{Name: "isRead", Field: "is_read", Kind: listquery.Bool},
		},
	}, logger)

	h.quickActions = crud.New(crud.Binding[models.QuickAction, *models.QuickAction]{
		Singular: "quick action",
		Plural:   "quick actions",
		Store:    s.QuickActions,
		Sort:     store.SortQuickActions,
		OnCreate: func(doc *models.QuickAction, raw map[string]json.RawMessage) {
			// Enabled unless the caller says otherwise.
			if _, ok := raw["isEnabled"]; !ok {
				doc.IsEnabled = true
			}
		},
	}, logger)

	return h
}

// ServeQuickActionsList handles GET /quick-actions. Without a query it
// returns only enabled actions; `?enabled=false` shows the disabled ones,
// `?enabled=true` is explicit.
func (h *Handler) ServeQuickActionsList(w http.ResponseWriter, r *http.Request) {
	filter := bson.M{"is_enabled": true}
	if q := r.URL.Query().Get("enabled"); q != "" {
		switch q {
		case "true":
		case "false":
			filter["is_enabled"] = false
		default:
			webapi.BadRequest(w, "Invalid query parameters", nil)
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	actions, err := h.Stores.QuickActions.Find(ctx, filter, store.SortQuickActions, 0)
	if err != nil {
		webapi.Fail(w, h.Log, err, "Error fetching quick actions")
		return
	}
	webapi.JSON(w, http.StatusOK, actions)
}
