// internal/app/features/analytics/summary.go
package analytics

import (
	"context"
	"net/http"
	"time"

	"github.com/pulseboard/pulseboard/internal/app/system/timeouts"
	"github.com/pulseboard/pulseboard/internal/app/system/webapi"
	"github.com/pulseboard/pulseboard/internal/domain/models"
	"golang.org/x/sync/errgroup"
)

// ServeDashboardSummary handles GET /dashboard-summary. The four reads run
// concurrently; if any of them fails the whole response is a 500, never a
// partially filled summary.
func (h *Handler) ServeDashboardSummary(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	var (
		stats         []models.AnalyticsStat
		activities    []models.RecentActivity
		notifications []models.Notification
		topProducts   []models.ProductPerf
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		stats, err = h.Stores.RecentStats(gctx, summaryStats)
		return err
	})
	g.Go(func() (err error) {
		activities, err = h.Stores.RecentActivities(gctx, summaryActivities)
		return err
	})
	g.Go(func() (err error) {
		notifications, err = h.Stores.UnreadNotifications(gctx, summaryNotifications)
		return err
	})
	g.Go(func() (err error) {
		topProducts, err = h.Stores.TopProducts(gctx, summaryProducts)
		return err
	})
	if err := g.Wait(); err != nil {
		webapi.Fail(w, h.Log, err, "Error fetching dashboard summary")
		return
	}

	webapi.JSON(w, http.StatusOK, models.DashboardSummary{
		Stats:            stats,
		RecentActivities: activities,
		Notifications:    notifications,
		TopProducts:      topProducts,
		Summary: models.SummaryTotals{
			TotalNotifications: len(notifications),
			LastUpdated:        time.Now().UTC(),
		},
	})
}
