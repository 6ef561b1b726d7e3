// internal/app/features/analytics/routes.go
package analytics

import "github.com/go-chi/chi/v5"

// Routes returns the subrouter mounted under /analytics.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/dashboard-summary", h.ServeDashboardSummary)

	r.Route("/stats", func(sr chi.Router) {
		sr.Get("/", h.stats.List)
		sr.Post("/", h.stats.Create)
		sr.Get("/{id}", h.stats.Get)
		sr.Put("/{id}", h.stats.Update)
		sr.Delete("/{id}", h.stats.Delete)
	})

	r.Route("/charts", func(sr chi.Router) {
		sr.Get("/", h.charts.List)
		sr.Post("/", h.charts.Create)
		sr.Get("/{id}", h.charts.Get)
		sr.Put("/{id}", h.charts.Update)
		sr.Delete("/{id}", h.charts.Delete)
	})

	r.Route("/products", func(sr chi.Router) {
		sr.Get("/", h.products.List)
		sr.Post("/", h.products.Create)
		sr.Get("/{id}", h.products.Get)
		sr.Put("/{id}", h.products.Update)
		sr.Delete("/{id}", h.products.Delete)
	})

	r.Route("/activities", func(sr chi.Router) {
		sr.Get("/", h.activities.List)
		sr.Post("/", h.activities.Create)
		sr.Get("/{id}", h.activities.Get)
		sr.Put("/{id}", h.activities.Update)
		sr.Delete("/{id}", h.activities.Delete)
	})

	// Ingestion posts upsert by natural key instead of inserting.
	r.Route("/geographic", func(sr chi.Router) {
		sr.Get("/", h.geo.List)
		sr.Post("/", h.geo.Upsert("country_code"))
		sr.Get("/{id}", h.geo.Get)
		sr.Delete("/{id}", h.geo.Delete)
	})

	r.Route("/devices", func(sr chi.Router) {
		sr.Get("/", h.devices.List)
		sr.Post("/", h.devices.Upsert("device_type", "browser_name", "os_name"))
		sr.Get("/{id}", h.devices.Get)
		sr.Delete("/{id}", h.devices.Delete)
	})

	r.Route("/notifications", func(sr chi.Router) {
		sr.Get("/", h.notifications.List)
		sr.Post("/", h.notifications.Create)
		sr.Get("/{id}", h.notifications.Get)
		sr.Patch("/{id}/read", h.notifications.PatchConst("is_read", true, "notification"))
		sr.Delete("/{id}", h.notifications.Delete)
	})

	r.Route("/quick-actions", func(sr chi.Router) {
		sr.Get("/", h.ServeQuickActionsList)
		sr.Post("/", h.quickActions.Create)
		sr.Get("/{id}", h.quickActions.Get)
		sr.Put("/{id}", h.quickActions.Update)
		sr.Delete("/{id}", h.quickActions.Delete)
	})

	return r
}
