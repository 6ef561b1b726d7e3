// internal/app/features/crm/routes.go
package crm

import "github.com/go-chi/chi/v5"

// Routes returns the subrouter mounted under /crm.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Route("/stats", func(sr chi.Router) {
		sr.Get("/", h.stats.List)
		sr.Post("/", h.stats.Create)
		sr.Get("/{id}", h.stats.Get)
		sr.Put("/{id}", h.stats.Update)
		sr.Delete("/{id}", h.stats.Delete)
	})

	r.Route("/funnel", func(sr chi.Router) {
		sr.Get("/", h.funnel.List)
		sr.Post("/", h.funnel.Create)
		sr.Get("/{id}", h.funnel.Get)
		sr.Put("/{id}", h.funnel.Update)
		sr.Delete("/{id}", h.funnel.Delete)
	})

	r.Route("/customers", func(sr chi.Router) {
		sr.Get("/", h.customers.List)
		sr.Post("/", h.customers.Create)
		sr.Get("/{id}", h.customers.Get)
		sr.Put("/{id}", h.customers.Update)
		sr.Delete("/{id}", h.customers.Delete)
	})

	r.Route("/activities", func(sr chi.Router) {
		sr.Get("/", h.activities.List)
		sr.Post("/", h.activities.Create)
		sr.Get("/{id}", h.activities.Get)
		sr.Put("/{id}", h.activities.Update)
		sr.Delete("/{id}", h.activities.Delete)
	})

	return r
}
