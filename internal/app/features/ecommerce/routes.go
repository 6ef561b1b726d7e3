// internal/app/features/ecommerce/routes.go
package ecommerce

import "github.com/go-chi/chi/v5"

// Routes returns the subrouter mounted under /ecommerce.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Route("/stats", func(sr chi.Router) {
		sr.Get("/", h.stats.List)
		sr.Post("/", h.stats.Create)
		sr.Get("/{id}", h.stats.Get)
		sr.Put("/{id}", h.stats.Update)
		sr.Delete("/{id}", h.stats.Delete)
	})

	r.Route("/products", func(sr chi.Router) {
		sr.Get("/", h.products.List)
		sr.Post("/", h.products.Create)
		sr.Get("/{id}", h.products.Get)
		sr.Put("/{id}", h.products.Update)
		sr.Delete("/{id}", h.products.Delete)
	})

	r.Route("/orders", func(sr chi.Router) {
		sr.Get("/", h.orders.List)
		sr.Post("/", h.orders.Create)
		sr.Get("/{id}", h.orders.Get)
		sr.Put("/{id}", h.orders.Update)
		sr.Delete("/{id}", h.orders.Delete)
	})

	return r
}
