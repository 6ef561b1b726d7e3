// internal/app/features/calendar/routes.go
package calendar

import "github.com/go-chi/chi/v5"

// Routes returns the subrouter mounted under /calendar.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Route("/events", func(sr chi.Router) {
		sr.Get("/", h.ServeEventsList)
		sr.Get("/range/{start}/{end}", h.ServeEventsRange)
		sr.Post("/", h.events.Create)
		sr.Get("/{id}", h.events.Get)
		sr.Put("/{id}", h.events.Update)
		sr.Delete("/{id}", h.events.Delete)
	})

	return r
}
