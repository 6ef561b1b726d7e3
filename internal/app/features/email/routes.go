// internal/app/features/email/routes.go
package email

import "github.com/go-chi/chi/v5"

// Routes returns the subrouter mounted under /email.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Route("/emails", func(sr chi.Router) {
		sr.Get("/", h.emails.List)
		sr.Post("/", h.emails.Create)
		sr.Get("/{id}", h.emails.Get)
		sr.Put("/{id}", h.emails.Update)
		sr.Patch("/{id}/read", h.emails.PatchBool("isRead", "is_read", "email"))
		sr.Patch("/{id}/star", h.emails.PatchBool("isStarred", "is_starred", "email"))
		sr.Delete("/{id}", h.emails.Delete)
	})

	r.Route("/folders", func(sr chi.Router) {
		sr.Get("/", h.folders.List)
		sr.Post("/", h.folders.Create)
		sr.Get("/{id}", h.folders.Get)
		sr.Put("/{id}", h.folders.Update)
		sr.Delete("/{id}", h.folders.Delete)
	})

	return r
}
