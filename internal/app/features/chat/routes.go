// internal/app/features/chat/routes.go
package chat

import "github.com/go-chi/chi/v5"

// Routes returns the subrouter mounted under /chat.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Route("/contacts", func(sr chi.Router) {
		sr.Get("/", h.contacts.List)
		sr.Post("/", h.contacts.Create)
		sr.Get("/{id}", h.contacts.Get)
		sr.Put("/{id}", h.contacts.Update)
		sr.Patch("/{id}/status", h.contacts.PatchEnum("status", "status", validPresence, "contact"))
		sr.Delete("/{id}", h.contacts.Delete)
		sr.Get("/{id}/messages", h.ServeContactMessages)
	})

	r.Route("/messages", func(sr chi.Router) {
		sr.Get("/", h.messages.List)
		sr.Post("/", h.messages.Create)
		sr.Get("/{id}", h.messages.Get)
		sr.Put("/{id}", h.messages.Update)
		sr.Delete("/{id}", h.messages.Delete)
	})

	return r
}
