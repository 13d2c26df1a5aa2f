// internal/app/features/contact/routes.go
package contact

import "github.com/go-chi/chi/v5"

// MountRoutes mounts all contact routes on the given router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/", h.Submit)
	r.Get("/messages", h.Messages)
	r.Put("/messages/{id}/status", h.UpdateStatus)
}
