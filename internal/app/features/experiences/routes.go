// internal/app/features/experiences/routes.go
package experiences

import "github.com/go-chi/chi/v5"

// MountRoutes mounts all experience routes on the given router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
}
