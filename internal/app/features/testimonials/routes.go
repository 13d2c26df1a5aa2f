// internal/app/features/testimonials/routes.go
package testimonials

import "github.com/go-chi/chi/v5"

// MountRoutes mounts all testimonial routes on the given router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Get("/all", h.ListAll)
	r.Post("/", h.Create)
	r.Put("/{id}/approve", h.Approve)
}
