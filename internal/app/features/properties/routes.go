// internal/app/features/properties/routes.go
package properties

import "github.com/go-chi/chi/v5"

// MountRoutes mounts all property routes on the given router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/featured", h.Featured)
	r.Get("/search/filter", h.SearchFilter)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}
