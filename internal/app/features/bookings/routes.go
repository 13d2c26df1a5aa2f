// internal/app/features/bookings/routes.go
package bookings

import "github.com/go-chi/chi/v5"

// MountRoutes mounts all booking-inquiry routes on the given router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/inquiry", h.Submit)
	r.Get("/inquiries", h.List)
	r.Get("/inquiries/{id}", h.Get)
	r.Put("/inquiries/{id}/status", h.UpdateStatus)
}
