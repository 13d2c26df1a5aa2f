// internal/app/features/testimonials/testimonials.go
package testimonials

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	testimonialstore "github.com/vattavada/stayhub/internal/app/store/testimonials"
	"github.com/vattavada/stayhub/internal/app/system/respond"
	"github.com/vattavada/stayhub/internal/app/system/timeouts"
	"github.com/vattavada/stayhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// List handles GET /testimonials/, the public feed of approved
// testimonials.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	tms, err := h.Store.ListApproved(ctx)
	if err != nil {
		h.Log.Error("failed to list testimonials", zap.Error(err))
		respond.ServerError(w, "Failed to load testimonials")
		return
	}
	respond.JSON(w, http.StatusOK, tms)
}

// ListAll handles GET /testimonials/all, the staff view that includes
// entries still awaiting approval.
func (h *Handler) ListAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	tms, err := h.Store.ListAll(ctx)
	if err != nil {
		h.Log.Error("failed to list all testimonials", zap.Error(err))
		respond.ServerError(w, "Failed to load testimonials")
		return
	}
	respond.JSON(w, http.StatusOK, tms)
}

// Create handles POST /testimonials/. Submissions always land
// unapproved.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	var tm models.Testimonial
	if err := json.NewDecoder(r.Body).Decode(&tm); err != nil {
		respond.BadRequest(w, "Invalid request body")
		return
	}

	created, err := h.Store.Create(ctx, tm)
	if err != nil {
		if errors.Is(err, testimonialstore.ErrMissingFields) || errors.Is(err, testimonialstore.ErrBadRating) {
			respond.BadRequest(w, err.Error())
			return
		}
		h.Log.Error("failed to create testimonial", zap.Error(err))
		respond.ServerError(w, "Failed to create testimonial")
		return
	}
	respond.JSON(w, http.StatusOK, created)
}

// Approve handles PUT /testimonials/{id}/approve.
func (h *Handler) Approve(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	id := chi.URLParam(r, "id")
	tm, err := h.Store.Approve(ctx, id)
	if err != nil {
		if errors.Is(err, testimonialstore.ErrNotFound) {
			respond.NotFound(w, "Testimonial not found")
			return
		}
		h.Log.Error("failed to approve testimonial", zap.Error(err), zap.String("id", id))
		respond.ServerError(w, "Failed to approve testimonial")
		return
	}
	respond.JSON(w, http.StatusOK, tm)
}
