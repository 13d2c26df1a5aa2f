// internal/app/features/experiences/experiences.go
package experiences

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	experiencestore "github.com/vattavada/stayhub/internal/app/store/experiences"
	"github.com/vattavada/stayhub/internal/app/system/respond"
	"github.com/vattavada/stayhub/internal/app/system/timeouts"
	"github.com/vattavada/stayhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// List handles GET /experiences/.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	exps, err := h.Store.ListActive(ctx)
	if err != nil {
		h.Log.Error("failed to list experiences", zap.Error(err))
		respond.ServerError(w, "Failed to load experiences")
		return
	}
	respond.JSON(w, http.StatusOK, exps)
}

// Get handles GET /experiences/{id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	id := chi.URLParam(r, "id")
	e, err := h.Store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, experiencestore.ErrNotFound) {
			respond.NotFound(w, "Experience not found")
			return
		}
		h.Log.Error("failed to load experience", zap.Error(err), zap.String("id", id))
		respond.ServerError(w, "Failed to load experience")
		return
	}
	respond.JSON(w, http.StatusOK, e)
}

// Create handles POST /experiences/.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	var e models.Experience
	if err := json.NewDecoder(r.Body).Decode(&e); err != nil {
		respond.BadRequest(w, "Invalid request body")
		return
	}

	created, err := h.Store.Create(ctx, e)
	if err != nil {
		if errors.Is(err, experiencestore.ErrMissingFields) {
			respond.BadRequest(w, err.Error())
			return
		}
		h.Log.Error("failed to create experience", zap.Error(err))
		respond.ServerError(w, "Failed to create experience")
		return
	}
	respond.JSON(w, http.StatusOK, created)
}
