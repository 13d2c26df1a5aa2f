// internal/app/features/contact/contact.go
package contact

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	contactstore "github.com/vattavada/stayhub/internal/app/store/contacts"
	"github.com/vattavada/stayhub/internal/app/system/respond"
	"github.com/vattavada/stayhub/internal/app/system/timeouts"
	"github.com/vattavada/stayhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Submit handles POST /contact/.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	var c models.Contact
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		respond.BadRequest(w, "Invalid request body")
		return
	}

	created, err := h.Store.Create(ctx, c)
	if err != nil {
		if errors.Is(err, contactstore.ErrMissingFields) || errors.Is(err, contactstore.ErrBadEmail) {
			respond.BadRequest(w, err.Error())
			return
		}
		h.Log.Error("failed to create contact message", zap.Error(err))
		respond.ServerError(w, "Failed to submit contact form")
		return
	}
	respond.JSON(w, http.StatusOK, created)
}

// Messages handles GET /contact/messages?limit=.
func (h *Handler) Messages(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	limit := h.DefaultLimit
	if raw := query.Get(r, "limit"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n <= 0 {
			respond.BadRequest(w, "limit must be a positive integer")
			return
		}
		limit = n
	}

	msgs, err := h.Store.List(ctx, limit)
	if err != nil {
		h.Log.Error("failed to list contact messages", zap.Error(err))
		respond.ServerError(w, "Failed to load contact messages")
		return
	}
	respond.JSON(w, http.StatusOK, msgs)
}

// UpdateStatus handles PUT /contact/messages/{id}/status?status=.
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	id := chi.URLParam(r, "id")
	status := query.Get(r, "status")

	c, err := h.Store.UpdateStatus(ctx, id, status)
	if err != nil {
		switch {
		case errors.Is(err, contactstore.ErrBadStatus):
			respond.BadRequest(w, err.Error())
		case errors.Is(err, contactstore.ErrNotFound):
			respond.NotFound(w, "Contact message not found")
		default:
			h.Log.Error("failed to update contact status", zap.Error(err), zap.String("id", id))
			respond.ServerError(w, "Failed to update contact status")
		}
		return
	}
	respond.JSON(w, http.StatusOK, map[string]any{
		"message": "Status updated successfully",
		"contact": c,
	})
}
