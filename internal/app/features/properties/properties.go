// internal/app/features/properties/properties.go
package properties

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	propertystore "github.com/vattavada/stayhub/internal/app/store/properties"
	"github.com/vattavada/stayhub/internal/app/system/respond"
	"github.com/vattavada/stayhub/internal/app/system/timeouts"
	"github.com/vattavada/stayhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// intParam reads an optional integer query parameter. Absent or blank
// values return nil; a non-numeric value is an error.
func intParam(r *http.Request, name string) (*int, error) {
	raw := query.Get(r, name)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%s must be an integer", name)
	}
	return &n, nil
}

// filterFromQuery builds the store filter from list query parameters.
func filterFromQuery(r *http.Request) (propertystore.Filter, error) {
	f := propertystore.Filter{
		Type:   query.Get(r, "type"),
		Search: query.Search(r, "search"),
	}
	var err error
	if f.MinPrice, err = intParam(r, "min_price"); err != nil {
		return f, err
	}
	if f.MaxPrice, err = intParam(r, "max_price"); err != nil {
		return f, err
	}
	if f.Capacity, err = intParam(r, "capacity"); err != nil {
		return f, err
	}
	return f, nil
}

// List handles GET /properties/ with optional type, price, capacity,
// and search filters.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	f, err := filterFromQuery(r)
	if err != nil {
		respond.BadRequest(w, err.Error())
		return
	}

	props, err := h.Store.List(ctx, f)
	if err != nil {
		h.Log.Error("failed to list properties", zap.Error(err))
		respond.ServerError(w, "Failed to load properties")
		return
	}
	respond.JSON(w, http.StatusOK, props)
}

// SearchFilter handles GET /properties/search/filter, an alias of List
// that takes the search text as "q".
func (h *Handler) SearchFilter(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	f, err := filterFromQuery(r)
	if err != nil {
		respond.BadRequest(w, err.Error())
		return
	}
	f.Search = query.Search(r, "q")

	props, err := h.Store.List(ctx, f)
	if err != nil {
		h.Log.Error("failed to search properties", zap.Error(err))
		respond.ServerError(w, "Failed to load properties")
		return
	}
	respond.JSON(w, http.StatusOK, props)
}

// Featured handles GET /properties/featured.
func (h *Handler) Featured(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	props, err := h.Store.Featured(ctx)
	if err != nil {
		h.Log.Error("failed to list featured properties", zap.Error(err))
		respond.ServerError(w, "Failed to load properties")
		return
	}
	respond.JSON(w, http.StatusOK, props)
}

// Get handles GET /properties/{id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	id := chi.URLParam(r, "id")
	p, err := h.Store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, propertystore.ErrNotFound) {
			respond.NotFound(w, "Property not found")
			return
		}
		h.Log.Error("failed to load property", zap.Error(err), zap.String("id", id))
		respond.ServerError(w, "Failed to load property")
		return
	}
	respond.JSON(w, http.StatusOK, p)
}

// Create handles POST /properties/.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	var p models.Property
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		respond.BadRequest(w, "Invalid request body")
		return
	}

	created, err := h.Store.Create(ctx, p)
	if err != nil {
		if errors.Is(err, propertystore.ErrMissingFields) {
			respond.BadRequest(w, err.Error())
			return
		}
		h.Log.Error("failed to create property", zap.Error(err))
		respond.ServerError(w, "Failed to create property")
		return
	}
	respond.JSON(w, http.StatusOK, created)
}

// Update handles PUT /properties/{id}. Only the fields present in the
// body are changed.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	var upd models.PropertyUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		respond.BadRequest(w, "Invalid request body")
		return
	}

	id := chi.URLParam(r, "id")
	p, err := h.Store.Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, propertystore.ErrNotFound) {
			respond.NotFound(w, "Property not found")
			return
		}
		h.Log.Error("failed to update property", zap.Error(err), zap.String("id", id))
		respond.ServerError(w, "Failed to update property")
		return
	}
	respond.JSON(w, http.StatusOK, p)
}

// Delete handles DELETE /properties/{id}. The property is soft-deleted
// and disappears from listings; the document itself stays.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	id := chi.URLParam(r, "id")
	if err := h.Store.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, propertystore.ErrNotFound) {
			respond.NotFound(w, "Property not found")
			return
		}
		h.Log.Error("failed to delete property", zap.Error(err), zap.String("id", id))
		respond.ServerError(w, "Failed to delete property")
		return
	}
	respond.JSON(w, http.StatusOK, map[string]string{"message": "Property deleted successfully"})
}
