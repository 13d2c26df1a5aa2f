// internal/app/features/bookings/bookings.go
package bookings

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	bookingstore "github.com/vattavada/stayhub/internal/app/store/bookings"
	"github.com/vattavada/stayhub/internal/app/system/respond"
	"github.com/vattavada/stayhub/internal/app/system/timeouts"
	"github.com/vattavada/stayhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// inquiryRequest is the wire form of a booking inquiry. Dates arrive
// as ISO strings from the frontend and are converted here.
type inquiryRequest struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Guests        int    `json:"guests"`
	Message       string `json:"message"`
	PropertyID    string `json:"property_id"`
	PropertyTitle string `json:"property_title"`
	CheckInDate   string `json:"check_in_date"`
	CheckOutDate  string `json:"check_out_date"`
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// parseDate converts an ISO-8601 string to a timestamp. Unparseable
// input degrades to nil rather than failing the inquiry; guests type
// dates by hand.
func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return &t
		}
	}
	return nil
}

// Submit handles POST /bookings/inquiry.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	var req inquiryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w, "Invalid request body")
		return
	}

	inq := models.BookingInquiry{
		Name:          req.Name,
		Phone:         req.Phone,
		Email:         req.Email,
		Guests:        req.Guests,
		Message:       req.Message,
		PropertyID:    req.PropertyID,
		PropertyTitle: req.PropertyTitle,
		CheckInDate:   parseDate(req.CheckInDate),
		CheckOutDate:  parseDate(req.CheckOutDate),
	}

	created, err := h.Store.Create(ctx, inq)
	if err != nil {
		if errors.Is(err, bookingstore.ErrMissingFields) || errors.Is(err, bookingstore.ErrBadEmail) {
			respond.BadRequest(w, err.Error())
			return
		}
		h.Log.Error("failed to create booking inquiry", zap.Error(err))
		respond.ServerError(w, "Failed to submit inquiry")
		return
	}
	respond.JSON(w, http.StatusOK, created)
}

// List handles GET /bookings/inquiries?limit=.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
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

	inqs, err := h.Store.List(ctx, limit)
	if err != nil {
		h.Log.Error("failed to list booking inquiries", zap.Error(err))
		respond.ServerError(w, "Failed to load inquiries")
		return
	}
	respond.JSON(w, http.StatusOK, inqs)
}

// Get handles GET /bookings/inquiries/{id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	id := chi.URLParam(r, "id")
	inq, err := h.Store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingstore.ErrNotFound) {
			respond.NotFound(w, "Inquiry not found")
			return
		}
		h.Log.Error("failed to load booking inquiry", zap.Error(err), zap.String("id", id))
		respond.ServerError(w, "Failed to load inquiry")
		return
	}
	respond.JSON(w, http.StatusOK, inq)
}

// UpdateStatus handles PUT /bookings/inquiries/{id}/status?status=.
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	id := chi.URLParam(r, "id")
	status := query.Get(r, "status")

	inq, err := h.Store.UpdateStatus(ctx, id, status)
	if err != nil {
		switch {
		case errors.Is(err, bookingstore.ErrBadStatus):
			respond.BadRequest(w, err.Error())
		case errors.Is(err, bookingstore.ErrNotFound):
			respond.NotFound(w, "Inquiry not found")
		default:
			h.Log.Error("failed to update inquiry status", zap.Error(err), zap.String("id", id))
			respond.ServerError(w, "Failed to update inquiry status")
		}
		return
	}
	respond.JSON(w, http.StatusOK, map[string]any{
		"message": "Status updated successfully",
		"inquiry": inq,
	})
}
