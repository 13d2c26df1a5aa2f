// internal/app/features/bookings/handler.go
package bookings

import (
	bookingstore "github.com/vattavada/stayhub/internal/app/store/bookings"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns all BookingInquiry handlers.
type Handler struct {
	Store *bookingstore.Store
	// DefaultLimit caps inquiry listings when the request does not
	// carry its own limit.
	DefaultLimit int64
	Log          *zap.Logger
}

// NewHandler constructs a Bookings Handler.
func NewHandler(db *mongo.Database, defaultLimit int64, logger *zap.Logger) *Handler {
	return &Handler{
		Store:        bookingstore.New(db),
		DefaultLimit: defaultLimit,
		Log:          logger,
	}
}
