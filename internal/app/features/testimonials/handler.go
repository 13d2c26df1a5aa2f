// internal/app/features/testimonials/handler.go
package testimonials

import (
	testimonialstore "github.com/vattavada/stayhub/internal/app/store/testimonials"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns all Testimonial handlers.
type Handler struct {
	Store *testimonialstore.Store
	Log   *zap.Logger
}

// NewHandler constructs a Testimonials Handler.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Store: testimonialstore.New(db),
		Log:   logger,
	}
}
