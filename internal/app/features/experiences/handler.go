// internal/app/features/experiences/handler.go
package experiences

import (
	experiencestore "github.com/vattavada/stayhub/internal/app/store/experiences"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns all Experience handlers.
type Handler struct {
	Store *experiencestore.Store
	Log   *zap.Logger
}

// NewHandler constructs an Experiences Handler.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Store: experiencestore.New(db),
		Log:   logger,
	}
}
