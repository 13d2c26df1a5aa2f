// internal/app/features/properties/handler.go
package properties

import (
	propertystore "github.com/vattavada/stayhub/internal/app/store/properties"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns all Property handlers.
type Handler struct {
	Store *propertystore.Store
	Log   *zap.Logger
}

// NewHandler constructs a Properties Handler.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Store: propertystore.New(db),
		Log:   logger,
	}
}
