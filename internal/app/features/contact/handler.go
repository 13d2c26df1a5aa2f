// internal/app/features/contact/handler.go
package contact

import (
	contactstore "github.com/vattavada/stayhub/internal/app/store/contacts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns all Contact handlers.
type Handler struct {
	Store *contactstore.Store
	// DefaultLimit caps message listings when the request does not
	// carry its own limit.
	DefaultLimit int64
	Log          *zap.Logger
}

// NewHandler constructs a Contact Handler.
func NewHandler(db *mongo.Database, defaultLimit int64, logger *zap.Logger) *Handler {
	return &Handler{
		Store:        contactstore.New(db),
		DefaultLimit: defaultLimit,
		Log:          logger,
	}
}
