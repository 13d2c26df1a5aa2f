// internal/domain/models/experience.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Experience is a guided activity guests can add to a stay.
type Experience struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Price       int                `bson:"price" json:"price"`
	Duration    string             `bson:"duration" json:"duration"` // e.g. "4 hours"
	Description string             `bson:"description" json:"description"`
	Image       string             `bson:"image" json:"image"`
	Highlights  []string           `bson:"highlights" json:"highlights"`
	Active      bool               `bson:"active" json:"active"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
