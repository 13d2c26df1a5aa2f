// internal/domain/models/testimonial.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Testimonial is guest feedback shown on the site once approved.
// Submissions start unapproved and only appear publicly after an admin
// approves them; approval is one-way.
type Testimonial struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name     string             `bson:"name" json:"name"`
	Location string             `bson:"location" json:"location"`
	Rating   int                `bson:"rating" json:"rating"` // 1..5
	Text     string             `bson:"text" json:"text"`
	Image    string             `bson:"image,omitempty" json:"image,omitempty"`
	Approved bool               `bson:"approved" json:"approved"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
