// internal/domain/models/property.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Property is a bookable stay listed on the public site.
//
// NOTE:
//   - Capacity is free text as entered by staff (e.g. "4 guests"); the
//     leading number is what the capacity filter compares against.
//   - Deletion is soft: Active flips to false and the document stays in
//     the collection. Public reads only ever see Active properties.
type Property struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title    string             `bson:"title" json:"title"`
	Type     string             `bson:"type" json:"type"` // Cottage | Resort | Homestay | Tent | Farmstay
	Price    int                `bson:"price" json:"price"`
	Capacity string             `bson:"capacity" json:"capacity"`
	Rating   float64            `bson:"rating" json:"rating"`
	Reviews  int                `bson:"reviews" json:"reviews"`

	Image       string   `bson:"image" json:"image"`
	Gallery     []string `bson:"gallery" json:"gallery"`
	Description string   `bson:"description" json:"description"`
	Amenities   []string `bson:"amenities" json:"amenities"`
	Location    string   `bson:"location" json:"location"`
	Attractions []string `bson:"attractions" json:"attractions"`

	RoomCategories []string `bson:"room_categories" json:"room_categories"`
	MinGuests      int      `bson:"min_guests" json:"min_guests"`
	MaxGuests      int      `bson:"max_guests" json:"max_guests"`

	Featured bool `bson:"featured" json:"featured"`
	Active   bool `bson:"active" json:"active"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// PropertyUpdate carries a partial update; nil fields are left untouched.
type PropertyUpdate struct {
	Title          *string   `json:"title"`
	Type           *string   `json:"type"`
	Price          *int      `json:"price"`
	Capacity       *string   `json:"capacity"`
	Rating         *float64  `json:"rating"`
	Reviews        *int      `json:"reviews"`
	Image          *string   `json:"image"`
	Gallery        *[]string `json:"gallery"`
	Description    *string   `json:"description"`
	Amenities      *[]string `json:"amenities"`
	Location       *string   `json:"location"`
	Attractions    *[]string `json:"attractions"`
	RoomCategories *[]string `json:"room_categories"`
	MinGuests      *int      `json:"min_guests"`
	MaxGuests      *int      `json:"max_guests"`
	Featured       *bool     `json:"featured"`
	Active         *bool     `json:"active"`
}
