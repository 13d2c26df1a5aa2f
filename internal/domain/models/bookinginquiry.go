// internal/domain/models/bookinginquiry.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BookingStatus tracks the handling of a booking inquiry. The set is
// flat: any valid status may replace any other (no enforced order).
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusContacted BookingStatus = "contacted"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// BookingStatuses is the full set of allowed inquiry statuses and the
// single source of truth for validation.
var BookingStatuses = []BookingStatus{
	BookingStatusPending,
	BookingStatusContacted,
	BookingStatusConfirmed,
	BookingStatusCancelled,
}

// ParseBookingStatus returns the typed status for s, or false if s is
// not in the allowed set.
func ParseBookingStatus(s string) (BookingStatus, bool) {
	for _, v := range BookingStatuses {
		if BookingStatus(s) == v {
			return v, true
		}
	}
	return "", false
}

// BookingInquiry is a request to book a stay, submitted from the site.
// Only name, phone, and guest count are required; everything else is
// whatever the guest chose to share.
type BookingInquiry struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Reference string             `bson:"reference" json:"reference"` // e.g. BK-3F2A9C1D
	Name      string             `bson:"name" json:"name"`
	Phone     string             `bson:"phone" json:"phone"`
	Email     string             `bson:"email,omitempty" json:"email,omitempty"`
	Guests    int                `bson:"guests" json:"guests"`
	Message   string             `bson:"message,omitempty" json:"message,omitempty"`

	PropertyID    string `bson:"property_id,omitempty" json:"property_id,omitempty"`
	PropertyTitle string `bson:"property_title,omitempty" json:"property_title,omitempty"`

	CheckInDate  *time.Time `bson:"check_in_date,omitempty" json:"check_in_date,omitempty"`
	CheckOutDate *time.Time `bson:"check_out_date,omitempty" json:"check_out_date,omitempty"`

	Status BookingStatus `bson:"status" json:"status"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
