// internal/domain/models/contact.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContactStatus tracks how far staff have gotten with a contact message.
// The set is flat: any valid status may replace any other.
type ContactStatus string

const (
	ContactStatusNew     ContactStatus = "new"
	ContactStatusRead    ContactStatus = "read"
	ContactStatusReplied ContactStatus = "replied"
)

// ContactStatuses is the full set of allowed contact statuses and the
// single source of truth for validation.
var ContactStatuses = []ContactStatus{
	ContactStatusNew,
	ContactStatusRead,
	ContactStatusReplied,
}

// ParseContactStatus returns the typed status for s, or false if s is
// not in the allowed set.
func ParseContactStatus(s string) (ContactStatus, bool) {
	for _, v := range ContactStatuses {
		if ContactStatus(s) == v {
			return v, true
		}
	}
	return "", false
}

// Contact is a message submitted through the site's contact form.
type Contact struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name    string             `bson:"name" json:"name"`
	Email   string             `bson:"email" json:"email"`
	Phone   string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Subject string             `bson:"subject" json:"subject"`
	Message string             `bson:"message" json:"message"`
	Status  ContactStatus      `bson:"status" json:"status"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
