// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

/*
EnsureAll is called at startup. Each ensure* function is idempotent:
CreateMany reuses an index when one with the same name and keys already
exists. Errors are aggregated so every problem is visible and startup
can fail fast.
*/
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	if err := ensureProperties(ctx, db); err != nil {
		problems = append(problems, "properties: "+err.Error())
	}
	if err := ensureExperiences(ctx, db); err != nil {
		problems = append(problems, "experiences: "+err.Error())
	}
	if err := ensureTestimonials(ctx, db); err != nil {
		problems = append(problems, "testimonials: "+err.Error())
	}
	if err := ensureContacts(ctx, db); err != nil {
		problems = append(problems, "contacts: "+err.Error())
	}
	if err := ensureBookingInquiries(ctx, db); err != nil {
		problems = append(problems, "booking_inquiries: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

func ensureProperties(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("properties")
	_, err := c.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			// public list: active scope, newest first
			Keys:    bson.D{{Key: "active", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_properties_active_createdat"),
		},
		{
			// featured list
			Keys:    bson.D{{Key: "active", Value: 1}, {Key: "featured", Value: 1}},
			Options: options.Index().SetName("idx_properties_active_featured"),
		},
		{
			Keys:    bson.D{{Key: "price", Value: 1}},
			Options: options.Index().SetName("idx_properties_price"),
		},
		{
			Keys:    bson.D{{Key: "type", Value: 1}},
			Options: options.Index().SetName("idx_properties_type"),
		},
	})
	return err
}

func ensureExperiences(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("experiences")
	_, err := c.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "active", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_experiences_active_createdat"),
		},
	})
	return err
}

func ensureTestimonials(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("testimonials")
	_, err := c.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "approved", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_testimonials_approved_createdat"),
		},
	})
	return err
}

func ensureContacts(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("contacts")
	_, err := c.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_contacts_createdat"),
		},
	})
	return err
}

func ensureBookingInquiries(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("booking_inquiries")
	_, err := c.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_booking_inquiries_createdat"),
		},
		{
			Keys:    bson.D{{Key: "reference", Value: 1}},
			Options: options.Index().SetName("idx_booking_inquiries_reference"),
		},
	})
	return err
}
