package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/vattavada/stayhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// PropertyOpts tweaks the fixture property; zero values fall back to
// sensible defaults.
type PropertyOpts struct {
	Type      string
	Price     int
	Capacity  string
	Location  string
	Featured  bool
	Active    *bool
	CreatedAt time.Time
}

// CreateProperty inserts a test property and returns it with its
// generated ID. Defaults: an active, non-featured Cottage at 2500 for
// "4 guests".
func (f *Fixtures) CreateProperty(ctx context.Context, title string, opts PropertyOpts) models.Property {
	f.t.Helper()

	if opts.Type == "" {
		opts.Type = "Cottage"
	}
	if opts.Price == 0 {
		opts.Price = 2500
	}
	if opts.Capacity == "" {
		opts.Capacity = "4 guests"
	}
	if opts.Location == "" {
		opts.Location = "Vattavada, Munnar"
	}
	active := true
	if opts.Active != nil {
		active = *opts.Active
	}
	createdAt := opts.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	p := models.Property{
		ID:             primitive.NewObjectID(),
		Title:          title,
		Type:           opts.Type,
		Price:          opts.Price,
		Capacity:       opts.Capacity,
		Image:          "https://example.com/image.jpg",
		Gallery:        []string{},
		Description:    "A test property in the hills.",
		Amenities:      []string{"WiFi"},
		Location:       opts.Location,
		Attractions:    []string{},
		RoomCategories: []string{},
		MinGuests:      1,
		MaxGuests:      4,
		Featured:       opts.Featured,
		Active:         active,
		CreatedAt:      createdAt,
		UpdatedAt:      createdAt,
	}

	if _, err := f.db.Collection("properties").InsertOne(ctx, p); err != nil {
		f.t.Fatalf("failed to create test property: %v", err)
	}
	return p
}

// CreateExperience inserts an active test experience.
func (f *Fixtures) CreateExperience(ctx context.Context, title string, price int) models.Experience {
	f.t.Helper()

	now := time.Now().UTC()
	e := models.Experience{
		ID:          primitive.NewObjectID(),
		Title:       title,
		Price:       price,
		Duration:    "2 hours",
		Description: "A test experience.",
		Image:       "https://example.com/exp.jpg",
		Highlights:  []string{"Guide"},
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if _, err := f.db.Collection("experiences").InsertOne(ctx, e); err != nil {
		f.t.Fatalf("failed to create test experience: %v", err)
	}
	return e
}

// CreateTestimonial inserts a testimonial with the given approval state.
func (f *Fixtures) CreateTestimonial(ctx context.Context, name string, approved bool) models.Testimonial {
	f.t.Helper()

	now := time.Now().UTC()
	tm := models.Testimonial{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Location:  "Kochi",
		Rating:    5,
		Text:      "Wonderful stay!",
		Approved:  approved,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := f.db.Collection("testimonials").InsertOne(ctx, tm); err != nil {
		f.t.Fatalf("failed to create test testimonial: %v", err)
	}
	return tm
}

// CreateContact inserts a contact message with status "new".
func (f *Fixtures) CreateContact(ctx context.Context, name string) models.Contact {
	f.t.Helper()

	now := time.Now().UTC()
	c := models.Contact{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Email:     "guest@example.com",
		Subject:   "Availability",
		Message:   "Is the cottage free next weekend?",
		Status:    models.ContactStatusNew,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := f.db.Collection("contacts").InsertOne(ctx, c); err != nil {
		f.t.Fatalf("failed to create test contact: %v", err)
	}
	return c
}

// CreateInquiry inserts a pending booking inquiry.
func (f *Fixtures) CreateInquiry(ctx context.Context, name string) models.BookingInquiry {
	f.t.Helper()

	now := time.Now().UTC()
	b := models.BookingInquiry{
		ID:        primitive.NewObjectID(),
		Reference: "BK-TESTTEST",
		Name:      name,
		Phone:     "9876543210",
		Guests:    2,
		Status:    models.BookingStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := f.db.Collection("booking_inquiries").InsertOne(ctx, b); err != nil {
		f.t.Fatalf("failed to create test inquiry: %v", err)
	}
	return b
}
