package bookingstore

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dalemusser/waffle/pantry/validate"
	"github.com/google/uuid"
	"github.com/vattavada/stayhub/internal/app/system/htmlsanitize"
	"github.com/vattavada/stayhub/internal/app/system/normalize"
	"github.com/vattavada/stayhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no inquiry matches the given id,
// including malformed ids.
var ErrNotFound = errors.New("inquiry not found")

// ErrBadStatus is returned when a status update names a value outside
// the allowed set. Distinct from ErrNotFound so the route layer can
// answer 400 rather than 404.
var ErrBadStatus = errors.New(`status must be "pending"|"contacted"|"confirmed"|"cancelled"`)

var (
	ErrMissingFields = errors.New("name, phone, and guest count are required")
	ErrBadEmail      = errors.New("email, when given, must be valid")
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("booking_inquiries")}
}

// newReference builds a short staff-facing code for an inquiry,
// e.g. "BK-3F2A9C1D".
func newReference() string {
	return "BK-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}

// Create inserts a new booking inquiry. Only name, phone, and guest
// count are required; everything else is optional. Every inquiry starts
// pending and gets a reference code staff can quote back to the guest.
func (s *Store) Create(ctx context.Context, b models.BookingInquiry) (models.BookingInquiry, error) {
	b.ID = primitive.NewObjectID()
	b.Reference = newReference()
	b.Name = normalize.Name(b.Name)
	b.Phone = normalize.Phone(b.Phone)
	b.Email = normalize.Email(b.Email)
	b.Message = htmlsanitize.Sanitize(normalize.Text(b.Message))

	if b.Name == "" || b.Phone == "" || b.Guests <= 0 {
		return models.BookingInquiry{}, ErrMissingFields
	}
	if b.Email != "" && !validate.SimpleEmailValid(b.Email) {
		return models.BookingInquiry{}, ErrBadEmail
	}
	b.Status = models.BookingStatusPending

	now := time.Now().UTC()
	b.CreatedAt = now
	b.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, b); err != nil {
		return models.BookingInquiry{}, err
	}
	return b, nil
}

// List returns inquiries, newest first, capped at limit.
func (s *Store) List(ctx context.Context, limit int64) ([]models.BookingInquiry, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	inqs := []models.BookingInquiry{}
	if err := cur.All(ctx, &inqs); err != nil {
		return nil, err
	}
	return inqs, nil
}

// GetByID loads an inquiry by its hex id.
func (s *Store) GetByID(ctx context.Context, id string) (*models.BookingInquiry, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var b models.BookingInquiry
	if err := s.c.FindOne(ctx, bson.M{"_id": oid}).Decode(&b); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

// UpdateStatus validates the status against the allowed set, applies
// it, and returns the updated inquiry. An invalid status leaves the
// stored inquiry untouched.
func (s *Store) UpdateStatus(ctx context.Context, id, status string) (*models.BookingInquiry, error) {
	st, ok := models.ParseBookingStatus(status)
	if !ok {
		return nil, ErrBadStatus
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var b models.BookingInquiry
	err = s.c.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"status": st, "updated_at": time.Now().UTC()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&b)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}
