package testimonialstore

import (
	"context"
	"errors"
	"time"

	"github.com/vattavada/stayhub/internal/app/system/htmlsanitize"
	"github.com/vattavada/stayhub/internal/app/system/normalize"
	"github.com/vattavada/stayhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no testimonial matches the given id,
// including malformed ids.
var ErrNotFound = errors.New("testimonial not found")

var (
	ErrMissingFields = errors.New("name, location, and text are required")
	ErrBadRating     = errors.New("rating must be between 1 and 5")
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("testimonials")}
}

// Create inserts a new testimonial. Submissions come straight from the
// public site, so the free text is sanitized and the testimonial starts
// unapproved regardless of what the payload says.
func (s *Store) Create(ctx context.Context, tm models.Testimonial) (models.Testimonial, error) {
	tm.ID = primitive.NewObjectID()
	tm.Name = normalize.Name(tm.Name)
	tm.Location = normalize.Name(tm.Location)
	tm.Text = htmlsanitize.Sanitize(normalize.Text(tm.Text))

	if tm.Name == "" || tm.Location == "" || tm.Text == "" {
		return models.Testimonial{}, ErrMissingFields
	}
	if tm.Rating < 1 || tm.Rating > 5 {
		return models.Testimonial{}, ErrBadRating
	}
	tm.Approved = false

	now := time.Now().UTC()
	tm.CreatedAt = now
	tm.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, tm); err != nil {
		return models.Testimonial{}, err
	}
	return tm, nil
}

// ListApproved returns approved testimonials, newest first.
func (s *Store) ListApproved(ctx context.Context) ([]models.Testimonial, error) {
	return s.list(ctx, bson.M{"approved": true})
}

// ListAll returns every testimonial, approved or not, newest first.
// Admin dashboard use only.
func (s *Store) ListAll(ctx context.Context) ([]models.Testimonial, error) {
	return s.list(ctx, bson.M{})
}

func (s *Store) list(ctx context.Context, query bson.M) ([]models.Testimonial, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	tms := []models.Testimonial{}
	if err := cur.All(ctx, &tms); err != nil {
		return nil, err
	}
	return tms, nil
}

// Approve marks a testimonial approved and returns it. Approving an
// already-approved testimonial is a no-op apart from updated_at.
func (s *Store) Approve(ctx context.Context, id string) (*models.Testimonial, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var tm models.Testimonial
	err = s.c.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"approved": true, "updated_at": time.Now().UTC()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&tm)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &tm, nil
}
