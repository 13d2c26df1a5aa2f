package experiencestore

import (
	"context"
	"errors"
	"time"

	"github.com/vattavada/stayhub/internal/app/system/normalize"
	"github.com/vattavada/stayhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no active experience matches the given
// id, including malformed ids.
var ErrNotFound = errors.New("experience not found")

var ErrMissingFields = errors.New("title, price, and description are required")

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("experiences")}
}

// Create inserts a new experience. New experiences are active
// immediately; there is no approval step.
func (s *Store) Create(ctx context.Context, e models.Experience) (models.Experience, error) {
	e.ID = primitive.NewObjectID()
	e.Title = normalize.Name(e.Title)
	e.Description = normalize.Text(e.Description)

	if e.Title == "" || e.Price <= 0 || e.Description == "" {
		return models.Experience{}, ErrMissingFields
	}
	if e.Highlights == nil {
		e.Highlights = []string{}
	}
	e.Active = true

	now := time.Now().UTC()
	e.CreatedAt = now
	e.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, e); err != nil {
		return models.Experience{}, err
	}
	return e, nil
}

// ListActive returns active experiences, newest first.
func (s *Store) ListActive(ctx context.Context) ([]models.Experience, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{"active": true}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	exps := []models.Experience{}
	if err := cur.All(ctx, &exps); err != nil {
		return nil, err
	}
	return exps, nil
}

// GetByID loads an active experience by its hex id.
func (s *Store) GetByID(ctx context.Context, id string) (*models.Experience, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var e models.Experience
	if err := s.c.FindOne(ctx, bson.M{"_id": oid, "active": true}).Decode(&e); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}
