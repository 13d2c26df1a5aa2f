package contactstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/waffle/pantry/validate"
	"github.com/vattavada/stayhub/internal/app/system/htmlsanitize"
	"github.com/vattavada/stayhub/internal/app/system/normalize"
	"github.com/vattavada/stayhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no contact message matches the given id,
// including malformed ids.
var ErrNotFound = errors.New("contact message not found")

// ErrBadStatus is returned when a status update names a value outside
// the allowed set. Distinct from ErrNotFound so the route layer can
// answer 400 rather than 404.
var ErrBadStatus = errors.New(`status must be "new"|"read"|"replied"`)

var (
	ErrMissingFields = errors.New("name, subject, and message are required")
	ErrBadEmail      = errors.New("a valid email is required")
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("contacts")}
}

// Create inserts a new contact message after normalizing & validating
// fields. Messages always start with status "new".
func (s *Store) Create(ctx context.Context, c models.Contact) (models.Contact, error) {
	c.ID = primitive.NewObjectID()
	c.Name = normalize.Name(c.Name)
	c.Email = normalize.Email(c.Email)
	c.Phone = normalize.Phone(c.Phone)
	c.Subject = htmlsanitize.Sanitize(normalize.Text(c.Subject))
	c.Message = htmlsanitize.Sanitize(normalize.Text(c.Message))

	if c.Name == "" || c.Subject == "" || c.Message == "" {
		return models.Contact{}, ErrMissingFields
	}
	if !validate.SimpleEmailValid(c.Email) {
		return models.Contact{}, ErrBadEmail
	}
	c.Status = models.ContactStatusNew

	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, c); err != nil {
		return models.Contact{}, err
	}
	return c, nil
}

// List returns contact messages, newest first, capped at limit.
func (s *Store) List(ctx context.Context, limit int64) ([]models.Contact, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	msgs := []models.Contact{}
	if err := cur.All(ctx, &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}

// UpdateStatus validates the status against the allowed set, applies
// it, and returns the updated message. An invalid status leaves the
// stored message untouched.
func (s *Store) UpdateStatus(ctx context.Context, id, status string) (*models.Contact, error) {
	st, ok := models.ParseContactStatus(status)
	if !ok {
		return nil, ErrBadStatus
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var c models.Contact
	err = s.c.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"status": st, "updated_at": time.Now().UTC()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}
