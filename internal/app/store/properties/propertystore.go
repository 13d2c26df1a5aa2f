package propertystore

import (
	"context"
	"errors"
	"time"

	"github.com/vattavada/stayhub/internal/app/system/normalize"
	"github.com/vattavada/stayhub/internal/app/system/numparse"
	"github.com/vattavada/stayhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no active property matches the given id.
// A malformed id collapses to the same error: the caller asked for
// something that does not exist, and the two cases are indistinguishable
// to the public API.
var ErrNotFound = errors.New("property not found")

var ErrMissingFields = errors.New("title, type, price, and location are required")

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("properties")}
}

// Create inserts a new property after normalizing & validating fields.
// New properties are always active.
func (s *Store) Create(ctx context.Context, p models.Property) (models.Property, error) {
	p.ID = primitive.NewObjectID()
	p.Title = normalize.Name(p.Title)
	p.Type = normalize.Name(p.Type)
	p.Location = normalize.Name(p.Location)
	p.Description = normalize.Text(p.Description)

	if p.Title == "" || p.Type == "" || p.Price <= 0 || p.Location == "" {
		return models.Property{}, ErrMissingFields
	}

	if p.MinGuests == 0 {
		p.MinGuests = 1
	}
	if p.MaxGuests == 0 {
		// Default from the capacity text ("6 guests" -> 6) when given.
		if n, ok := numparse.LeadingInt(p.Capacity); ok && n > 0 {
			p.MaxGuests = n
		} else {
			p.MaxGuests = 4
		}
	}
	if p.Gallery == nil {
		p.Gallery = []string{}
	}
	if p.Amenities == nil {
		p.Amenities = []string{}
	}
	if p.Attractions == nil {
		p.Attractions = []string{}
	}
	if p.RoomCategories == nil {
		p.RoomCategories = []string{}
	}
	p.Active = true

	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, p); err != nil {
		return models.Property{}, err
	}
	return p, nil
}

// GetByID loads an active property by its hex id. Returns ErrNotFound
// for a malformed id, an unknown id, or a soft-deleted property.
func (s *Store) GetByID(ctx context.Context, id string) (*models.Property, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var p models.Property
	if err := s.c.FindOne(ctx, bson.M{"_id": oid, "active": true}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// List returns active properties matching the filter, newest first.
func (s *Store) List(ctx context.Context, f Filter) ([]models.Property, error) {
	return s.find(ctx, f.Query())
}

// Featured returns active properties flagged as featured, newest first.
func (s *Store) Featured(ctx context.Context) ([]models.Property, error) {
	return s.find(ctx, bson.M{"featured": true, "active": true})
}

func (s *Store) find(ctx context.Context, query bson.M) ([]models.Property, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	props := []models.Property{}
	if err := cur.All(ctx, &props); err != nil {
		return nil, err
	}
	return props, nil
}

// Update applies the non-nil fields of upd and returns the updated
// property. Updates are by id only: staff can edit (or reactivate) a
// soft-deleted property.
func (s *Store) Update(ctx context.Context, id string, upd models.PropertyUpdate) (*models.Property, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if upd.Title != nil {
		set["title"] = normalize.Name(*upd.Title)
	}
	if upd.Type != nil {
		set["type"] = normalize.Name(*upd.Type)
	}
	if upd.Price != nil {
		set["price"] = *upd.Price
	}
	if upd.Capacity != nil {
		set["capacity"] = *upd.Capacity
	}
	if upd.Rating != nil {
		set["rating"] = *upd.Rating
	}
	if upd.Reviews != nil {
		set["reviews"] = *upd.Reviews
	}
	if upd.Image != nil {
		set["image"] = *upd.Image
	}
	if upd.Gallery != nil {
		set["gallery"] = *upd.Gallery
	}
	if upd.Description != nil {
		set["description"] = normalize.Text(*upd.Description)
	}
	if upd.Amenities != nil {
		set["amenities"] = *upd.Amenities
	}
	if upd.Location != nil {
		set["location"] = normalize.Name(*upd.Location)
	}
	if upd.Attractions != nil {
		set["attractions"] = *upd.Attractions
	}
	if upd.RoomCategories != nil {
		set["room_categories"] = *upd.RoomCategories
	}
	if upd.MinGuests != nil {
		set["min_guests"] = *upd.MinGuests
	}
	if upd.MaxGuests != nil {
		set["max_guests"] = *upd.MaxGuests
	}
	if upd.Featured != nil {
		set["featured"] = *upd.Featured
	}
	if upd.Active != nil {
		set["active"] = *upd.Active
	}

	var p models.Property
	err = s.c.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// SoftDelete flips active to false. The document and its id persist;
// the property simply disappears from public reads.
func (s *Store) SoftDelete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
		"$set": bson.M{"active": false, "updated_at": time.Now().UTC()},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
