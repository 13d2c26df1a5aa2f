package propertystore_test

import (
	"testing"
	"time"

	propertystore "github.com/vattavada/stayhub/internal/app/store/properties"
	"github.com/vattavada/stayhub/internal/domain/models"
	"github.com/vattavada/stayhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func intp(n int) *int { return &n }

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := propertystore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.Property{
		Title:       "Hilltop Cottage",
		Type:        "Cottage",
		Price:       2500,
		Capacity:    "4 guests",
		Image:       "https://example.com/a.jpg",
		Description: "Quiet cottage above the tea gardens.",
		Location:    "Vattavada, Munnar",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.ID == primitive.NilObjectID {
		t.Error("expected ID to be assigned")
	}
	if !created.Active {
		t.Error("new properties must be active")
	}
	if created.MinGuests != 1 || created.MaxGuests != 4 {
		t.Errorf("guest defaults: got %d/%d, want 1/4", created.MinGuests, created.MaxGuests)
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be set")
	}
}

func TestStore_Create_MaxGuestsFromCapacity(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := propertystore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	cases := []struct {
		capacity string
		want     int
	}{
		{"6 guests", 6},
		{"2 guests", 2},
		{"many", 4}, // no leading number, fall back
	}
	for _, tc := range cases {
		created, err := store.Create(ctx, models.Property{
			Title:    "Capacity " + tc.capacity,
			Type:     "Cottage",
			Price:    2500,
			Capacity: tc.capacity,
			Location: "Vattavada",
		})
		if err != nil {
			t.Fatalf("Create(%q) failed: %v", tc.capacity, err)
		}
		if created.MaxGuests != tc.want {
			t.Errorf("capacity %q: max guests = %d, want %d", tc.capacity, created.MaxGuests, tc.want)
		}
	}
}

func TestStore_Create_MissingFields(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := propertystore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.Create(ctx, models.Property{Title: "No type or price"})
	if err == nil {
		t.Fatal("expected error for missing required fields")
	}
}

func TestStore_GetByID_MalformedID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := propertystore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.GetByID(ctx, "not-a-hex-id")
	if err != propertystore.ErrNotFound {
		t.Errorf("malformed id: got %v, want ErrNotFound", err)
	}
}

func TestStore_SoftDelete_HidesFromReads(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := propertystore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	p := fixtures.CreateProperty(ctx, "Doomed Cottage", testutil.PropertyOpts{})

	if err := store.SoftDelete(ctx, p.ID.Hex()); err != nil {
		t.Fatalf("SoftDelete failed: %v", err)
	}

	// Gone from by-id reads.
	if _, err := store.GetByID(ctx, p.ID.Hex()); err != propertystore.ErrNotFound {
		t.Errorf("GetByID after delete: got %v, want ErrNotFound", err)
	}

	// Gone from list reads.
	props, err := store.List(ctx, propertystore.Filter{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	for _, got := range props {
		if got.ID == p.ID {
			t.Error("soft-deleted property appeared in list results")
		}
	}

	// Document itself persists with active=false.
	raw, err := db.Collection("properties").CountDocuments(ctx, bson.M{"_id": p.ID})
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if raw != 1 {
		t.Errorf("document count after soft delete: got %d, want 1", raw)
	}
}

func TestStore_SoftDelete_UnknownID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := propertystore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := store.SoftDelete(ctx, primitive.NewObjectID().Hex()); err != propertystore.ErrNotFound {
		t.Errorf("unknown id: got %v, want ErrNotFound", err)
	}
}

func TestStore_List_PriceRange(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := propertystore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateProperty(ctx, "Cheap Tent", testutil.PropertyOpts{Type: "Tent", Price: 1800})
	mid := fixtures.CreateProperty(ctx, "Mid Cottage", testutil.PropertyOpts{Price: 2500})
	fixtures.CreateProperty(ctx, "Posh Resort", testutil.PropertyOpts{Type: "Resort", Price: 5500})

	props, err := store.List(ctx, propertystore.Filter{MinPrice: intp(2000), MaxPrice: intp(3000)})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(props) != 1 || props[0].ID != mid.ID {
		t.Errorf("price range [2000,3000]: got %d results, want only %q", len(props), mid.Title)
	}
}

func TestStore_List_TypeCaseInsensitive(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := propertystore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateProperty(ctx, "Camp", testutil.PropertyOpts{Type: "Tent"})
	fixtures.CreateProperty(ctx, "Cottage A", testutil.PropertyOpts{Type: "Cottage"})

	props, err := store.List(ctx, propertystore.Filter{Type: "tent"})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(props) != 1 || props[0].Type != "Tent" {
		t.Errorf("type filter: got %d results, want the one Tent", len(props))
	}

	// "all" is a sentinel, not a type.
	all, err := store.List(ctx, propertystore.Filter{Type: "all"})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("type=all: got %d results, want 2", len(all))
	}
}

func TestStore_List_Capacity(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := propertystore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	four := fixtures.CreateProperty(ctx, "Four Guests", testutil.PropertyOpts{Capacity: "4 guests"})
	fixtures.CreateProperty(ctx, "Two Guests", testutil.PropertyOpts{Capacity: "2 guests"})
	vague := fixtures.CreateProperty(ctx, "Group Hall", testutil.PropertyOpts{Capacity: "many"})

	props, err := store.List(ctx, propertystore.Filter{Capacity: intp(4)})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	ids := map[primitive.ObjectID]bool{}
	for _, p := range props {
		ids[p.ID] = true
	}
	if !ids[four.ID] {
		t.Error("capacity=4 should include the 4-guest property")
	}
	if !ids[vague.ID] {
		t.Error("a capacity string with no leading integer must never be excluded by the capacity filter")
	}
	if len(props) != 2 {
		t.Errorf("capacity=4: got %d results, want 2", len(props))
	}

	// capacity=5 excludes the 4-guest property too.
	props, err = store.List(ctx, propertystore.Filter{Capacity: intp(5)})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(props) != 1 || props[0].ID != vague.ID {
		t.Errorf("capacity=5: got %d results, want only the unparseable one", len(props))
	}
}

func TestStore_List_SearchOverTitleDescriptionLocation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := propertystore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	byLoc := fixtures.CreateProperty(ctx, "Plain Cottage", testutil.PropertyOpts{Location: "Misty Valley"})
	fixtures.CreateProperty(ctx, "Other Cottage", testutil.PropertyOpts{Location: "Town Center"})

	props, err := store.List(ctx, propertystore.Filter{Search: "misty"})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(props) != 1 || props[0].ID != byLoc.ID {
		t.Errorf("search should match location case-insensitively, got %d results", len(props))
	}
}

func TestStore_List_NewestFirst(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := propertystore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	base := time.Now().UTC().Add(-time.Hour)
	fixtures.CreateProperty(ctx, "Oldest", testutil.PropertyOpts{CreatedAt: base})
	fixtures.CreateProperty(ctx, "Middle", testutil.PropertyOpts{CreatedAt: base.Add(time.Minute)})
	fixtures.CreateProperty(ctx, "Newest", testutil.PropertyOpts{CreatedAt: base.Add(2 * time.Minute)})

	props, err := store.List(ctx, propertystore.Filter{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(props) != 3 {
		t.Fatalf("got %d results, want 3", len(props))
	}
	if props[0].Title != "Newest" || props[2].Title != "Oldest" {
		t.Errorf("expected newest-first ordering, got %q, %q, %q", props[0].Title, props[1].Title, props[2].Title)
	}
}

func TestStore_Featured(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := propertystore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	feat := fixtures.CreateProperty(ctx, "Featured One", testutil.PropertyOpts{Featured: true})
	fixtures.CreateProperty(ctx, "Ordinary", testutil.PropertyOpts{})
	inactive := false
	fixtures.CreateProperty(ctx, "Deleted Featured", testutil.PropertyOpts{Featured: true, Active: &inactive})

	props, err := store.Featured(ctx)
	if err != nil {
		t.Fatalf("Featured failed: %v", err)
	}
	if len(props) != 1 || props[0].ID != feat.ID {
		t.Errorf("featured: got %d results, want only the active featured one", len(props))
	}
}

func TestStore_Update_PartialFields(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := propertystore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	p := fixtures.CreateProperty(ctx, "Before", testutil.PropertyOpts{Price: 2500})

	newPrice := 3000
	updated, err := store.Update(ctx, p.ID.Hex(), models.PropertyUpdate{Price: &newPrice})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if updated.Price != 3000 {
		t.Errorf("price: got %d, want 3000", updated.Price)
	}
	if updated.Title != "Before" {
		t.Errorf("title should be untouched, got %q", updated.Title)
	}
	if !updated.UpdatedAt.After(p.UpdatedAt) {
		t.Error("expected UpdatedAt to advance")
	}
}
