package contactstore

import (
	"errors"
	"strings"
	"testing"

	"github.com/vattavada/stayhub/internal/domain/models"
	"github.com/vattavada/stayhub/internal/testutil"
)

func TestCreateContact(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	s := New(db)
	got, err := s.Create(ctx, models.Contact{
		Name:    "  Priya Nair  ",
		Email:   "Priya@Example.COM",
		Subject: "Availability in December",
		Message: "Is the cottage free over the holidays?",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if got.Status != models.ContactStatusNew {
		t.Errorf("status = %q, want new", got.Status)
	}
	if got.Name != "Priya Nair" {
		t.Errorf("name = %q, want trimmed", got.Name)
	}
	if got.Email != "priya@example.com" {
		t.Errorf("email = %q, want lowercased", got.Email)
	}
}

func TestCreateContactRejectsBadInput(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	s := New(db)
	cases := []models.Contact{
		{Email: "a@b.com", Subject: "Hi", Message: "Hello"},
		{Name: "Priya", Email: "a@b.com", Message: "Hello"},
		{Name: "Priya", Email: "a@b.com", Subject: "Hi"},
		{Name: "Priya", Email: "not-an-email", Subject: "Hi", Message: "Hello"},
		{Name: "Priya", Subject: "Hi", Message: "Hello"},
	}
	for _, c := range cases {
		if _, err := s.Create(ctx, c); err == nil {
			t.Errorf("Create(%+v) should fail", c)
		}
	}
}

func TestCreateContactStripsMarkup(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	s := New(db)
	got, err := s.Create(ctx, models.Contact{
		Name:    "Priya",
		Email:   "a@b.com",
		Subject: "Hi",
		Message: `Hello <script>alert("x")</script> there`,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if strings.Contains(got.Message, "<script>") {
		t.Errorf("message = %q, script tag survived sanitization", got.Message)
	}
}

func TestUpdateStatus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	c := fx.CreateContact(ctx, "Priya Nair")

	s := New(db)
	got, err := s.UpdateStatus(ctx, c.ID.Hex(), "replied")
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if got.Status != models.ContactStatusReplied {
		t.Errorf("status = %q, want replied", got.Status)
	}
}

func TestUpdateStatusRejectsUnknownValue(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	c := fx.CreateContact(ctx, "Priya Nair")

	s := New(db)
	if _, err := s.UpdateStatus(ctx, c.ID.Hex(), "archived"); !errors.Is(err, ErrBadStatus) {
		t.Fatalf("err = %v, want ErrBadStatus", err)
	}
}

func TestUpdateStatusUnknownID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	s := New(db)
	if _, err := s.UpdateStatus(ctx, "64b000000000000000000000", "read"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if _, err := s.UpdateStatus(ctx, "junk", "read"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("malformed id err = %v, want ErrNotFound", err)
	}
}

func TestListHonorsLimit(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	for i := 0; i < 3; i++ {
		fx.CreateContact(ctx, "Guest")
	}

	s := New(db)
	got, err := s.List(ctx, 2)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
}
