package testimonials_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/vattavada/stayhub/internal/app/features/testimonials"
	"github.com/vattavada/stayhub/internal/domain/models"
	"github.com/vattavada/stayhub/internal/testutil"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T) (chi.Router, *mongo.Database) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	h := testimonials.NewHandler(db, zap.NewNop())
	r := chi.NewRouter()
	r.Route("/testimonials", h.MountRoutes)
	return r, db
}

func TestPublicListShowsOnlyApproved(t *testing.T) {
	r, db := newTestRouter(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	fx.CreateTestimonial(ctx, "Approved Guest", true)
	fx.CreateTestimonial(ctx, "Pending Guest", false)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/testimonials/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var got []models.Testimonial
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Approved Guest" {
		t.Errorf("public list = %+v, want only approved", got)
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/testimonials/all", nil))
	var all []models.Testimonial
	if err := json.Unmarshal(rec.Body.Bytes(), &all); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("staff list len = %d, want 2", len(all))
	}
}

func TestCreateStartsUnapproved(t *testing.T) {
	r, _ := newTestRouter(t)

	body := `{"name":"Rahul Menon","location":"Bengaluru","rating":5,"text":"Best weekend of the year.","approved":true}`
	req := httptest.NewRequest("POST", "/testimonials/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var got models.Testimonial
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Approved {
		t.Error("submission must not be able to pre-approve itself")
	}
}

func TestCreateRejectsBadRating(t *testing.T) {
	r, _ := newTestRouter(t)

	body := `{"name":"Rahul","location":"Kochi","rating":9,"text":"Nice."}`
	req := httptest.NewRequest("POST", "/testimonials/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestApprove(t *testing.T) {
	r, db := newTestRouter(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	tm := fx.CreateTestimonial(ctx, "Rahul Menon", false)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("PUT", "/testimonials/"+tm.ID.Hex()+"/approve", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var got models.Testimonial
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !got.Approved {
		t.Error("testimonial not approved")
	}
}

func TestApproveUnknownID(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("PUT", "/testimonials/not-a-real-id/approve", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}
