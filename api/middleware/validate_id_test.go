package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func TestValidateIDRejectsMalformedID(t *testing.T) {
	r := chi.NewRouter()
	r.With(ValidateID(nil)).Get("/product/{id}", func(w http.ResponseWriter, req *http.Request) {
		t.Fatal("handler must not run for a malformed id")
	})

	req := httptest.NewRequest(http.MethodGet, "/product/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if msg := decodeMessage(t, rec.Body.Bytes()); msg != "Invalid ID" {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestValidateIDSeedsContext(t *testing.T) {
	id := uuid.New()

	var seen uuid.UUID
	r := chi.NewRouter()
	r.With(ValidateID(nil)).Get("/product/{id}", func(w http.ResponseWriter, req *http.Request) {
		seen = ResourceIDFromContext(req.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/product/"+id.String(), nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if seen != id {
		t.Fatalf("expected %s in context, got %s", id, seen)
	}
}
