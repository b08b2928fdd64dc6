package responses

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	pkgerrors "github.com/mak-alamin/bestools-server/pkg/errors"
)

func decodeError(t *testing.T, body []byte) map[string]any {
	t.Helper()
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("decode error payload: %v", err)
	}
	return payload
}

func TestWriteSuccessReturnsRawPayload(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteSuccess(rec, map[string]string{"slug": "18v-drill"})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var payload map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload["slug"] != "18v-drill" {
		t.Fatalf("expected raw resource body, got %s", rec.Body.String())
	}
}

func TestWriteErrorMapsCodeToStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(context.Background(), nil, rec, pkgerrors.New(pkgerrors.CodeUnauthorized, "UnAuthorized access"))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	payload := decodeError(t, rec.Body.Bytes())
	if payload["message"] != "UnAuthorized access" {
		t.Fatalf("unexpected message: %v", payload["message"])
	}
	if _, ok := payload["error"]; ok {
		t.Fatal("401 must not leak cause details")
	}
}

func TestWriteErrorIncludesCauseWhenAllowed(t *testing.T) {
	rec := httptest.NewRecorder()
	cause := errors.New("token signature is invalid")
	WriteError(context.Background(), nil, rec, pkgerrors.Wrap(pkgerrors.CodeForbidden, cause, "Forbidden access"))

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	payload := decodeError(t, rec.Body.Bytes())
	if payload["message"] != "Forbidden access" {
		t.Fatalf("unexpected message: %v", payload["message"])
	}
	if payload["error"] != "token signature is invalid" {
		t.Fatalf("expected cause in error field, got %v", payload["error"])
	}
}

func TestWriteErrorMasksInternalMessages(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(context.Background(), nil, rec, pkgerrors.Wrap(pkgerrors.CodeInternal, errors.New("pq: connection refused"), "find user"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	payload := decodeError(t, rec.Body.Bytes())
	if payload["message"] == "find user" {
		t.Fatal("internal wrap message must not reach the client")
	}
	if _, ok := payload["error"]; ok {
		t.Fatal("500 must not leak cause details")
	}
}

func TestWriteErrorWrapsUntypedErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(context.Background(), nil, rec, errors.New("boom"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}
