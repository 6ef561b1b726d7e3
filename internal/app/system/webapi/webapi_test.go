// internal/app/system/webapi/webapi_test.go
package webapi_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pulseboard/pulseboard/internal/app/store/resource"
	"github.com/pulseboard/pulseboard/internal/app/system/webapi"
	"go.uber.org/zap"
)

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response body is not JSON: %v", err)
	}
	return body
}

func TestFail_ValidationErrorIs400WithFields(t *testing.T) {
	rec := httptest.NewRecorder()
	err := &webapi.ValidationError{Fields: []string{"name", "email"}}

	webapi.Fail(rec, zap.NewNop(), err, "Error creating customer")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["message"] != "Error creating customer" {
		t.Errorf("message = %v", body["message"])
	}
	fields, ok := body["fields"].([]any)
	if !ok || len(fields) != 2 {
		t.Fatalf("fields = %v", body["fields"])
	}
}

func TestFail_NotFoundIs404(t *testing.T) {
	rec := httptest.NewRecorder()
	webapi.Fail(rec, zap.NewNop(), resource.ErrNotFound, "customer not found")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	body := decodeBody(t, rec)
	if _, present := body["error"]; present {
		t.Error("404 body should not leak internal error detail")
	}
}

func TestFail_WrappedNotFoundIs404(t *testing.T) {
	rec := httptest.NewRecorder()
	wrapped := errors.Join(resource.ErrNotFound)
	webapi.Fail(rec, zap.NewNop(), wrapped, "missing")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestFail_UnknownErrorIs500(t *testing.T) {
	rec := httptest.NewRecorder()
	webapi.Fail(rec, zap.NewNop(), errors.New("socket closed"), "Error fetching customers")

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["error"] != "socket closed" {
		t.Errorf("error = %v", body["error"])
	}
}

func TestMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	webapi.Message(rec, http.StatusOK, "Customer deleted successfully")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("content type = %q", ct)
	}
	body := decodeBody(t, rec)
	if body["message"] != "Customer deleted successfully" {
		t.Errorf("message = %v", body["message"])
	}
}
