// internal/app/system/webapi/webapi.go

// Package webapi holds the JSON request/response helpers and the error
// taxonomy shared by every controller: ValidationError (400 with offending
// fields), ErrNotFound (404), anything else (500). A storage failure is
// never reported as a miss.
package webapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/pulseboard/pulseboard/internal/app/store/resource"
	"go.uber.org/zap"
)

// ValidationError reports a payload that failed schema validation, carrying
// the offending field names so the caller can fix the payload.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "invalid payload: " + strings.Join(e.Fields, ", ")
}

// errorBody is the JSON error envelope.
type errorBody struct {
	Message string   `json:"message"`
	Fields  []string `json:"fields,omitempty"`
	Error   string   `json:"error,omitempty"`
}

// JSON writes v with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Message writes a bare confirmation body, e.g. after a delete.
func Message(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, map[string]string{"message": msg})
}

// Fail maps err onto the taxonomy and writes the error envelope. msg is the
// human-readable summary ("error creating customer"); the underlying detail
// rides along for 4xx responses and is logged for 5xx ones.
func Fail(w http.ResponseWriter, log *zap.Logger, err error, msg string) {
	var ve *ValidationError
	switch {
	case errors.As(err, &ve):
		JSON(w, http.StatusBadRequest, errorBody{Message: msg, Fields: ve.Fields, Error: ve.Error()})
	case errors.Is(err, resource.ErrNotFound):
		JSON(w, http.StatusNotFound, errorBody{Message: msg})
	default:
		if log != nil {
			log.Error(msg, zap.Error(err))
		}
		JSON(w, http.StatusInternalServerError, errorBody{Message: msg, Error: err.Error()})
	}
}

// BadRequest writes a 400 for malformed input that never reached validation
// (unparseable JSON, bad query parameter).
func BadRequest(w http.ResponseWriter, msg string, err error) {
	body := errorBody{Message: msg}
	if err != nil {
		body.Error = err.Error()
	}
	JSON(w, http.StatusBadRequest, body)
}

// NotFound writes a 404 with the given summary.
func NotFound(w http.ResponseWriter, msg string) {
	JSON(w, http.StatusNotFound, errorBody{Message: msg})
}

// Decode reads a JSON request body into v.
func Decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("decode body: %w", err)
	}
	return nil
}
