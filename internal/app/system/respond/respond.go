// Package respond writes JSON responses with a consistent shape.
//
// Successful responses encode the payload as-is. Error responses use a
// single {"detail": "..."} envelope so the frontend has one place to
// look for a human-readable message.
package respond

import (
	"encoding/json"
	"net/http"
)

// JSON writes v as the response body with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Detail writes an error response with the given status and message.
func Detail(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, map[string]string{"detail": msg})
}

// NotFound writes a 404 with the given message.
func NotFound(w http.ResponseWriter, msg string) {
	Detail(w, http.StatusNotFound, msg)
}

// BadRequest writes a 400 with the given message.
func BadRequest(w http.ResponseWriter, msg string) {
	Detail(w, http.StatusBadRequest, msg)
}

// ServerError writes a generic 500. The underlying error is logged at
// the call site, never sent to the client.
func ServerError(w http.ResponseWriter, msg string) {
	Detail(w, http.StatusInternalServerError, msg)
}
