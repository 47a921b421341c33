package handler

import (
	"encoding/json"
	"net/http"
)

// Envelope is the body of every JSON response.
type Envelope struct {
	Data  any          `json:"data,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail describes a failed request.
type ErrorDetail struct {
	Code    string              `json:"code,omitempty"`
	Message string              `json:"message,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
}

// JSON writes data wrapped in an Envelope.
func JSON(w http.ResponseWriter, status int, data any) error {
	return write(w, status, Envelope{Data: data})
}

// Error writes an error Envelope.
func Error(w http.ResponseWriter, status int, code, message string) error {
	return write(w, status, Envelope{Error: &ErrorDetail{Code: code, Message: message}})
}

// ValidationError writes a 422 with per-field messages.
func ValidationError(w http.ResponseWriter, details map[string][]string) error {
	return write(w, http.StatusUnprocessableEntity, Envelope{Error: &ErrorDetail{
		Code:    "validation_failed",
		Message: "Validation failed",
		Details: details,
	}})
}

// NoContent writes an empty 204.
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

func write(w http.ResponseWriter, status int, body Envelope) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(body)
}
