package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"
)

var (
	ErrInvalidBaseURL = errors.New("invalid API base URL")
	ErrRequestFailed  = errors.New("API request failed")
	ErrNotFound       = errors.New("API resource not found")
	ErrTransport      = errors.New("API unreachable")
	ErrDecode         = errors.New("failed to decode API response")
)

// APIError is returned for every non-2xx response. It matches
// ErrRequestFailed, and ErrNotFound for 404s, with errors.Is.
type APIError struct {
	StatusCode int
	Method     string
	Path       string
	Body       string
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("%s %s: status %d", e.Method, e.Path, e.StatusCode)
	if m := e.Message(); m != "" {
		msg += ": " + m
	}
	return msg
}

func (e *APIError) Unwrap() []error {
	if e.StatusCode == http.StatusNotFound {
		return []error{ErrRequestFailed, ErrNotFound}
	}
	return []error{ErrRequestFailed}
}

// Message returns the backend's own error text when the body carries a
// "message" or "error" field, otherwise the trimmed body.
func (e *APIError) Message() string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if json.Unmarshal([]byte(e.Body), &payload) == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	return truncate(strings.Join(strings.Fields(e.Body), " "), maxMessageLen)
}

const maxMessageLen = 200

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
