package notifications

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Kind represents the notification type/severity.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindWarning Kind = "warning"
	KindInfo    Kind = "info"
)

const (
	// DefaultTimeout is applied when a non-error notification is added without a timeout.
	DefaultTimeout = 5 * time.Second
	// DefaultErrorTimeout is applied when an error notification is added without a timeout.
	// Errors stay on screen longer so a failure is not missed.
	DefaultErrorTimeout = 8 * time.Second
	// NoExpiry disables automatic removal when used as Spec.Timeout.
	NoExpiry time.Duration = -1
)

// ErrUnknownKind is returned by ParseKind for values outside the closed kind set.
var ErrUnknownKind = errors.New("unknown notification kind")

// ParseKind converts a string into a Kind. Matching is case-insensitive.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if !k.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
	return k, nil
}

// Valid reports whether k belongs to the closed kind set.
func (k Kind) Valid() bool {
	switch k {
	case KindSuccess, KindError, KindWarning, KindInfo:
		return true
	}
	return false
}

// Notification is an immutable record held by a Center.
// A zero Timeout means the notification never expires on its own.
type Notification struct {
	ID        string        `json:"id"`
	Kind      Kind          `json:"kind"`
	Title     string        `json:"title"`
	Message   string        `json:"message,omitempty"`
	Timeout   time.Duration `json:"-"`
	CreatedAt time.Time     `json:"created_at"`
}

// Expires reports whether the notification is scheduled for automatic removal.
func (n Notification) Expires() bool {
	return n.Timeout > 0
}

// ExpiresAt returns the moment the notification is due to be removed,
// or the zero time if it never expires.
func (n Notification) ExpiresAt() time.Time {
	if !n.Expires() {
		return time.Time{}
	}
	return n.CreatedAt.Add(n.Timeout)
}

// MarshalJSON encodes the timeout in milliseconds under "timeout_ms".
func (n Notification) MarshalJSON() ([]byte, error) {
	type plain Notification
	return json.Marshal(struct {
		plain
		TimeoutMS int64 `json:"timeout_ms"`
	}{
		plain:     plain(n),
		TimeoutMS: n.Timeout.Milliseconds(),
	})
}

// Spec describes a notification to add.
//
// Timeout semantics:
//   - 0 applies the kind default (DefaultErrorTimeout for errors, DefaultTimeout otherwise)
//   - a positive value is used as is
//   - a negative value (NoExpiry) disables automatic removal
type Spec struct {
	Kind    Kind
	Title   string
	Message string
	Timeout time.Duration
}
