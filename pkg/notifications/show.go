package notifications

import "time"

// Option adjusts the Spec built by the Show helpers.
type Option func(*Spec)

// WithMessage sets the secondary display text.
func WithMessage(msg string) Option {
	return func(s *Spec) {
		s.Message = msg
	}
}

// WithTimeout overrides the kind default. A non-positive duration
// disables automatic removal.
func WithTimeout(d time.Duration) Option {
	return func(s *Spec) {
		if d <= 0 {
			s.Timeout = NoExpiry
			return
		}
		s.Timeout = d
	}
}

// WithoutExpiry keeps the notification until it is removed explicitly.
func WithoutExpiry() Option {
	return func(s *Spec) {
		s.Timeout = NoExpiry
	}
}

// ShowSuccess adds a success notification. Default timeout is DefaultTimeout.
func (c *Center) ShowSuccess(title string, opts ...Option) string {
	return c.show(KindSuccess, title, opts)
}

// ShowError adds an error notification. Default timeout is DefaultErrorTimeout.
func (c *Center) ShowError(title string, opts ...Option) string {
	return c.show(KindError, title, opts)
}

// ShowWarning adds a warning notification. Default timeout is DefaultTimeout.
func (c *Center) ShowWarning(title string, opts ...Option) string {
	return c.show(KindWarning, title, opts)
}

// ShowInfo adds an info notification. Default timeout is DefaultTimeout.
func (c *Center) ShowInfo(title string, opts ...Option) string {
	return c.show(KindInfo, title, opts)
}

func (c *Center) show(kind Kind, title string, opts []Option) string {
	spec := Spec{Kind: kind, Title: title}
	for _, opt := range opts {
		opt(&spec)
	}
	spec.Kind = kind
	return c.Add(spec)
}
