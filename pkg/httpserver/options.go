package httpserver

import (
	"io"
	"log/slog"
	"time"
)

// Option configures the Server.
type Option func(*Server)

// WithAddr sets the listen address.
func WithAddr(addr string) Option {
	if addr == "" {
		panic("httpserver: empty addr")
	}
	return func(s *Server) { s.addr = addr }
}

// WithReadTimeout sets the maximum duration for reading a request.
func WithReadTimeout(d time.Duration) Option {
	mustPositive("WithReadTimeout", d)
	return func(s *Server) { s.readTimeout = d }
}

// WithWriteTimeout sets the maximum duration for writing a response.
// Streaming endpoints are cut off after this long.
func WithWriteTimeout(d time.Duration) Option {
	mustPositive("WithWriteTimeout", d)
	return func(s *Server) { s.writeTimeout = d }
}

// WithIdleTimeout sets how long keep-alive connections wait for the next request.
func WithIdleTimeout(d time.Duration) Option {
	mustPositive("WithIdleTimeout", d)
	return func(s *Server) { s.idleTimeout = d }
}

// WithShutdownTimeout bounds graceful shutdown.
func WithShutdownTimeout(d time.Duration) Option {
	mustPositive("WithShutdownTimeout", d)
	return func(s *Server) { s.shutdownTimeout = d }
}

// WithLogger sets the logger used for lifecycle messages.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithCloser registers a resource closed after the listener stops, in
// registration order.
func WithCloser(name string, c io.Closer) Option {
	if c == nil {
		panic("httpserver: nil closer " + name)
	}
	return func(s *Server) {
		s.closers = append(s.closers, namedCloser{name: name, closer: c})
	}
}

// WithReadyFunc registers a callback invoked with the bound address once
// the listener accepts connections.
func WithReadyFunc(f func(addr string)) Option {
	return func(s *Server) { s.onReady = f }
}

func mustPositive(name string, d time.Duration) {
	if d <= 0 {
		panic("httpserver: " + name + " duration must be > 0")
	}
}
