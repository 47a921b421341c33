package httpserver

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrymomot/orderdesk/pkg/logger"
)

type namedCloser struct {
	name   string
	closer io.Closer
}

// Server runs an http.Server until its context is cancelled or the process
// receives SIGINT/SIGTERM, then shuts it down gracefully.
//
// Request contexts derive from a base context that is cancelled as soon as
// shutdown begins, so long-lived streams (server-sent events) return instead
// of holding the shutdown open until the timeout.
type Server struct {
	addr            string
	readTimeout     time.Duration
	writeTimeout    time.Duration
	idleTimeout     time.Duration
	shutdownTimeout time.Duration
	logger          *slog.Logger
	closers         []namedCloser
	onReady         func(addr string)

	mu         sync.Mutex
	srv        *http.Server
	cancelBase context.CancelFunc
	once       sync.Once
}

// New returns a Server with defaults: ":8080", 5s shutdown timeout and a
// discarding logger.
func New(opts ...Option) *Server {
	s := &Server{
		addr:            ":8080",
		shutdownTimeout: 5 * time.Second,
		logger:          logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run listens and serves handler, blocking until shutdown completes.
func (s *Server) Run(ctx context.Context, handler http.Handler) error {
	if handler == nil {
		handler = http.NotFoundHandler()
	}

	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return errors.Join(ErrStart, err)
	}

	baseCtx, cancelBase := context.WithCancel(context.WithoutCancel(ctx))
	srv := &http.Server{
		Handler:           handler,
		ReadTimeout:       s.readTimeout,
		ReadHeaderTimeout: s.readTimeout,
		WriteTimeout:      s.writeTimeout,
		IdleTimeout:       s.idleTimeout,
		BaseContext:       func(net.Listener) context.Context { return baseCtx },
		ErrorLog:          slog.NewLogLogger(s.logger.Handler(), slog.LevelWarn),
	}

	s.mu.Lock()
	if s.srv != nil {
		s.mu.Unlock()
		cancelBase()
		_ = ln.Close()
		return errors.Join(ErrStart, ErrAlreadyRunning)
	}
	s.srv = srv
	s.cancelBase = cancelBase
	s.mu.Unlock()

	addr := ln.Addr().String()
	s.logger.InfoContext(ctx, "http server started", slog.String("addr", addr))
	if s.onReady != nil {
		s.onReady(addr)
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)

	var serveErr error
	select {
	case <-ctx.Done():
	case got := <-sig:
		s.logger.Info("shutdown signal received", slog.String("signal", got.String()))
	case serveErr = <-errCh:
	}

	shutdownErr := s.Shutdown(context.WithoutCancel(ctx))
	if serveErr == nil {
		serveErr = <-errCh
	}

	if serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
		return errors.Join(ErrStart, serveErr)
	}
	return shutdownErr
}

// Shutdown stops accepting connections, cancels in-flight request contexts,
// waits for handlers up to the shutdown timeout and then closes registered
// resources. Only the first call has an effect.
func (s *Server) Shutdown(ctx context.Context) error {
	var err error
	s.once.Do(func() {
		s.mu.Lock()
		srv, cancelBase := s.srv, s.cancelBase
		s.mu.Unlock()

		if srv != nil {
			cancelBase()
			sctx, cancel := context.WithTimeout(ctx, s.shutdownTimeout)
			defer cancel()
			if e := srv.Shutdown(sctx); e != nil && !errors.Is(e, http.ErrServerClosed) {
				err = errors.Join(ErrShutdown, e)
			}
		}

		for _, c := range s.closers {
			if e := c.closer.Close(); e != nil {
				s.logger.ErrorContext(ctx, "failed to close resource",
					logger.Component(c.name), logger.Error(e))
				err = errors.Join(err, e)
			}
		}

		if err != nil {
			s.logger.ErrorContext(ctx, "http server shutdown failed", logger.Error(err))
			return
		}
		s.logger.InfoContext(ctx, "http server stopped")
	})
	return err
}
