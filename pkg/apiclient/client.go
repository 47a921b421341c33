package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrymomot/orderdesk/pkg/logger"
	"github.com/dmitrymomot/orderdesk/pkg/requestid"
)

const maxErrorBody = 64 << 10

// Config is read from the environment.
type Config struct {
	BaseURL string        `env:"API_BASE_URL" envDefault:"http://localhost:3333"`
	Timeout time.Duration `env:"API_TIMEOUT" envDefault:"10s"`
}

// ErrorReporter is told about every failed call, after it has been logged.
// Calls abandoned through context cancellation are not reported.
type ErrorReporter func(ctx context.Context, err error)

// Client talks JSON to the order-management backend.
type Client struct {
	base   *url.URL
	http   *http.Client
	logger *slog.Logger
	report ErrorReporter

	Products   *ProductService
	Clients    *ClientService
	Orders     *OrderService
	OrderItems *OrderItemService
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the HTTP client. Its transport should forward
// request ids (see requestid.Transport).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout sets the per-request timeout of the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithErrorReporter registers a callback for failed calls, typically one
// that shows an error toast.
func WithErrorReporter(r ErrorReporter) Option {
	return func(c *Client) { c.report = r }
}

// New creates a client for the API at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, errors.Join(ErrInvalidBaseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, baseURL)
	}

	c := &Client{
		base: u,
		http: &http.Client{
			Timeout:   10 * time.Second,
			Transport: requestid.Transport(nil),
		},
		logger: logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.Products = &ProductService{c: c}
	c.Clients = &ClientService{c: c}
	c.Orders = &OrderService{c: c}
	c.OrderItems = &OrderItemService{c: c}
	return c, nil
}

// NewFromConfig creates a client from cfg; opts are applied after it.
func NewFromConfig(cfg Config, opts ...Option) (*Client, error) {
	return New(cfg.BaseURL, append([]Option{WithTimeout(cfg.Timeout)}, opts...)...)
}

// do sends in as JSON (when non-nil) and decodes the response into out
// (when non-nil), looking under envelope first.
func (c *Client) do(ctx context.Context, method, path string, in, out any, envelope string) error {
	err := c.roundTrip(ctx, method, path, in, out, envelope)
	if err != nil {
		c.logger.ErrorContext(ctx, "api request failed",
			slog.String("method", method),
			slog.String("path", path),
			logger.Error(err),
		)
		if c.report != nil && !errors.Is(err, context.Canceled) {
			c.report(ctx, err)
		}
	}
	return err
}

func (c *Client) roundTrip(ctx context.Context, method, path string, in, out any, envelope string) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base.JoinPath(path).String(), body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %w", ErrTransport, method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &APIError{
			StatusCode: resp.StatusCode,
			Method:     method,
			Path:       path,
			Body:       string(raw),
		}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if err := unwrap(raw, envelope, out); err != nil {
		return fmt.Errorf("%w: %s %s: %w", ErrDecode, method, path, err)
	}
	return nil
}

// unwrap decodes raw into out. When envelope is set and raw is an object
// holding a non-null value under that key, the value is decoded instead
// of the whole body; otherwise the body itself is the payload.
func unwrap(raw []byte, envelope string, out any) error {
	if envelope != "" {
		var obj map[string]json.RawMessage
		if json.Unmarshal(raw, &obj) == nil {
			if v, ok := obj[envelope]; ok && !bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
				return json.Unmarshal(v, out)
			}
		}
	}
	return json.Unmarshal(raw, out)
}
