package requestid_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/orderdesk/pkg/logger"
	"github.com/dmitrymomot/orderdesk/pkg/requestid"
)

func TestMiddleware(t *testing.T) {
	t.Parallel()

	serve := func(t *testing.T, incoming string) (ctxID, headerID string) {
		t.Helper()
		handler := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctxID = requestid.FromContext(r.Context())
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest(http.MethodGet, "/orders", nil)
		if incoming != "" {
			req.Header.Set(requestid.Header, incoming)
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		return ctxID, rec.Header().Get(requestid.Header)
	}

	t.Run("generates id when missing", func(t *testing.T) {
		t.Parallel()
		ctxID, headerID := serve(t, "")
		assert.NotEmpty(t, ctxID)
		assert.Equal(t, ctxID, headerID)
	})

	t.Run("reuses valid incoming ids", func(t *testing.T) {
		t.Parallel()
		for _, id := range []string{"abc123", "pedido_42", "550e8400-e29b-41d4-a716-446655440000"} {
			ctxID, headerID := serve(t, id)
			assert.Equal(t, id, ctxID)
			assert.Equal(t, id, headerID)
		}
	})

	t.Run("replaces malformed ids", func(t *testing.T) {
		t.Parallel()
		for _, id := range []string{"a b", "x/y", "<script>", strings.Repeat("a", 129)} {
			ctxID, headerID := serve(t, id)
			assert.NotEqual(t, id, ctxID)
			assert.NotEmpty(t, ctxID)
			assert.Equal(t, ctxID, headerID)
		}
	})
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	assert.Empty(t, requestid.FromContext(context.Background()))
	assert.Equal(t, "req-1", requestid.FromContext(requestid.WithContext(context.Background(), "req-1")))
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithFormat(logger.FormatJSON),
		logger.WithOutput(&buf),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)

	log.InfoContext(requestid.WithContext(context.Background(), "req-7"), "listing orders")
	assert.Contains(t, buf.String(), `"request_id":"req-7"`)

	buf.Reset()
	log.InfoContext(context.Background(), "no request")
	assert.NotContains(t, buf.String(), "request_id")

	_, ok := requestid.LoggerExtractor()(context.Background())
	assert.False(t, ok)
}

func TestTransport(t *testing.T) {
	t.Parallel()

	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get(requestid.Header)
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(srv.Close)

	client := &http.Client{Transport: requestid.Transport(nil)}

	t.Run("forwards id from context", func(t *testing.T) {
		ctx := requestid.WithContext(context.Background(), "req-9")
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL, nil)
		require.NoError(t, err)

		resp, err := client.Do(req)
		require.NoError(t, err)
		require.NoError(t, resp.Body.Close())

		assert.Equal(t, "req-9", got)
		assert.Empty(t, req.Header.Get(requestid.Header), "caller request must not be modified")
	})

	t.Run("no id without context value", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodGet, srv.URL, nil)
		require.NoError(t, err)

		resp, err := client.Do(req)
		require.NoError(t, err)
		require.NoError(t, resp.Body.Close())

		assert.Empty(t, got)
	})
}
