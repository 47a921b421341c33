package handler_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/orderdesk/handler"
)

func hello() templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<div id="hello">olá</div>`)
		return err
	})
}

func TestJSON(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	require.NoError(t, handler.JSON(rec, http.StatusCreated, map[string]string{"id": "n1"}))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"data":{"id":"n1"}}`, rec.Body.String())
}

func TestError(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	require.NoError(t, handler.Error(rec, http.StatusNotFound, "not_found", "Not found"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":{"code":"not_found","message":"Not found"}}`, rec.Body.String())
}

func TestValidationError(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	require.NoError(t, handler.ValidationError(rec, map[string][]string{"kind": {"unknown kind"}}))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	var body handler.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	assert.Equal(t, []string{"unknown kind"}, body.Error.Details["kind"])
}

func TestIsDataStar(t *testing.T) {
	t.Parallel()

	plain := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.False(t, handler.IsDataStar(plain))

	sse := httptest.NewRequest(http.MethodGet, "/", nil)
	sse.Header.Set("Accept", "text/event-stream")
	assert.True(t, handler.IsDataStar(sse))

	query := httptest.NewRequest(http.MethodGet, "/?datastar=%7B%7D", nil)
	assert.True(t, handler.IsDataStar(query))
}

func TestHTML(t *testing.T) {
	t.Parallel()

	t.Run("plain request renders html", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)

		require.NoError(t, handler.HTML(rec, req, http.StatusNotFound, hello(), "#hello"))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.Equal(t, `<div id="hello">olá</div>`, rec.Body.String())
	})

	t.Run("datastar request patches over sse", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept", "text/event-stream")

		require.NoError(t, handler.HTML(rec, req, http.StatusOK, hello(), "#hello"))

		assert.Contains(t, rec.Header().Get("Content-Type"), "text/event-stream")
		body := rec.Body.String()
		assert.Contains(t, body, "datastar-patch-elements")
		assert.Contains(t, body, "#hello")
		assert.True(t, strings.Contains(body, `<div id="hello">olá</div>`))
	})
}
