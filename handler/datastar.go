package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"
)

// PatchOuter replaces the matched element with the rendered one.
const PatchOuter = datastar.ElementPatchModeOuter

// IsDataStar reports whether r was issued by the DataStar client, which
// accepts server-sent events or carries its signals in the "datastar"
// query parameter.
func IsDataStar(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "text/event-stream") ||
		r.URL.Query().Has("datastar")
}

// Stream is an open server-sent event connection to a DataStar client.
type Stream struct {
	ctx context.Context
	sse *datastar.ServerSentEventGenerator
}

// NewStream starts an SSE response. Headers are flushed immediately.
func NewStream(w http.ResponseWriter, r *http.Request) *Stream {
	return &Stream{ctx: r.Context(), sse: datastar.NewSSE(w, r)}
}

// Done is closed when the client goes away or the server shuts down.
func (s *Stream) Done() <-chan struct{} {
	return s.ctx.Done()
}

// Patch renders component and morphs it into the element matched by selector.
func (s *Stream) Patch(component templ.Component, selector string, mode datastar.ElementPatchMode) error {
	return s.sse.PatchElementTempl(component,
		datastar.WithSelector(selector),
		datastar.WithMode(mode),
	)
}
