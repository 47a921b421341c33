package handler

import (
	"net/http"

	"github.com/a-h/templ"
)

// HTML renders component as a full HTML response. DataStar requests get
// the component patched into selector over SSE instead.
func HTML(w http.ResponseWriter, r *http.Request, status int, component templ.Component, selector string) error {
	if IsDataStar(r) {
		return NewStream(w, r).Patch(component, selector, PatchOuter)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	return component.Render(r.Context(), w)
}
