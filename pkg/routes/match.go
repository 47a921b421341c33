package routes

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// TitleHeader carries the page title of the matched route.
const TitleHeader = "X-Page-Title"

var matcher = newMatcher()

func newMatcher() *chi.Mux {
	mux := chi.NewRouter()
	noop := func(http.ResponseWriter, *http.Request) {}
	for _, r := range table {
		if r.Pattern != "" {
			mux.Get(r.Pattern, noop)
		}
	}
	return mux
}

// Match resolves a request path to its route. Paths that match no pattern
// resolve to the not-found route.
func Match(path string) Route {
	rctx := chi.NewRouteContext()
	if !matcher.Match(rctx, http.MethodGet, path) {
		r, _ := ByName(NotFound)
		return r
	}

	pattern := rctx.RoutePattern()
	for _, r := range table {
		if r.Pattern == pattern {
			return r
		}
	}
	r, _ := ByName(NotFound)
	return r
}

type contextKey struct{}

// WithContext stores r in ctx.
func WithContext(ctx context.Context, r Route) context.Context {
	return context.WithValue(ctx, contextKey{}, r)
}

// FromContext returns the route stored by TitleGuard.
func FromContext(ctx context.Context) (Route, bool) {
	r, ok := ctx.Value(contextKey{}).(Route)
	return r, ok
}

// TitleGuard resolves the route of every request, stores it in the request
// context and advertises its page title in the X-Page-Title header.
func TitleGuard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route := Match(r.URL.Path)
		w.Header().Set(TitleHeader, PageTitle(route))
		next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), route)))
	})
}
