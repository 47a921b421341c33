package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"

	webnotifications "github.com/dmitrymomot/orderdesk/modules/notifications"
	"github.com/dmitrymomot/orderdesk/modules/pages"
	"github.com/dmitrymomot/orderdesk/pkg/apiclient"
	"github.com/dmitrymomot/orderdesk/pkg/notifications"
	"github.com/dmitrymomot/orderdesk/pkg/requestid"
)

// newRouter wires the middleware stack, the notification API under
// /api/notifications (CORS-enabled) and the pages at the root.
func newRouter(cfg appConfig, log *slog.Logger, center *notifications.Center, api *apiclient.Client) http.Handler {
	r := chi.NewRouter()

	r.Use(requestid.Middleware)
	r.Use(httplog.RequestLogger(log, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS.Concise(!cfg.production()),
	}))
	r.Use(middleware.Recoverer)
	r.Use(middleware.CleanPath)
	r.Use(middleware.Heartbeat("/healthz"))

	r.Route(webnotifications.BasePath, func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.CORSAllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type", requestid.Header},
			ExposedHeaders: []string{requestid.Header},
			MaxAge:         300,
		}))
		r.Mount("/", webnotifications.New(center, log).Handle())
	})

	r.Mount("/", pages.New(api, center, log).Handle())

	return r
}

// reportAPIError turns failed backend calls into error toasts.
func reportAPIError(center *notifications.Center) apiclient.ErrorReporter {
	return func(_ context.Context, err error) {
		var apiErr *apiclient.APIError
		switch {
		case errors.As(err, &apiErr) && apiErr.Message() != "":
			center.ShowError("Erro na requisição", notifications.WithMessage(apiErr.Message()))
		case errors.Is(err, apiclient.ErrTransport):
			center.ShowError("Servidor indisponível", notifications.WithMessage("Não foi possível conectar à API."))
		default:
			center.ShowError("Erro inesperado", notifications.WithMessage(err.Error()))
		}
	}
}
