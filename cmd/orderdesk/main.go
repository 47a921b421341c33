package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/dmitrymomot/orderdesk/pkg/apiclient"
	"github.com/dmitrymomot/orderdesk/pkg/config"
	"github.com/dmitrymomot/orderdesk/pkg/httpserver"
	"github.com/dmitrymomot/orderdesk/pkg/logger"
	"github.com/dmitrymomot/orderdesk/pkg/notifications"
	"github.com/dmitrymomot/orderdesk/pkg/requestid"
)

type appConfig struct {
	Env                string   `env:"APP_ENV" envDefault:"development"`
	Name               string   `env:"APP_NAME" envDefault:"orderdesk"`
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173"`

	HTTP          httpserver.Config
	API           apiclient.Config
	Notifications notifications.Config
}

func (c appConfig) production() bool {
	switch c.Env {
	case "production", "prod", "staging", "stage":
		return true
	}
	return false
}

func main() {
	if err := run(context.Background()); err != nil {
		slog.Error("orderdesk stopped with error", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return err
	}

	log := logger.New(
		logger.WithEnvironment(cfg.Env, cfg.Name),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	center := notifications.Default(cfg.Notifications.Options(log)...)

	api, err := apiclient.NewFromConfig(cfg.API,
		apiclient.WithLogger(log),
		apiclient.WithErrorReporter(reportAPIError(center)),
	)
	if err != nil {
		return err
	}

	srv := httpserver.NewFromConfig(cfg.HTTP,
		httpserver.WithLogger(log),
		httpserver.WithCloser("notifications", center),
	)

	log.InfoContext(ctx, "starting orderdesk",
		slog.String("api_base_url", cfg.API.BaseURL),
		slog.String("addr", cfg.HTTP.Addr),
	)
	return srv.Run(ctx, newRouter(cfg, log, center, api))
}
