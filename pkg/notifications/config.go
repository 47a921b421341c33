package notifications

import (
	"log/slog"
	"time"
)

type Config struct {
	DefaultTimeout time.Duration `env:"NOTIFY_DEFAULT_TIMEOUT" envDefault:"5s"` // DefaultTimeout applies to success, warning and info notifications.
	ErrorTimeout   time.Duration `env:"NOTIFY_ERROR_TIMEOUT" envDefault:"8s"`   // ErrorTimeout applies to error notifications.
	FeedBuffer     int           `env:"NOTIFY_FEED_BUFFER" envDefault:"16"`     // FeedBuffer is the per-subscriber event buffer.
}

// Options converts the config into CenterOptions. Zero values keep the package defaults.
func (cfg Config) Options(log *slog.Logger) []CenterOption {
	return []CenterOption{
		WithDefaultTimeout(cfg.DefaultTimeout),
		WithErrorTimeout(cfg.ErrorTimeout),
		WithFeedBuffer(cfg.FeedBuffer),
		WithLogger(log),
	}
}
