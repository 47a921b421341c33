// Package logger builds *slog.Logger instances for the order desk and keeps
// attribute names consistent across packages.
//
// New takes functional options for format, level, output, static attributes
// and context extractors. Extractors run on every record, which is how the
// request id set by the requestid middleware reaches each log line:
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, cfg.Name),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	log.InfoContext(ctx, "notification added",
//	    logger.NotificationID(id),
//	    logger.Kind("error"),
//	)
//
// Error and RequestID return an empty Attr for empty input, so callers can
// pass them without a nil check.
package logger
