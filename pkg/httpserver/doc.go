// Package httpserver runs the order desk HTTP server with graceful shutdown.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP,
//		httpserver.WithLogger(log),
//		httpserver.WithCloser("notifications", center),
//	)
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server failed", logger.Error(err))
//	}
//
// Run returns when ctx is cancelled, on SIGINT/SIGTERM, or when the listener
// fails. Listener failures wrap ErrStart; shutdown failures wrap ErrShutdown.
package httpserver
