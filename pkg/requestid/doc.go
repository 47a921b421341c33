// Package requestid correlates a browser request with the log records and
// backend API calls it causes.
//
// Middleware assigns the id (reusing a valid incoming X-Request-ID header),
// LoggerExtractor plugs it into the logger package's context handler, and
// Transport forwards it on outgoing HTTP calls made with the request context.
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
//
//	client := &http.Client{Transport: requestid.Transport(nil)}
package requestid
