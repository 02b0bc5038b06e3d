// Package requestid propagates a per-request correlation id.
//
// Middleware reuses a client-supplied X-Request-ID when it is safe to log
// and echo, otherwise it generates a UUID. LoggerExtractor plugs the id into
// loggers built by the logger package:
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//	r.Use(requestid.Middleware)
package requestid
