// Package httpserver runs an http.Server with graceful shutdown and provides
// health probe handlers.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, router, httpserver.WithLogger(log))
//	if err := srv.Run(ctx); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Run returns after ctx is canceled or on SIGINT/SIGTERM. Bind and serve
// failures wrap ErrStart; a shutdown that exceeds the timeout wraps ErrShutdown.
//
// HealthCheckHandler without checks is a liveness probe; with checks it is a
// readiness probe that answers 503 when any dependency fails.
package httpserver
