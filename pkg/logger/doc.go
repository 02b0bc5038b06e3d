// Package logger builds *slog.Logger instances and provides attribute
// helpers so log keys stay consistent across the service.
//
// New returns a logger configured by Option functions: output format, level,
// static attributes and ContextExtractor callbacks that pull request-scoped
// values (for example the request id) from the context at log time.
//
// # Usage
//
//	log := logger.New(
//		logger.WithEnvironment("production", "secureauth"),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//
//	log.InfoContext(ctx, "user logged in",
//		logger.Component("auth"),
//		logger.UserID(user.ID),
//	)
//
// NewFromConfig applies LOG_LEVEL and LOG_FORMAT on top of the options.
//
// Email masks the local part of an address so logs can correlate failures
// without storing the full address. Error returns an empty Attr for nil
// errors, which slog drops, so callers need no nil check.
package logger
