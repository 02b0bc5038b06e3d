package handler

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/secureauth/pkg/logger"
	"github.com/dmitrymomot/secureauth/pkg/requestid"
)

// NewErrorHandler creates an error handler that logs the failure and renders
// it as JSON. Client errors log at Warn, server errors at Error.
func NewErrorHandler(log *slog.Logger) ErrorHandler {
	if log == nil {
		log = slog.Default()
	}

	return func(ctx Context, err error) {
		r := ctx.Request()
		httpErr := classify(err)

		level := slog.LevelError
		if httpErr.Status < http.StatusInternalServerError {
			level = slog.LevelWarn
		}

		log.LogAttrs(r.Context(), level, "request error",
			logger.RequestID(requestid.FromContext(r.Context())),
			logger.Error(err),
			slog.Int("status_code", httpErr.Status),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			logger.Component("error_handler"),
		)

		if renderErr := JSONError(httpErr).Render(ctx.ResponseWriter(), r); renderErr != nil {
			log.ErrorContext(r.Context(), "failed to render error response",
				logger.Error(renderErr),
				logger.Event("render_error"),
			)
		}
	}
}
