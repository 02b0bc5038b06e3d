package account

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/secureauth/handler"
	"github.com/dmitrymomot/secureauth/pkg/auth"
)

// statusByKind maps authentication failure kinds to HTTP statuses.
var statusByKind = map[auth.Kind]int{
	auth.KindUnauthenticated:       http.StatusUnauthorized,
	auth.KindInvalidCredentials:    http.StatusUnauthorized,
	auth.KindCaptchaFailed:         http.StatusBadRequest,
	auth.KindAlreadyExists:         http.StatusBadRequest,
	auth.KindValidationFailed:      http.StatusUnprocessableEntity,
	auth.KindDependencyUnavailable: http.StatusServiceUnavailable,
}

// retryAfterSeconds is advertised with 503 responses.
const retryAfterSeconds = "5"

// toHTTPError converts an auth failure into a renderable error. Errors that
// are not *auth.Error pass through unchanged and render as 500.
func toHTTPError(err error) error {
	var aerr *auth.Error
	if !errors.As(err, &aerr) {
		return err
	}

	status, ok := statusByKind[aerr.Kind]
	if !ok {
		return err
	}

	httpErr := handler.HTTPError{
		Status:  status,
		Code:    string(aerr.Kind),
		Message: aerr.Message,
		Details: aerr.Fields,
	}
	switch status {
	case http.StatusUnauthorized:
		httpErr.Header = http.Header{"Www-Authenticate": {"Bearer"}}
	case http.StatusServiceUnavailable:
		httpErr.Header = http.Header{"Retry-After": {retryAfterSeconds}}
	}
	return httpErr
}
