package handler

import (
	"errors"
	"net/http"
)

// HTTPError is an error with an HTTP status and a stable machine-readable code.
type HTTPError struct {
	Status  int                 // HTTP status code
	Code    string              // Stable error code, e.g. "invalid_credentials"
	Message string              // Message safe to show to the client
	Details map[string][]string // Optional per-field messages
	Header  http.Header         // Optional extra response headers
}

// Error implements the error interface.
func (e HTTPError) Error() string {
	return e.Code
}

var (
	ErrBadRequest           = HTTPError{Status: http.StatusBadRequest, Code: "bad_request", Message: "malformed request body"}
	ErrUnsupportedMediaType = HTTPError{Status: http.StatusUnsupportedMediaType, Code: "unsupported_media_type", Message: "unsupported content type"}
	ErrRequestTooLarge      = HTTPError{Status: http.StatusRequestEntityTooLarge, Code: "request_too_large", Message: "request body too large"}
	ErrInternalServerError  = HTTPError{Status: http.StatusInternalServerError, Code: "internal_error", Message: "internal server error"}
)

// ErrNilResponse indicates a handler returned nil instead of a Response.
var ErrNilResponse = errors.New("handler returned nil response")
