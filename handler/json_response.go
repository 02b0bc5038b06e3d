package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrymomot/secureauth/pkg/binder"
)

// ErrorResponse is the JSON envelope for failed requests.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Details map[string][]string `json:"details,omitempty"`
}

type jsonResponse struct {
	status int
	header http.Header
	body   any
}

func (j jsonResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	for key, values := range j.header {
		for _, v := range values {
			w.Header().Add(key, v)
		}
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSONOption configures a JSON response.
type JSONOption func(*jsonResponse)

// WithJSONStatus sets a custom HTTP status code.
func WithJSONStatus(status int) JSONOption {
	return func(r *jsonResponse) {
		r.status = status
	}
}

// WithJSONHeader adds a response header.
func WithJSONHeader(key, value string) JSONOption {
	return func(r *jsonResponse) {
		if r.header == nil {
			r.header = make(http.Header)
		}
		r.header.Add(key, value)
	}
}

// JSON renders v as the response body with status 200.
func JSON(v any, opts ...JSONOption) Response {
	r := &jsonResponse{status: http.StatusOK, body: v}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// JSONError renders err in the error envelope. An HTTPError keeps its status,
// code, message and headers; any other error becomes a 500 without its text.
func JSONError(err error, opts ...JSONOption) Response {
	httpErr := classify(err)
	r := &jsonResponse{
		status: httpErr.Status,
		header: httpErr.Header.Clone(),
		body: ErrorResponse{Error: ErrorDetail{
			Code:    httpErr.Code,
			Message: httpErr.Message,
			Details: httpErr.Details,
		}},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// classify maps err to an HTTPError.
func classify(err error) HTTPError {
	var httpErr HTTPError
	switch {
	case errors.As(err, &httpErr):
		return httpErr
	case errors.Is(err, binder.ErrRequestTooLarge):
		return ErrRequestTooLarge
	case errors.Is(err, binder.ErrFailedToParseJSON), errors.Is(err, binder.ErrFailedToParseForm):
		return ErrBadRequest
	case errors.Is(err, binder.ErrUnsupportedMediaType):
		return ErrUnsupportedMediaType
	default:
		return ErrInternalServerError
	}
}
