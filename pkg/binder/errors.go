package binder

import "errors"

// Common binding errors
var (
	// ErrBinderNotApplicable is returned when the request content type is not handled by the binder.
	ErrBinderNotApplicable  = errors.New("binder not applicable to request")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON request body")
	ErrFailedToParseForm    = errors.New("failed to parse form data")
	ErrRequestTooLarge      = errors.New("request body too large")
)
