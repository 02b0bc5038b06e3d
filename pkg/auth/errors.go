package auth

import "errors"

// Storage errors returned by Storage implementations.
var (
	ErrNotFound       = errors.New("credential not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

// Kind is the stable category of an authentication failure.
type Kind string

const (
	KindUnauthenticated       Kind = "unauthenticated"
	KindInvalidCredentials    Kind = "invalid_credentials"
	KindCaptchaFailed         Kind = "captcha_failed"
	KindDependencyUnavailable Kind = "dependency_unavailable"
	KindAlreadyExists         Kind = "already_exists"
	KindValidationFailed      Kind = "validation_failed"
)

// Reasons attached to Unauthenticated failures. They are for logs only.
const (
	ReasonMissingToken     = "missing-token"
	ReasonInvalidOrExpired = "invalid-or-expired"
	ReasonUnknownSubject   = "unknown-subject"
)

// messages are fixed per kind so nothing about the email, the provider
// or the underlying fault reaches the caller.
var messages = map[Kind]string{
	KindUnauthenticated:       "not authenticated",
	KindInvalidCredentials:    "incorrect email or password",
	KindCaptchaFailed:         "captcha verification failed",
	KindDependencyUnavailable: "service temporarily unavailable, try again later",
	KindAlreadyExists:         "email already registered",
	KindValidationFailed:      "validation failed",
}

// Kind sentinels for errors.Is matching.
var (
	ErrUnauthenticated       = &Error{Kind: KindUnauthenticated, Message: messages[KindUnauthenticated]}
	ErrInvalidCredentials    = &Error{Kind: KindInvalidCredentials, Message: messages[KindInvalidCredentials]}
	ErrCaptchaFailed         = &Error{Kind: KindCaptchaFailed, Message: messages[KindCaptchaFailed]}
	ErrDependencyUnavailable = &Error{Kind: KindDependencyUnavailable, Message: messages[KindDependencyUnavailable]}
	ErrAlreadyExists         = &Error{Kind: KindAlreadyExists, Message: messages[KindAlreadyExists]}
	ErrValidationFailed      = &Error{Kind: KindValidationFailed, Message: messages[KindValidationFailed]}
)

// Error is a typed authentication failure.
type Error struct {
	Kind Kind
	// Reason is an internal detail for logs, e.g. ReasonMissingToken.
	Reason string
	// Message is safe to show to the caller.
	Message string
	// Fields holds per-field messages for KindValidationFailed.
	Fields map[string][]string
	// Err is the underlying cause. It is never rendered to the caller.
	Err error
}

func newError(kind Kind, reason string, cause error) *Error {
	return &Error{
		Kind:    kind,
		Reason:  reason,
		Message: messages[kind],
		Err:     cause,
	}
}

func (e *Error) Error() string {
	msg := string(e.Kind) + ": " + e.Message
	if e.Reason != "" {
		msg += " (" + e.Reason + ")"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports kind equality, so errors.Is(err, ErrInvalidCredentials) matches
// any *Error of that kind regardless of reason or cause.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// KindOf returns the kind of err, or an empty Kind if err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
