package jwt

import "errors"

var (
	ErrInvalidToken         = errors.New("jwt: invalid token")
	ErrExpiredToken         = errors.New("jwt: token is expired")
	ErrMissingSigningKey    = errors.New("jwt: missing signing key")
	ErrUnsupportedAlgorithm = errors.New("jwt: unsupported signing algorithm")
	ErrMissingSubject       = errors.New("jwt: missing subject")
	ErrInvalidTTL           = errors.New("jwt: ttl must be positive")
	ErrSigningFailed        = errors.New("jwt: failed to sign token")
)
