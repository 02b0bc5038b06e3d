package session

import "errors"

// ErrSessionNotFound indicates no session token was found in the request.
var ErrSessionNotFound = errors.New("session.not_found")
