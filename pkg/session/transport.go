package session

import (
	"net/http"
	"time"
)

// Transport defines how session tokens travel between client and server.
// It is the only layer aware of where the token lives in a request.
type Transport interface {
	// GetToken extracts the session token from the request.
	// It returns ErrSessionNotFound when no token is present.
	GetToken(r *http.Request) (string, error)

	// SetToken sends the session token in the response.
	SetToken(w http.ResponseWriter, token string, ttl time.Duration) error

	// ClearToken removes the session token on the client.
	ClearToken(w http.ResponseWriter) error
}
