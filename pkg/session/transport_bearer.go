package session

import (
	"net/http"
	"strings"
	"time"
)

const bearerScheme = "bearer"

// BearerTransport reads "Authorization: Bearer <token>". API clients receive
// the token in the login response body, so SetToken and ClearToken write nothing.
type BearerTransport struct{}

// GetToken returns the bearer credential. The scheme is matched case-insensitively.
func (BearerTransport) GetToken(r *http.Request) (string, error) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(r.Header.Get("Authorization")), " ")
	if !ok || !strings.EqualFold(scheme, bearerScheme) {
		return "", ErrSessionNotFound
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrSessionNotFound
	}
	return token, nil
}

func (BearerTransport) SetToken(http.ResponseWriter, string, time.Duration) error { return nil }

func (BearerTransport) ClearToken(http.ResponseWriter) error { return nil }

// FallbackTransport reads from the first transport that holds a token and
// writes through all of them in order.
type FallbackTransport []Transport

// GetToken returns the first token found.
func (f FallbackTransport) GetToken(r *http.Request) (string, error) {
	for _, t := range f {
		if token, err := t.GetToken(r); err == nil && token != "" {
			return token, nil
		}
	}
	return "", ErrSessionNotFound
}

// SetToken stops at the first failing transport.
func (f FallbackTransport) SetToken(w http.ResponseWriter, token string, ttl time.Duration) error {
	for _, t := range f {
		if err := t.SetToken(w, token, ttl); err != nil {
			return err
		}
	}
	return nil
}

// ClearToken stops at the first failing transport.
func (f FallbackTransport) ClearToken(w http.ResponseWriter) error {
	for _, t := range f {
		if err := t.ClearToken(w); err != nil {
			return err
		}
	}
	return nil
}
