package session

import "github.com/dmitrymomot/secureauth/pkg/cookie"

// Config selects how session tokens are transported.
type Config struct {
	CookieName     string `env:"SESSION_COOKIE_NAME" envDefault:"access_token"`
	BearerFallback bool   `env:"SESSION_BEARER_FALLBACK" envDefault:"false"` // also accept "Authorization: Bearer"
}

// NewFromConfig builds the transport described by cfg on top of cookieMgr.
func NewFromConfig(cfg Config, cookieMgr *cookie.Manager) Transport {
	cookies := NewCookieTransport(cookieMgr, WithCookieName(cfg.CookieName))
	if !cfg.BearerFallback {
		return cookies
	}
	return FallbackTransport{cookies, BearerTransport{}}
}
