package session

import (
	"net/http"
	"time"

	"github.com/dmitrymomot/secureauth/pkg/cookie"
)

// DefaultCookieName is the cookie carrying the session token.
const DefaultCookieName = "access_token"

// CookieTransport implements Transport using a single named cookie.
type CookieTransport struct {
	cookieMgr     *cookie.Manager
	cookieName    string
	secureCookies bool
	options       []cookie.Option
}

// CookieOption configures CookieTransport.
type CookieOption func(*CookieTransport)

// WithCookieName overrides DefaultCookieName.
func WithCookieName(name string) CookieOption {
	return func(t *CookieTransport) {
		if name != "" {
			t.cookieName = name
		}
	}
}

// WithSecureCookies sets the Secure attribute. It must be enabled when served over TLS.
func WithSecureCookies(secure bool) CookieOption {
	return func(t *CookieTransport) { t.secureCookies = secure }
}

// WithCookieOptions appends cookie options applied on every SetToken call.
func WithCookieOptions(opts ...cookie.Option) CookieOption {
	return func(t *CookieTransport) { t.options = append(t.options, opts...) }
}

// NewCookieTransport creates a cookie-based transport.
func NewCookieTransport(cookieMgr *cookie.Manager, opts ...CookieOption) *CookieTransport {
	if cookieMgr == nil {
		cookieMgr = cookie.New()
	}
	t := &CookieTransport{
		cookieMgr:     cookieMgr,
		cookieName:    DefaultCookieName,
		secureCookies: cookieMgr.Defaults().Secure,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// CookieName returns the name of the session cookie.
func (t *CookieTransport) CookieName() string {
	return t.cookieName
}

// GetToken reads the session token from the cookie.
func (t *CookieTransport) GetToken(r *http.Request) (string, error) {
	token, err := t.cookieMgr.Get(r, t.cookieName)
	if err != nil {
		return "", ErrSessionNotFound
	}
	return token, nil
}

// SetToken stores the token in an http-only, SameSite=Lax cookie on path "/"
// whose Max-Age equals ttl in seconds. These attributes are fixed and take
// precedence over the cookie manager defaults and WithCookieOptions.
func (t *CookieTransport) SetToken(w http.ResponseWriter, token string, ttl time.Duration) error {
	return t.cookieMgr.Set(w, t.cookieName, token, t.sessionOptions(int(ttl.Seconds()))...)
}

// ClearToken expires the session cookie on the same path it was set on.
func (t *CookieTransport) ClearToken(w http.ResponseWriter) error {
	return t.cookieMgr.Set(w, t.cookieName, "", t.sessionOptions(-1)...)
}

func (t *CookieTransport) sessionOptions(maxAge int) []cookie.Option {
	opts := append([]cookie.Option{cookie.WithSecure(t.secureCookies)}, t.options...)
	return append(opts,
		cookie.WithPath("/"),
		cookie.WithSameSite(http.SameSiteLaxMode),
		cookie.WithMaxAge(maxAge),
		cookie.WithHTTPOnly(true),
	)
}
