// Package cookie wraps net/http cookies with shared default attributes.
//
// A Manager is created once with defaults (Path "/", HttpOnly, SameSite=Lax,
// Secure when configured) and then used to Set, Get and Delete cookies.
// Per-call options override the defaults without mutating them.
//
//	man := cookie.New(cookie.WithSecure(true))
//	_ = man.Set(w, "access_token", token, cookie.WithMaxAge(1800))
//	value, err := man.Get(r, "access_token")
//	man.Delete(w, "access_token")
//
// # Configuration
//
// Config can be populated from the environment via github.com/caarlos0/env:
//
//	var cfg cookie.Config
//	_ = config.Load(&cfg)
//	man := cookie.NewFromConfig(cfg)
//
// COOKIE_SECURE must be enabled whenever the application is served over TLS.
package cookie
