// Package session moves stateless session tokens in and out of HTTP requests.
//
// There is no server-side session table: the token itself is the session.
// This package only knows where the token travels. CookieTransport keeps it
// in the "access_token" cookie (http-only, SameSite=Lax, path "/", Max-Age
// equal to the token lifetime, Secure when configured). BearerTransport only
// reads "Authorization: Bearer <token>". FallbackTransport tries several in
// order; NewFromConfig uses it when SESSION_BEARER_FALLBACK is set.
//
//	transport := session.NewCookieTransport(cookie.New(cookie.WithSecure(true)))
//	_ = transport.SetToken(w, token, 30*time.Minute)
//	token, err := transport.GetToken(r) // session.ErrSessionNotFound when absent
//	_ = transport.ClearToken(w)         // logout
package session
