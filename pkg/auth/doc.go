// Package auth implements password authentication over stateless signed
// session tokens: registration gated by CAPTCHA, login that sets a session
// cookie, and resolution of the current user from an incoming request.
//
// The Service composes independent collaborators:
//
//   - Storage persists credential records (MemoryStorage, or pkg/auth/postgres)
//   - password.Hasher hashes and verifies passwords
//   - TokenIssuer issues and verifies signed tokens (pkg/jwt)
//   - session.Transport moves the token in and out of HTTP messages
//   - CaptchaVerifier gates registration (pkg/captcha)
//
// # Flows
//
// ResolveCurrentUser extracts the token, verifies it and looks up the subject.
// Login looks up the email and verifies the password; an unknown email and a
// wrong password produce the same InvalidCredentials error. Register validates
// input, then checks the CAPTCHA, then the existing record, and hashes the
// password only after all checks pass. New records are inactive.
//
// # Errors
//
// Every failure is an *Error with a stable Kind:
//
//	user, err := svc.Login(ctx, w, email, password)
//	switch auth.KindOf(err) {
//	case auth.KindInvalidCredentials:
//	    // 401
//	case auth.KindDependencyUnavailable:
//	    // 503
//	}
//
// errors.Is matches by kind, so errors.Is(err, auth.ErrInvalidCredentials) is
// true for any invalid-credentials failure. Messages are fixed per kind and
// never include the email or an underlying fault; the cause is kept in Err
// for logging.
//
// # Middleware
//
//	r.With(auth.Middleware(svc, nil)).Get("/me", func(w http.ResponseWriter, r *http.Request) {
//	    user, _ := auth.UserFromContext(r.Context())
//	    ...
//	})
package auth
