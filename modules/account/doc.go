// Package account exposes email and password authentication over HTTP.
//
// Routes:
//
//	POST /register  {email, password, captcha_token}  201 {id, email, active}
//	POST /token     {email, password} or form username/password  200 {access_token, token_type, expires_in}
//	GET  /me        session cookie                    200 {id, email, active}
//	POST /logout                                      204
//
// POST /token also sets the session cookie. Failures use the handler error
// envelope with the auth kind as code: unauthenticated and
// invalid_credentials are 401, captcha_failed and already_exists are 400,
// validation_failed is 422 and dependency_unavailable is 503.
package account
