// Package captcha verifies human-verification tokens with an external
// siteverify-style provider such as Google reCAPTCHA.
//
// The outcome is a closed set of three results. Verified and Rejected are
// verdicts; Unavailable means the provider could not be reached or answered
// with something unusable. Rejected maps to a client error (resubmit with a
// new token), Unavailable to a service error (retry later). The two are never
// merged.
//
// Classification order:
//
//  1. verification disabled: Verified, no request
//  2. empty token: Rejected, no request
//  3. transport failure or timeout: Unavailable{ReasonConnection}
//  4. non-200 status: Unavailable{ReasonBadStatus}
//  5. body not a JSON object: Unavailable{ReasonBadPayload}
//  6. "success" missing or falsy: Rejected
//  7. "success" truthy: Verified
//
// Usage:
//
//	v := captcha.New(captcha.Config{
//	    Enabled:   true,
//	    SecretKey: os.Getenv("RECAPTCHA_SECRET_KEY"),
//	})
//	switch res := v.Verify(ctx, token, clientIP).(type) {
//	case captcha.Verified:
//	case captcha.Rejected:
//	case captcha.Unavailable:
//	    log.Println(res.Reason)
//	}
//
// Each call performs at most one request, bounded by Config.Timeout (5s by
// default). Nothing is retried automatically.
package captcha
