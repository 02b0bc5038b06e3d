// Package jwt issues and verifies the signed, self-contained session tokens
// used by the authentication flow.
//
// Tokens are standard JWTs whose claim set is limited to the subject (sub)
// and an absolute expiry (exp). Signing uses a symmetric HMAC-SHA-2 algorithm
// (HS256 by default, HS384 and HS512 on request) via github.com/golang-jwt/jwt/v5.
// The verifier pins the configured algorithm, so tokens signed with a
// different one, or with "none", are refused.
//
// # Usage
//
//	svc, err := jwt.NewFromConfig(jwt.Config{
//	    SecretKey:  os.Getenv("SECRET_KEY"),
//	    Algorithm:  "HS256",
//	    TTLMinutes: 30,
//	})
//	if err != nil {
//	    // handle error
//	}
//
//	token, err := svc.Issue("user@example.com", svc.TTL())
//
//	subject, ok := svc.Verify(token)
//	if !ok {
//	    // malformed, forged or expired: deliberately indistinguishable
//	}
//
// # Error Handling
//
// Construction and issuance return sentinel errors (ErrMissingSigningKey,
// ErrUnsupportedAlgorithm, ErrMissingSubject). Verify never returns an error;
// every failure collapses to an absent subject.
package jwt
