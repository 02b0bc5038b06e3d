package jwt

import (
	"errors"
	"fmt"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
)

// DefaultAlgorithm is used when no algorithm is configured.
const DefaultAlgorithm = "HS256"

// DefaultTTL is the session lifetime used when none is configured.
const DefaultTTL = 30 * time.Minute

// supportedMethods lists the symmetric signing methods a Service accepts.
var supportedMethods = map[string]*gojwt.SigningMethodHMAC{
	gojwt.SigningMethodHS256.Alg(): gojwt.SigningMethodHS256,
	gojwt.SigningMethodHS384.Alg(): gojwt.SigningMethodHS384,
	gojwt.SigningMethodHS512.Alg(): gojwt.SigningMethodHS512,
}

// Claims is the session claim set: subject and absolute expiry only.
type Claims = gojwt.RegisteredClaims

// Service issues and verifies signed session tokens.
// It holds no mutable state after construction and is safe for concurrent use.
type Service struct {
	signingKey []byte
	method     *gojwt.SigningMethodHMAC
	ttl        time.Duration
	now        func() time.Time
}

// Option configures Service.
type Option func(*Service)

// WithAlgorithm selects the HMAC algorithm by its JOSE name (HS256, HS384, HS512).
// Unknown names leave the method unset so New reports ErrUnsupportedAlgorithm.
func WithAlgorithm(alg string) Option {
	return func(s *Service) {
		s.method = supportedMethods[alg]
	}
}

// WithTTL sets the default session lifetime returned by TTL.
func WithTTL(ttl time.Duration) Option {
	return func(s *Service) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithClock overrides the time source used for issuing and verifying tokens.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// New creates a token service signing with signingKey.
func New(signingKey []byte, opts ...Option) (*Service, error) {
	if len(signingKey) == 0 {
		return nil, ErrMissingSigningKey
	}

	s := &Service{
		signingKey: signingKey,
		method:     gojwt.SigningMethodHS256,
		ttl:        DefaultTTL,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.method == nil {
		return nil, ErrUnsupportedAlgorithm
	}

	return s, nil
}

// NewFromString is a convenience wrapper around New for string keys.
func NewFromString(signingKey string, opts ...Option) (*Service, error) {
	return New([]byte(signingKey), opts...)
}

// NewFromConfig creates a token service from Config.
func NewFromConfig(cfg Config, opts ...Option) (*Service, error) {
	alg := cfg.Algorithm
	if alg == "" {
		alg = DefaultAlgorithm
	}
	configOpts := []Option{WithAlgorithm(alg)}
	if cfg.TTLMinutes > 0 {
		configOpts = append(configOpts, WithTTL(time.Duration(cfg.TTLMinutes)*time.Minute))
	}
	if _, ok := supportedMethods[alg]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, alg)
	}
	return NewFromString(cfg.SecretKey, append(configOpts, opts...)...)
}

// TTL returns the configured session lifetime.
func (s *Service) TTL() time.Duration {
	return s.ttl
}

// Algorithm returns the JOSE name of the signing algorithm.
func (s *Service) Algorithm() string {
	return s.method.Alg()
}

// Issue signs a token for subject expiring ttl from now.
// Two calls at different instants produce different tokens.
func (s *Service) Issue(subject string, ttl time.Duration) (string, error) {
	if subject == "" {
		return "", ErrMissingSubject
	}
	if ttl <= 0 {
		return "", ErrInvalidTTL
	}

	claims := Claims{
		Subject:   subject,
		ExpiresAt: gojwt.NewNumericDate(s.now().Add(ttl)),
	}

	token, err := gojwt.NewWithClaims(s.method, claims).SignedString(s.signingKey)
	if err != nil {
		return "", errors.Join(ErrSigningFailed, err)
	}
	return token, nil
}

// Verify checks signature, algorithm and expiry in a single parse and returns the subject.
// Any failure yields ("", false); callers cannot tell malformed, forged and expired tokens apart.
func (s *Service) Verify(token string) (string, bool) {
	claims, err := s.parse(token)
	if err != nil || claims.Subject == "" {
		return "", false
	}
	return claims.Subject, true
}

// parse returns the verified claims or the reason they were refused.
func (s *Service) parse(token string) (*Claims, error) {
	if token == "" {
		return nil, ErrInvalidToken
	}

	claims := &Claims{}
	parsed, err := gojwt.ParseWithClaims(token, claims,
		func(*gojwt.Token) (any, error) { return s.signingKey, nil },
		gojwt.WithValidMethods([]string{s.method.Alg()}),
		gojwt.WithExpirationRequired(),
		gojwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, gojwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, errors.Join(ErrInvalidToken, err)
	}
	if !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
