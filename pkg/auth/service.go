package auth

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/secureauth/pkg/captcha"
	"github.com/dmitrymomot/secureauth/pkg/logger"
	"github.com/dmitrymomot/secureauth/pkg/password"
	"github.com/dmitrymomot/secureauth/pkg/sanitizer"
	"github.com/dmitrymomot/secureauth/pkg/session"
	"github.com/dmitrymomot/secureauth/pkg/validator"
)

// Storage is the persistence collaborator for credential records.
// Implementations return ErrNotFound for a missing record and
// ErrDuplicateEmail when the uniqueness constraint rejects an insert.
type Storage interface {
	GetCredentialByEmail(ctx context.Context, email string) (*Credential, error)
	CreateCredential(ctx context.Context, cred *Credential) error
}

// TokenIssuer issues and verifies signed session tokens.
type TokenIssuer interface {
	Issue(subject string, ttl time.Duration) (string, error)
	Verify(token string) (string, bool)
	TTL() time.Duration
}

// CaptchaVerifier checks human-verification tokens.
type CaptchaVerifier interface {
	Verify(ctx context.Context, token, clientIP string) captcha.Result
}

// PasswordRules builds the complexity rules checked on registration.
type PasswordRules func(field, value string) []validator.Rule

// LoginResult is returned by a successful login.
type LoginResult struct {
	User        *User
	AccessToken string
	ExpiresIn   time.Duration
}

// Service implements the authentication flows: resolving the current user,
// logging in and registering. Each call is independent and the service holds
// no mutable state besides a lazily computed timing-equalization hash.
type Service struct {
	storage   Storage
	hasher    password.Hasher
	tokens    TokenIssuer
	transport session.Transport
	captcha   CaptchaVerifier
	logger    *slog.Logger
	rules     PasswordRules
	now       func() time.Time

	dummyOnce sync.Once
	dummyHash string
}

// ServiceOption configures Service.
type ServiceOption func(*Service)

// WithLogger sets the logger used for flow diagnostics.
func WithLogger(l *slog.Logger) ServiceOption {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithPasswordRules replaces the default password complexity rules.
func WithPasswordRules(rules PasswordRules) ServiceOption {
	return func(s *Service) {
		if rules != nil {
			s.rules = rules
		}
	}
}

// WithClock overrides the time source used for CreatedAt.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService creates the authentication flow controller.
func NewService(
	storage Storage,
	hasher password.Hasher,
	tokens TokenIssuer,
	transport session.Transport,
	captchaVerifier CaptchaVerifier,
	opts ...ServiceOption,
) *Service {
	s := &Service{
		storage:   storage,
		hasher:    hasher,
		tokens:    tokens,
		transport: transport,
		captcha:   captchaVerifier,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		rules:     validator.PasswordComplexity,
		now:       time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// ResolveCurrentUser returns the identity asserted by the session token in r.
func (s *Service) ResolveCurrentUser(ctx context.Context, r *http.Request) (*User, error) {
	token, err := s.transport.GetToken(r)
	if err != nil || token == "" {
		return nil, newError(KindUnauthenticated, ReasonMissingToken, err)
	}

	subject, ok := s.tokens.Verify(token)
	if !ok {
		return nil, newError(KindUnauthenticated, ReasonInvalidOrExpired, nil)
	}

	cred, err := s.storage.GetCredentialByEmail(ctx, subject)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, newError(KindUnauthenticated, ReasonUnknownSubject, nil)
		}
		s.logger.ErrorContext(ctx, "failed to look up session subject",
			logger.Component("auth"),
			logger.Error(err),
		)
		return nil, newError(KindDependencyUnavailable, "storage", err)
	}

	return cred.User(), nil
}

// Login verifies the credentials, issues a session token and writes it to w.
// An unknown email and a wrong password fail identically.
func (s *Service) Login(ctx context.Context, w http.ResponseWriter, email, pass string) (*LoginResult, error) {
	email = sanitizer.NormalizeEmail(email)

	cred, err := s.storage.GetCredentialByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.logger.ErrorContext(ctx, "failed to look up credential",
				logger.Component("auth"),
				logger.Error(err),
			)
			return nil, newError(KindDependencyUnavailable, "storage", err)
		}
		s.hasher.Verify(pass, s.timingHash())
		s.logger.WarnContext(ctx, "login failed",
			logger.Component("auth"),
			logger.Event("login_failed"),
			logger.Email(email),
			logger.Reason("unknown-email"),
		)
		return nil, newError(KindInvalidCredentials, "unknown-email", nil)
	}

	if !s.hasher.Verify(pass, cred.PasswordHash) {
		s.logger.WarnContext(ctx, "login failed",
			logger.Component("auth"),
			logger.Event("login_failed"),
			logger.UserID(cred.ID.String()),
			logger.Reason("wrong-password"),
		)
		return nil, newError(KindInvalidCredentials, "wrong-password", nil)
	}

	ttl := s.tokens.TTL()
	token, err := s.tokens.Issue(cred.Email, ttl)
	if err != nil {
		return nil, newError(KindDependencyUnavailable, "token", err)
	}

	if err := s.transport.SetToken(w, token, ttl); err != nil {
		return nil, newError(KindDependencyUnavailable, "transport", err)
	}

	s.logger.InfoContext(ctx, "user logged in",
		logger.Component("auth"),
		logger.Event("login"),
		logger.UserID(cred.ID.String()),
	)

	return &LoginResult{
		User:        cred.User(),
		AccessToken: token,
		ExpiresIn:   ttl,
	}, nil
}

// Register creates a new inactive credential record.
//
// Input is validated locally first. The CAPTCHA is then consulted before the
// existence check and before hashing, so a CAPTCHA failure never reveals
// whether the email is registered.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*User, error) {
	email := sanitizer.NormalizeEmail(in.Email)

	rules := []validator.Rule{validator.ValidEmail("email", email)}
	rules = append(rules, s.rules("password", in.Password)...)
	if err := validator.Apply(rules...); err != nil {
		verr := newError(KindValidationFailed, "", err)
		if verrs, ok := validator.As(err); ok {
			verr.Fields = verrs.FieldMessages()
		}
		return nil, verr
	}

	switch res := s.captcha.Verify(ctx, in.CaptchaToken, in.ClientIP).(type) {
	case captcha.Verified:
	case captcha.Rejected:
		return nil, newError(KindCaptchaFailed, "rejected", nil)
	case captcha.Unavailable:
		return nil, newError(KindDependencyUnavailable, "captcha-"+string(res.Reason), nil)
	default:
		return nil, newError(KindDependencyUnavailable, "captcha-unknown-result", nil)
	}

	_, err := s.storage.GetCredentialByEmail(ctx, email)
	if err == nil {
		return nil, newError(KindAlreadyExists, "", nil)
	}
	if !errors.Is(err, ErrNotFound) {
		s.logger.ErrorContext(ctx, "failed to check existing credential",
			logger.Component("auth"),
			logger.Error(err),
		)
		return nil, newError(KindDependencyUnavailable, "storage", err)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		if errors.Is(err, password.ErrPasswordTooLong) || errors.Is(err, password.ErrEmptyPassword) {
			verr := newError(KindValidationFailed, "", err)
			verr.Fields = map[string][]string{"password": {err.Error()}}
			return nil, verr
		}
		return nil, newError(KindDependencyUnavailable, "hash", err)
	}

	cred := &Credential{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		Active:       false,
		CreatedAt:    s.now().UTC(),
	}

	if err := s.storage.CreateCredential(ctx, cred); err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			return nil, newError(KindAlreadyExists, "", err)
		}
		s.logger.ErrorContext(ctx, "failed to create credential",
			logger.Component("auth"),
			logger.Error(err),
		)
		return nil, newError(KindDependencyUnavailable, "storage", err)
	}

	s.logger.InfoContext(ctx, "user registered",
		logger.Component("auth"),
		logger.Event("register"),
		logger.UserID(cred.ID.String()),
	)

	return cred.User(), nil
}

// Logout clears the session token on the client. Issued tokens stay valid
// until they expire.
func (s *Service) Logout(w http.ResponseWriter) error {
	return s.transport.ClearToken(w)
}

// timingHash returns a hash used to spend the same verification work on
// unknown emails as on known ones.
func (s *Service) timingHash() string {
	s.dummyOnce.Do(func() {
		hash, err := s.hasher.Hash("timing-equalization-password")
		if err == nil {
			s.dummyHash = hash
		}
	})
	return s.dummyHash
}
