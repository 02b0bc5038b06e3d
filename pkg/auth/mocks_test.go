package auth_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/dmitrymomot/secureauth/pkg/auth"
	"github.com/dmitrymomot/secureauth/pkg/captcha"
)

// MockStorage is a mock implementation of auth.Storage.
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) GetCredentialByEmail(ctx context.Context, email string) (*auth.Credential, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Credential), args.Error(1)
}

func (m *MockStorage) CreateCredential(ctx context.Context, cred *auth.Credential) error {
	args := m.Called(ctx, cred)
	return args.Error(0)
}

// MockCaptcha is a mock implementation of auth.CaptchaVerifier.
type MockCaptcha struct {
	mock.Mock
}

func (m *MockCaptcha) Verify(ctx context.Context, token, clientIP string) captcha.Result {
	args := m.Called(ctx, token, clientIP)
	return args.Get(0).(captcha.Result)
}

// MockTokens is a mock implementation of auth.TokenIssuer.
type MockTokens struct {
	mock.Mock
}

func (m *MockTokens) Issue(subject string, ttl time.Duration) (string, error) {
	args := m.Called(subject, ttl)
	return args.String(0), args.Error(1)
}

func (m *MockTokens) Verify(token string) (string, bool) {
	args := m.Called(token)
	return args.String(0), args.Bool(1)
}

func (m *MockTokens) TTL() time.Duration {
	args := m.Called()
	return args.Get(0).(time.Duration)
}
