package account_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/secureauth/handler"
	"github.com/dmitrymomot/secureauth/modules/account"
	"github.com/dmitrymomot/secureauth/pkg/auth"
	"github.com/dmitrymomot/secureauth/pkg/captcha"
	"github.com/dmitrymomot/secureauth/pkg/clientip"
	"github.com/dmitrymomot/secureauth/pkg/jwt"
	"github.com/dmitrymomot/secureauth/pkg/password"
	"github.com/dmitrymomot/secureauth/pkg/session"
)

const (
	testEmail    = "user@example.com"
	testPassword = "Str0ng!pass"
)

type testServer struct {
	*httptest.Server
	storage *auth.MemoryStorage
	client  *http.Client
}

func newTestServer(t *testing.T, captchaCfg captcha.Config) *testServer {
	t.Helper()

	tokens, err := jwt.NewFromString("account-test-secret-0123456789abcdef", jwt.WithTTL(15*time.Minute))
	require.NoError(t, err)

	storage := auth.NewMemoryStorage()
	svc := auth.NewService(
		storage,
		password.NewBcryptHasher(password.WithCost(bcrypt.MinCost)),
		tokens,
		session.NewCookieTransport(nil),
		captcha.New(captchaCfg),
	)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	router := account.Router(account.RouterOptions{
		Password: account.NewPasswordHandler(svc, account.WithLogger(log)),
	})

	srv := httptest.NewServer(clientip.New().Middleware(router))
	t.Cleanup(srv.Close)

	return &testServer{Server: srv, storage: storage, client: srv.Client()}
}

func (s *testServer) postJSON(t *testing.T, path, body string, cookies ...*http.Cookie) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, s.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	resp, err := s.client.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func (s *testServer) get(t *testing.T, path string, cookies ...*http.Cookie) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, s.URL+path, nil)
	require.NoError(t, err)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	resp, err := s.client.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func findCookie(resp *http.Response, name string) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func register(t *testing.T, s *testServer) {
	t.Helper()
	resp := s.postJSON(t, "/register", `{"email":"`+testEmail+`","password":"`+testPassword+`"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestRegister(t *testing.T) {
	t.Parallel()

	t.Run("created", func(t *testing.T) {
		t.Parallel()
		s := newTestServer(t, captcha.Config{})

		resp := s.postJSON(t, "/register", `{"email":"New@Example.com","password":"`+testPassword+`"}`)
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		user := decode[account.UserResponse](t, resp)
		assert.Equal(t, "new@example.com", user.Email)
		assert.False(t, user.Active)
		assert.NotEmpty(t, user.ID)
		assert.Equal(t, 1, s.storage.Len())
	})

	t.Run("duplicate", func(t *testing.T) {
		t.Parallel()
		s := newTestServer(t, captcha.Config{})
		register(t, s)

		resp := s.postJSON(t, "/register", `{"email":"`+testEmail+`","password":"`+testPassword+`"}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "already_exists", decode[handler.ErrorResponse](t, resp).Error.Code)
	})

	t.Run("weak password", func(t *testing.T) {
		t.Parallel()
		s := newTestServer(t, captcha.Config{})

		resp := s.postJSON(t, "/register", `{"email":"`+testEmail+`","password":"weak"}`)
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		body := decode[handler.ErrorResponse](t, resp)
		assert.Equal(t, "validation_failed", body.Error.Code)
		assert.NotEmpty(t, body.Error.Details["password"])
	})

	t.Run("malformed json", func(t *testing.T) {
		t.Parallel()
		s := newTestServer(t, captcha.Config{})

		resp := s.postJSON(t, "/register", `{"email":`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "bad_request", decode[handler.ErrorResponse](t, resp).Error.Code)
	})

	t.Run("captcha rejected", func(t *testing.T) {
		t.Parallel()
		provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseForm())
			assert.Equal(t, "127.0.0.1", r.PostForm.Get("remoteip"))
			_, _ = w.Write([]byte(`{"success": false, "error-codes": ["invalid-input-response"]}`))
		}))
		t.Cleanup(provider.Close)

		s := newTestServer(t, captcha.Config{Enabled: true, SecretKey: "k", VerifyURL: provider.URL})
		resp := s.postJSON(t, "/register", `{"email":"`+testEmail+`","password":"`+testPassword+`","captcha_token":"t"}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		body := decode[handler.ErrorResponse](t, resp)
		assert.Equal(t, "captcha_failed", body.Error.Code)
		assert.NotContains(t, body.Error.Message, "invalid-input-response")
		assert.Equal(t, 0, s.storage.Len())
	})

	t.Run("captcha provider down", func(t *testing.T) {
		t.Parallel()
		provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		t.Cleanup(provider.Close)

		s := newTestServer(t, captcha.Config{Enabled: true, SecretKey: "k", VerifyURL: provider.URL})
		resp := s.postJSON(t, "/register", `{"email":"`+testEmail+`","password":"`+testPassword+`","captcha_token":"t"}`)
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		assert.Equal(t, "5", resp.Header.Get("Retry-After"))
		assert.Equal(t, "dependency_unavailable", decode[handler.ErrorResponse](t, resp).Error.Code)
		assert.Equal(t, 0, s.storage.Len())
	})
}

func TestToken(t *testing.T) {
	t.Parallel()

	t.Run("json login sets cookie", func(t *testing.T) {
		t.Parallel()
		s := newTestServer(t, captcha.Config{})
		register(t, s)

		resp := s.postJSON(t, "/token", `{"email":"`+testEmail+`","password":"`+testPassword+`"}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "no-store", resp.Header.Get("Cache-Control"))

		body := decode[account.TokenResponse](t, resp)
		assert.Equal(t, "bearer", body.TokenType)
		assert.Equal(t, int64(900), body.ExpiresIn)

		c := findCookie(resp, session.DefaultCookieName)
		require.NotNil(t, c)
		assert.Equal(t, body.AccessToken, c.Value)
		assert.Equal(t, 900, c.MaxAge)
		assert.True(t, c.HttpOnly)
		assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
	})

	t.Run("form login", func(t *testing.T) {
		t.Parallel()
		s := newTestServer(t, captcha.Config{})
		register(t, s)

		form := url.Values{"username": {testEmail}, "password": {testPassword}, "grant_type": {"password"}}
		resp, err := s.client.PostForm(s.URL+"/token", form)
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.NotEmpty(t, decode[account.TokenResponse](t, resp).AccessToken)
	})

	t.Run("wrong password and unknown email look the same", func(t *testing.T) {
		t.Parallel()
		s := newTestServer(t, captcha.Config{})
		register(t, s)

		wrong := s.postJSON(t, "/token", `{"email":"`+testEmail+`","password":"Wr0ng!pass"}`)
		unknown := s.postJSON(t, "/token", `{"email":"ghost@example.com","password":"`+testPassword+`"}`)

		assert.Equal(t, http.StatusUnauthorized, wrong.StatusCode)
		assert.Equal(t, http.StatusUnauthorized, unknown.StatusCode)
		assert.Equal(t, "Bearer", wrong.Header.Get("WWW-Authenticate"))
		assert.Nil(t, findCookie(wrong, session.DefaultCookieName))

		a, b := decode[handler.ErrorResponse](t, wrong), decode[handler.ErrorResponse](t, unknown)
		assert.Equal(t, "invalid_credentials", a.Error.Code)
		assert.Equal(t, a, b)
	})
}

func TestMeAndLogout(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, captcha.Config{})
	register(t, s)

	login := s.postJSON(t, "/token", `{"email":"`+testEmail+`","password":"`+testPassword+`"}`)
	require.Equal(t, http.StatusOK, login.StatusCode)
	cookie := findCookie(login, session.DefaultCookieName)
	require.NotNil(t, cookie)

	t.Run("me with cookie", func(t *testing.T) {
		t.Parallel()
		resp := s.get(t, "/me", cookie)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		user := decode[account.UserResponse](t, resp)
		assert.Equal(t, testEmail, user.Email)
		assert.False(t, user.Active)
	})

	t.Run("me without cookie", func(t *testing.T) {
		t.Parallel()
		resp := s.get(t, "/me")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "Bearer", resp.Header.Get("WWW-Authenticate"))
		assert.Equal(t, "unauthenticated", decode[handler.ErrorResponse](t, resp).Error.Code)
	})

	t.Run("me with tampered cookie", func(t *testing.T) {
		t.Parallel()
		tampered := &http.Cookie{Name: cookie.Name, Value: cookie.Value + "x"}
		resp := s.get(t, "/me", tampered)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("logout clears cookie", func(t *testing.T) {
		t.Parallel()
		resp := s.postJSON(t, "/logout", ``, cookie)
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		cleared := findCookie(resp, session.DefaultCookieName)
		require.NotNil(t, cleared)
		assert.Empty(t, cleared.Value)
		assert.Less(t, cleared.MaxAge, 0)
	})
}
