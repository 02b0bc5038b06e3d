package cookie_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/secureauth/pkg/cookie"
)

func responseCookie(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("cookie %q not set", name)
	return nil
}

func TestNew_Defaults(t *testing.T) {
	t.Parallel()

	defaults := cookie.New().Defaults()
	assert.Equal(t, "/", defaults.Path)
	assert.True(t, defaults.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, defaults.SameSite)
	assert.False(t, defaults.Secure)
	assert.Zero(t, defaults.MaxAge)
}

func TestManager_SetGet(t *testing.T) {
	t.Parallel()

	man := cookie.New()
	rec := httptest.NewRecorder()
	require.NoError(t, man.Set(rec, "test", "value"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(responseCookie(t, rec, "test"))

	got, err := man.Get(req, "test")
	require.NoError(t, err)
	assert.Equal(t, "value", got)
}

func TestManager_Get_Missing(t *testing.T) {
	t.Parallel()

	man := cookie.New()

	t.Run("absent cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		_, err := man.Get(req, "missing")
		assert.ErrorIs(t, err, cookie.ErrCookieNotFound)
	})

	t.Run("empty value", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "empty", Value: ""})
		_, err := man.Get(req, "empty")
		assert.ErrorIs(t, err, cookie.ErrCookieNotFound)
	})
}

func TestManager_Set_EmptyName(t *testing.T) {
	t.Parallel()
	err := cookie.New().Set(httptest.NewRecorder(), "", "value")
	assert.ErrorIs(t, err, cookie.ErrEmptyName)
}

func TestManager_Options(t *testing.T) {
	t.Parallel()

	man := cookie.New(cookie.WithSecure(true), cookie.WithDomain("example.com"))
	rec := httptest.NewRecorder()
	require.NoError(t, man.Set(rec, "session", "token",
		cookie.WithMaxAge(1800),
		cookie.WithSameSite(http.SameSiteStrictMode),
	))

	c := responseCookie(t, rec, "session")
	assert.Equal(t, 1800, c.MaxAge)
	assert.True(t, c.Secure)
	assert.True(t, c.HttpOnly)
	assert.Equal(t, "/", c.Path)
	assert.Equal(t, "example.com", c.Domain)
	assert.Equal(t, http.SameSiteStrictMode, c.SameSite)

	// per-call overrides must not leak into defaults
	assert.Equal(t, http.SameSiteLaxMode, man.Defaults().SameSite)
	assert.Zero(t, man.Defaults().MaxAge)
}

func TestManager_Delete(t *testing.T) {
	t.Parallel()

	man := cookie.New(cookie.WithSecure(true))
	rec := httptest.NewRecorder()
	man.Delete(rec, "session")

	c := responseCookie(t, rec, "session")
	assert.Empty(t, c.Value)
	assert.Equal(t, -1, c.MaxAge)
	assert.True(t, c.Secure)
	assert.True(t, c.HttpOnly)
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	t.Run("zero config", func(t *testing.T) {
		t.Parallel()
		defaults := cookie.NewFromConfig(cookie.Config{}).Defaults()
		assert.Equal(t, "/", defaults.Path)
		assert.True(t, defaults.HttpOnly)
		assert.False(t, defaults.Secure)
		assert.Empty(t, defaults.Domain)
		assert.Equal(t, http.SameSiteLaxMode, defaults.SameSite)
	})

	t.Run("secure with domain", func(t *testing.T) {
		t.Parallel()
		defaults := cookie.NewFromConfig(cookie.Config{Secure: true, Domain: "auth.example.com"}).Defaults()
		assert.True(t, defaults.Secure)
		assert.Equal(t, "auth.example.com", defaults.Domain)
		assert.Equal(t, "/", defaults.Path)
	})

	t.Run("options override config", func(t *testing.T) {
		t.Parallel()
		defaults := cookie.NewFromConfig(cookie.Config{Secure: true}, cookie.WithSecure(false)).Defaults()
		assert.False(t, defaults.Secure)
	})
}
