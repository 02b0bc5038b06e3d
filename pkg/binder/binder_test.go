package binder_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/secureauth/pkg/binder"
)

type credentials struct {
	Email    string   `json:"email" form:"username"`
	Password string   `json:"password" form:"password"`
	Scopes   []string `json:"scopes,omitempty" form:"scope"`
	Internal string   `json:"-" form:"-"`
}

func newRequest(contentType, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return req
}

func TestJSON(t *testing.T) {
	t.Parallel()

	t.Run("binds body as sent", func(t *testing.T) {
		t.Parallel()
		var got credentials
		err := binder.JSON()(newRequest("application/json; charset=utf-8", `{"email":" A@B.c ","password":" <p@ss> "}`), &got)
		require.NoError(t, err)
		assert.Equal(t, " A@B.c ", got.Email)
		assert.Equal(t, " <p@ss> ", got.Password)
	})

	tests := []struct {
		name string
		ct   string
		body string
		want error
	}{
		{"not json", "text/plain", `{}`, binder.ErrBinderNotApplicable},
		{"no content type", "", `{}`, binder.ErrBinderNotApplicable},
		{"empty body", "application/json", ``, binder.ErrFailedToParseJSON},
		{"malformed", "application/json", `{"email":`, binder.ErrFailedToParseJSON},
		{"unknown field", "application/json", `{"admin":true}`, binder.ErrFailedToParseJSON},
		{"trailing data", "application/json", `{"email":"a"} {"email":"b"}`, binder.ErrFailedToParseJSON},
		{"too large", "application/json", `{"email":"` + strings.Repeat("a", binder.DefaultMaxBodySize) + `"}`, binder.ErrRequestTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var got credentials
			err := binder.JSON()(newRequest(tt.ct, tt.body), &got)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestForm(t *testing.T) {
	t.Parallel()

	t.Run("binds tagged fields", func(t *testing.T) {
		t.Parallel()
		var got credentials
		body := "username=user%40example.com&password=S3cret%21&scope=a&scope=b&Internal=x"
		err := binder.Form()(newRequest("application/x-www-form-urlencoded", body), &got)
		require.NoError(t, err)
		assert.Equal(t, "user@example.com", got.Email)
		assert.Equal(t, "S3cret!", got.Password)
		assert.Equal(t, []string{"a", "b"}, got.Scopes)
		assert.Empty(t, got.Internal)
	})

	t.Run("not applicable", func(t *testing.T) {
		t.Parallel()
		var got credentials
		err := binder.Form()(newRequest("application/json", `{}`), &got)
		assert.ErrorIs(t, err, binder.ErrBinderNotApplicable)
	})

	t.Run("malformed", func(t *testing.T) {
		t.Parallel()
		var got credentials
		err := binder.Form()(newRequest("application/x-www-form-urlencoded", "username=%zz"), &got)
		assert.ErrorIs(t, err, binder.ErrFailedToParseForm)
	})

	t.Run("unsupported field type", func(t *testing.T) {
		t.Parallel()
		var got struct {
			Age int `form:"age"`
		}
		err := binder.Form()(newRequest("application/x-www-form-urlencoded", "age=3"), &got)
		assert.ErrorIs(t, err, binder.ErrFailedToParseForm)
	})

	t.Run("non pointer target", func(t *testing.T) {
		t.Parallel()
		err := binder.Form()(newRequest("application/x-www-form-urlencoded", "username=a"), credentials{})
		assert.ErrorIs(t, err, binder.ErrFailedToParseForm)
	})
}
