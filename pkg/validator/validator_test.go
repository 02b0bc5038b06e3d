package validator_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/secureauth/pkg/validator"
)

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("all rules pass", func(t *testing.T) {
		t.Parallel()
		err := validator.Apply(
			validator.RequiredString("name", "john"),
			validator.ValidEmail("email", "john@example.com"),
		)
		assert.NoError(t, err)
	})

	t.Run("failures are aggregated in order", func(t *testing.T) {
		t.Parallel()
		err := validator.Apply(
			validator.RequiredString("name", "  "),
			validator.ValidEmail("email", "nope"),
			validator.MinLenString("email", "nope", 10),
		)
		verrs, ok := validator.As(err)
		require.True(t, ok)
		require.Len(t, verrs, 3)
		assert.True(t, verrs.Has("name"))
		assert.True(t, verrs.Has("email"))
		assert.False(t, verrs.Has("password"))
		assert.Equal(t, []string{"required", "email", "min_length"}, []string{verrs[0].Code, verrs[1].Code, verrs[2].Code})
		assert.Equal(t, map[string][]string{
			"name":  {"field is required"},
			"email": {"must be a valid email address", "must be at least 10 characters long"},
		}, verrs.FieldMessages())
		assert.Equal(t, "validation failed: name: field is required; email: must be a valid email address; email: must be at least 10 characters long", err.Error())
	})

	t.Run("wrapped errors are extracted", func(t *testing.T) {
		t.Parallel()
		err := fmt.Errorf("register: %w", validator.Apply(validator.RequiredString("x", "")))
		verrs, ok := validator.As(err)
		assert.True(t, ok)
		assert.Len(t, verrs, 1)
	})

	t.Run("non validation errors", func(t *testing.T) {
		t.Parallel()
		_, ok := validator.As(nil)
		assert.False(t, ok)
		verrs, ok := validator.As(errors.New("boom"))
		assert.False(t, ok)
		assert.Nil(t, verrs)
	})
}

func TestErrors_Message(t *testing.T) {
	t.Parallel()

	var verrs validator.Errors
	assert.Nil(t, verrs.FieldMessages())
	assert.Equal(t, "validation failed", verrs.Error())

	verrs = append(verrs, validator.Violation{Field: "a", Message: "bad"})
	assert.Equal(t, "validation failed: a: bad", verrs.Error())
}

func TestValidEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		email string
		valid bool
	}{
		{"user@example.com", true},
		{"first.last+tag@sub.example.co", true},
		{"", false},
		{"   ", false},
		{"plainaddress", false},
		{"@example.com", false},
		{"user@", false},
		{"user@localhost", false},
		{"user@.example.com", false},
		{"user@example.com.", false},
		{"user@example..com", false},
		{"Jane <jane@example.com>", false},
		{" user@example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			t.Parallel()
			rule := validator.ValidEmail("email", tt.email)
			assert.Equal(t, tt.valid, rule.Check())
			assert.Equal(t, "email", rule.Field)
		})
	}
}

func TestMinLenString_CountsCharacters(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.MinLenString("p", "пароль12", 8).Check())
	assert.False(t, validator.MinLenString("p", "пароль1", 8).Check())
}

func TestMaxBytesString(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.MaxBytesString("p", strings.Repeat("a", 72), 72).Check())
	assert.False(t, validator.MaxBytesString("p", strings.Repeat("a", 73), 72).Check())
}

func TestPasswordComplexity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		password string
		wantMsgs []string
	}{
		{"valid", "Str0ng!pass", nil},
		{"space counts as special", "Str0ng pass", nil},
		{"unicode counts as special", "Str0ngpassé", nil},
		{"too short", "Sh0r!t", []string{"must be at least 8 characters long"}},
		{"no uppercase", "weak0!pass", []string{"password must contain at least one uppercase letter"}},
		{"no lowercase", "WEAK0!PASS", []string{"password must contain at least one lowercase letter"}},
		{"no digit", "Weak!pass", []string{"password must contain at least one digit"}},
		{"no special", "Weak0pass", []string{"password must contain at least one special character"}},
		{"too long", "Aa1!" + strings.Repeat("x", 70), []string{"must be at most 72 bytes long"}},
		{"empty", "", []string{
			"must be at least 8 characters long",
			"password must contain at least one uppercase letter",
			"password must contain at least one lowercase letter",
			"password must contain at least one digit",
			"password must contain at least one special character",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := validator.Apply(validator.PasswordComplexity("password", tt.password)...)
			if tt.wantMsgs == nil {
				assert.NoError(t, err)
				return
			}
			verrs, ok := validator.As(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantMsgs, verrs.FieldMessages()["password"])
		})
	}
}
