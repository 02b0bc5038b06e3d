package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/secureauth/pkg/logger"
)

type ctxKey struct{}

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("json by default", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		logger.New(logger.WithOutput(buf)).Info("hello")

		entry := decodeLine(t, buf)
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "hello", entry["msg"])
	})

	t.Run("text format", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		logger.New(logger.WithOutput(buf), logger.WithFormat(logger.FormatText)).Info("hello")
		assert.Contains(t, buf.String(), "msg=hello")
	})

	t.Run("level filters", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithLevel(slog.LevelWarn))
		log.Info("dropped")
		assert.Empty(t, buf.String())
	})

	t.Run("invalid format panics", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() { logger.New(logger.WithFormat("xml")) })
	})

	t.Run("static attrs and context extractors", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithAttr(slog.String("service", "test")),
			logger.WithContextExtractors(nil, func(ctx context.Context) (slog.Attr, bool) {
				v, ok := ctx.Value(ctxKey{}).(string)
				return slog.String("trace", v), ok
			}),
		)

		ctx := context.WithValue(context.Background(), ctxKey{}, "t-1")
		log.With(slog.String("k", "v")).InfoContext(ctx, "hello")

		entry := decodeLine(t, buf)
		assert.Equal(t, "test", entry["service"])
		assert.Equal(t, "t-1", entry["trace"])
		assert.Equal(t, "v", entry["k"])
	})
}

func TestWithEnvironment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		env       string
		wantEnv   string
		wantDebug bool
	}{
		{env: "production", wantEnv: "production"},
		{env: "staging", wantEnv: "staging"},
		{env: "development", wantEnv: "development", wantDebug: true},
		{env: "", wantEnv: "development", wantDebug: true},
	}

	for _, tt := range tests {
		t.Run(tt.wantEnv+"/"+tt.env, func(t *testing.T) {
			t.Parallel()
			buf := &bytes.Buffer{}
			log := logger.New(logger.WithOutput(buf), logger.WithEnvironment(tt.env, "svc"))

			assert.Equal(t, tt.wantDebug, log.Enabled(context.Background(), slog.LevelDebug))
			log.Info("hello")
			if tt.wantDebug {
				assert.Contains(t, buf.String(), "env="+tt.wantEnv)
				assert.Contains(t, buf.String(), "service=svc")
				return
			}
			entry := decodeLine(t, buf)
			assert.Equal(t, tt.wantEnv, entry["env"])
			assert.Equal(t, "svc", entry["service"])
		})
	}
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	t.Run("level overrides environment", func(t *testing.T) {
		t.Parallel()
		log, err := logger.NewFromConfig(logger.Config{Level: "WARN"}, logger.WithEnvironment("development", ""))
		require.NoError(t, err)
		assert.False(t, log.Enabled(context.Background(), slog.LevelInfo))
	})

	t.Run("invalid level", func(t *testing.T) {
		t.Parallel()
		_, err := logger.NewFromConfig(logger.Config{Level: "loud"})
		assert.ErrorIs(t, err, logger.ErrInvalidLevel)
	})

	t.Run("invalid format", func(t *testing.T) {
		t.Parallel()
		_, err := logger.NewFromConfig(logger.Config{Format: "xml"})
		assert.ErrorIs(t, err, logger.ErrInvalidFormat)
	})
}

func TestAttrs(t *testing.T) {
	t.Parallel()

	empty := slog.Attr{}
	assert.True(t, logger.Error(nil).Equal(empty))
	assert.True(t, logger.RequestID("").Equal(empty))
	assert.True(t, logger.ClientIP("").Equal(empty))
	assert.True(t, logger.Email("").Equal(empty))
	assert.True(t, logger.UserID(nil).Equal(empty))

	err := errors.New("boom")
	assert.Equal(t, err, logger.Error(err).Value.Any())
	assert.Equal(t, "req-1", logger.RequestID("req-1").Value.String())
	assert.Equal(t, "reason", logger.Reason("x").Key)
	assert.Equal(t, int64(503), logger.StatusCode(503).Value.Int64())
}

func TestEmail(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"alice@example.com": "a***@example.com",
		"élodie@example.fr": "é***@example.fr",
		"@example.com":      "***",
		"not-an-email":      "***",
	}
	for in, want := range tests {
		attr := logger.Email(in)
		assert.Equal(t, "email", attr.Key)
		assert.Equal(t, want, attr.Value.String(), in)
	}
}
