package captcha

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/hashicorp/go-cleanhttp"

	"github.com/dmitrymomot/secureauth/pkg/logger"
)

// maxResponseBytes caps how much of the provider response is read.
const maxResponseBytes = 64 << 10

// Verifier checks CAPTCHA tokens against a siteverify-style provider.
// Its configuration is fixed at construction; it is safe for concurrent use.
type Verifier struct {
	cfg    Config
	client *http.Client
	logger *slog.Logger
}

// Option configures Verifier.
type Option func(*Verifier)

// WithHTTPClient sets the HTTP client used to reach the provider.
func WithHTTPClient(client *http.Client) Option {
	return func(v *Verifier) {
		if client != nil {
			v.client = client
		}
	}
}

// WithLogger sets a logger for provider diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(v *Verifier) {
		if l != nil {
			v.logger = l
		}
	}
}

// New creates a verifier. Zero VerifyURL and Timeout take the package defaults.
func New(cfg Config, opts ...Option) *Verifier {
	if cfg.VerifyURL == "" {
		cfg.VerifyURL = DefaultVerifyURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	v := &Verifier{
		cfg:    cfg,
		client: cleanhttp.DefaultPooledClient(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Enabled reports whether verification is switched on.
func (v *Verifier) Enabled() bool {
	return v.cfg.Enabled
}

// providerResponse holds the raw fields of the siteverify response. Only
// "success" decides the outcome.
type providerResponse map[string]json.RawMessage

// errorCodes returns the provider's error codes when they are a list of
// strings, and nil for any other shape.
func (p providerResponse) errorCodes() []string {
	raw, ok := p["error-codes"]
	if !ok {
		return nil
	}
	var codes []string
	if err := json.Unmarshal(raw, &codes); err != nil {
		return nil
	}
	return codes
}

// Verify classifies token as Verified, Rejected or Unavailable.
//
// When disabled it returns Verified without any network call, and an empty
// token is Rejected without any network call. Otherwise exactly one POST is
// made, bounded by the configured timeout. clientIP is optional.
func (v *Verifier) Verify(ctx context.Context, token, clientIP string) Result {
	if !v.cfg.Enabled {
		return Verified{}
	}
	if token == "" {
		return Rejected{}
	}

	form := url.Values{
		"secret":   {v.cfg.SecretKey},
		"response": {token},
	}
	if clientIP != "" {
		form.Set("remoteip", clientIP)
	}

	ctx, cancel := context.WithTimeout(ctx, v.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.cfg.VerifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		v.unavailable(ctx, ReasonConnection, logger.Error(err))
		return Unavailable{Reason: ReasonConnection}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := v.client.Do(req)
	if err != nil {
		v.unavailable(ctx, ReasonConnection, logger.Error(err))
		return Unavailable{Reason: ReasonConnection}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		v.unavailable(ctx, ReasonBadStatus, logger.StatusCode(resp.StatusCode))
		return Unavailable{Reason: ReasonBadStatus}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		v.unavailable(ctx, ReasonConnection, logger.Error(err))
		return Unavailable{Reason: ReasonConnection}
	}

	var payload providerResponse
	if err := decodeObject(body, &payload); err != nil {
		v.unavailable(ctx, ReasonBadPayload, logger.Error(err))
		return Unavailable{Reason: ReasonBadPayload}
	}

	if !truthy(payload["success"]) {
		codes := payload.errorCodes()
		v.logger.InfoContext(ctx, "captcha rejected",
			logger.Component("captcha"),
			slog.Any("error_codes", codes),
		)
		return Rejected{ErrorCodes: codes}
	}

	return Verified{}
}

func (v *Verifier) unavailable(ctx context.Context, reason Reason, attrs ...slog.Attr) {
	attrs = append(attrs, logger.Component("captcha"), logger.Reason(string(reason)))
	v.logger.LogAttrs(ctx, slog.LevelWarn, "captcha provider unavailable", attrs...)
}

// decodeObject unmarshals body into dst and requires it to be a JSON object.
func decodeObject(body []byte, dst *providerResponse) error {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return ErrNotJSONObject
	}
	return json.Unmarshal(trimmed, dst)
}

// truthy evaluates a JSON value the way a dynamic language would:
// false, 0, "", null, [] and {} are falsy; anything else is truthy.
func truthy(raw json.RawMessage) bool {
	if len(raw) == 0 {
		return false
	}

	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return false
	}

	switch val := value.(type) {
	case bool:
		return val
	case float64:
		return val != 0
	case string:
		return val != ""
	case []any:
		return len(val) > 0
	case map[string]any:
		return len(val) > 0
	default:
		return false
	}
}
