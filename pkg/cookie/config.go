package cookie

// Config holds cookie attributes loaded from the environment.
type Config struct {
	Domain string `env:"COOKIE_DOMAIN"`
	Secure bool   `env:"COOKIE_SECURE" envDefault:"false"` // must be true when served over TLS
}

// NewFromConfig creates a Manager from cfg on top of New's defaults.
func NewFromConfig(cfg Config, opts ...Option) *Manager {
	base := []Option{WithSecure(cfg.Secure), WithDomain(cfg.Domain)}
	return New(append(base, opts...)...)
}
