package clientip

// Config selects which proxy headers are trusted for the client IP.
type Config struct {
	// TrustedHeaders lists proxy headers in priority order, e.g.
	// "CF-Connecting-IP,X-Forwarded-For". Empty trusts none.
	TrustedHeaders []string `env:"CLIENTIP_TRUSTED_HEADERS" envSeparator:","`
}

// NewFromConfig creates a Resolver from cfg.
func NewFromConfig(cfg Config) *Resolver {
	return New(cfg.TrustedHeaders...)
}
