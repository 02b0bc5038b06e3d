package captcha

import "time"

// DefaultVerifyURL is the Google reCAPTCHA v2 verification endpoint.
const DefaultVerifyURL = "https://www.google.com/recaptcha/api/siteverify"

// DefaultTimeout bounds the outbound verification call.
const DefaultTimeout = 5 * time.Second

// Config holds CAPTCHA verification settings.
type Config struct {
	Enabled   bool          `env:"CAPTCHA_ENABLED" envDefault:"false"`
	SecretKey string        `env:"RECAPTCHA_SECRET_KEY"`
	VerifyURL string        `env:"RECAPTCHA_VERIFY_URL" envDefault:"https://www.google.com/recaptcha/api/siteverify"`
	Timeout   time.Duration `env:"CAPTCHA_TIMEOUT" envDefault:"5s"`
}

// Validate reports configuration that would make every verification fail.
func (c Config) Validate() error {
	if c.Enabled && c.SecretKey == "" {
		return ErrMissingSecret
	}
	return nil
}
