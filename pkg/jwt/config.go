package jwt

// Config holds token signing configuration.
type Config struct {
	SecretKey  string `env:"SECRET_KEY,required"`                        // Process-wide signing secret.
	Algorithm  string `env:"ALGORITHM" envDefault:"HS256"`               // HS256, HS384 or HS512.
	TTLMinutes int    `env:"ACCESS_TOKEN_EXPIRE_MINUTES" envDefault:"30"` // Session lifetime in minutes.
}
