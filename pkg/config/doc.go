// Package config loads application configuration from environment
// variables and optional .env files.
//
// It wraps `github.com/caarlos0/env/v11` for struct parsing and
// `github.com/joho/godotenv` for reading .env files. Each package in the
// service exposes its own Config struct with `env` tags; the binary composes
// them into one struct and calls Load once at startup.
//
// # Usage
//
//	type Config struct {
//		JWT      jwt.Config
//		Password password.Config
//		Captcha  captcha.Config
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, config.WithFiles(".env")); err != nil {
//		log.Fatalf("config: %v", err)
//	}
//
// Variables already set in the process environment take precedence over
// values from files. Missing files are ignored.
//
// # Testing
//
// WithEnvironment parses from an explicit map so tests do not touch the
// process environment and can run in parallel.
//
// # Error Handling
//
//   - ErrParsingConfig: a value could not be parsed or a required variable is missing.
//   - ErrReadingEnvFile: an existing .env file is malformed or unreadable.
//   - ErrNilPointer: Load was called with a nil pointer.
package config
