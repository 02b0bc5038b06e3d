package config

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Option configures a single Load call.
type Option func(*loader)

type loader struct {
	files       []string
	prefix      string
	environment map[string]string
}

// WithFiles loads the given .env files before parsing. Files that do not
// exist are skipped; values already present in the environment win.
func WithFiles(files ...string) Option {
	return func(l *loader) { l.files = append(l.files, files...) }
}

// WithPrefix requires every variable name to carry prefix, e.g. "AUTH_".
func WithPrefix(prefix string) Option {
	return func(l *loader) { l.prefix = prefix }
}

// WithEnvironment parses from vars instead of the process environment.
// Files passed via WithFiles are merged underneath vars.
func WithEnvironment(vars map[string]string) Option {
	return func(l *loader) { l.environment = maps.Clone(vars) }
}

// Load parses environment variables into v according to its `env` tags.
// Nested structs are parsed recursively so a service can compose the
// Config types of its packages into one struct:
//
//	type Config struct {
//		JWT     jwt.Config
//		Captcha captcha.Config
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, config.WithFiles(".env")); err != nil {
//		return err
//	}
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	l := &loader{}
	for _, opt := range opts {
		opt(l)
	}

	fileVars, err := l.readFiles()
	if err != nil {
		return err
	}

	envOpts := env.Options{Prefix: l.prefix}
	switch {
	case l.environment != nil:
		merged := fileVars
		maps.Copy(merged, l.environment)
		envOpts.Environment = merged
	case len(fileVars) > 0:
		merged := fileVars
		maps.Copy(merged, env.ToMap(os.Environ()))
		envOpts.Environment = merged
	}

	if err := env.ParseWithOptions(v, envOpts); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if parsing fails.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

func (l *loader) readFiles() (map[string]string, error) {
	vars := make(map[string]string)
	for _, name := range l.files {
		fileVars, err := godotenv.Read(name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, errors.Join(ErrReadingEnvFile, fmt.Errorf("%s: %w", name, err))
		}
		for k, val := range fileVars {
			if _, ok := vars[k]; !ok {
				vars[k] = val
			}
		}
	}
	return vars, nil
}
