package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/secureauth/migrations"
	"github.com/dmitrymomot/secureauth/modules/account"
	"github.com/dmitrymomot/secureauth/pkg/auth"
	"github.com/dmitrymomot/secureauth/pkg/auth/postgres"
	"github.com/dmitrymomot/secureauth/pkg/captcha"
	"github.com/dmitrymomot/secureauth/pkg/clientip"
	"github.com/dmitrymomot/secureauth/pkg/config"
	"github.com/dmitrymomot/secureauth/pkg/cookie"
	"github.com/dmitrymomot/secureauth/pkg/httpserver"
	"github.com/dmitrymomot/secureauth/pkg/jwt"
	"github.com/dmitrymomot/secureauth/pkg/logger"
	"github.com/dmitrymomot/secureauth/pkg/password"
	"github.com/dmitrymomot/secureauth/pkg/pg"
	"github.com/dmitrymomot/secureauth/pkg/requestid"
	"github.com/dmitrymomot/secureauth/pkg/session"
)

func main() {
	if err := run(context.Background()); err != nil {
		slog.Error("server exited", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var cfg Config
	if err := config.Load(&cfg, config.WithFiles(".env")); err != nil {
		return err
	}

	log, err := logger.NewFromConfig(cfg.Log,
		logger.WithEnvironment(cfg.App.Env, cfg.App.Name),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
	if err != nil {
		return err
	}
	slog.SetDefault(log)

	storage, readiness, closeStorage, err := openStorage(ctx, cfg.Postgres, log)
	if err != nil {
		return err
	}
	defer closeStorage()

	tokens, err := jwt.NewFromConfig(cfg.JWT)
	if err != nil {
		return err
	}
	if err := cfg.Captcha.Validate(); err != nil {
		return err
	}

	transport := session.NewFromConfig(cfg.Session, cookie.NewFromConfig(cfg.Cookie))
	svc := auth.NewService(
		storage,
		password.NewFromConfig(cfg.Password),
		tokens,
		transport,
		captcha.New(cfg.Captcha, captcha.WithLogger(log)),
		auth.WithLogger(log),
	)

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(clientip.NewFromConfig(cfg.ClientIP).Middleware)

	r.Get("/health/live", httpserver.HealthCheckHandler(log))
	r.Get("/health/ready", httpserver.HealthCheckHandler(log, readiness...))
	r.Mount("/", account.Router(account.RouterOptions{
		Password: account.NewPasswordHandler(svc, account.WithLogger(log)),
	}))

	return httpserver.NewFromConfig(cfg.HTTP, r, httpserver.WithLogger(log)).Run(ctx)
}

// openStorage connects to Postgres and applies migrations when DATABASE_URL
// is set, otherwise it falls back to process-local memory storage.
func openStorage(ctx context.Context, cfg pg.Config, log *slog.Logger) (auth.Storage, []httpserver.Check, func(), error) {
	if cfg.ConnectionString == "" {
		log.Warn("DATABASE_URL is empty, using in-memory storage", logger.Component("storage"))
		return auth.NewMemoryStorage(), nil, func() {}, nil
	}

	pool, err := pg.Connect(ctx, cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := pg.Migrate(ctx, pool, migrations.FS, cfg, log); err != nil {
		pool.Close()
		return nil, nil, nil, err
	}

	checks := []httpserver.Check{pg.Healthcheck(pool)}
	return postgres.NewCredentialRepository(pool), checks, pool.Close, nil
}
