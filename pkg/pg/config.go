package pg

import "time"

// Config holds PostgreSQL pool, retry and migration settings.
type Config struct {
	ConnectionString  string        `env:"DATABASE_URL"`                           // Empty means no database is configured.
	MaxOpenConns      int32         `env:"PG_MAX_OPEN_CONNS" envDefault:"10"`      // Maximum number of open connections.
	MaxIdleConns      int32         `env:"PG_MAX_IDLE_CONNS" envDefault:"2"`       // Minimum number of connections kept open.
	HealthCheckPeriod time.Duration `env:"PG_HEALTHCHECK_PERIOD" envDefault:"1m"`  // Period between pool health checks.
	MaxConnIdleTime   time.Duration `env:"PG_MAX_CONN_IDLE_TIME" envDefault:"10m"` // Idle time after which a connection is closed.
	MaxConnLifetime   time.Duration `env:"PG_MAX_CONN_LIFETIME" envDefault:"30m"`  // Lifetime after which a connection is recycled.

	RetryAttempts int           `env:"PG_RETRY_ATTEMPTS" envDefault:"3"`  // Total connection attempts.
	RetryInterval time.Duration `env:"PG_RETRY_INTERVAL" envDefault:"1s"` // Base delay, doubled after each failed attempt.

	MigrationsPath  string `env:"PG_MIGRATIONS_PATH" envDefault:"."`                  // Directory of goose migrations, relative to the migrations FS.
	MigrationsTable string `env:"PG_MIGRATIONS_TABLE" envDefault:"schema_migrations"` // Table storing the applied migration version.
}
