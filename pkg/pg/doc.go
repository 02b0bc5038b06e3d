// Package pg bootstraps PostgreSQL access on pgx/v5: a pooled connection with
// retry on startup, goose migrations over the same pool, a readiness probe
// and helpers that classify driver errors.
//
// Usage:
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, migrations.FS, cfg, log); err != nil {
//		return err
//	}
//
// Connect makes cfg.RetryAttempts attempts, waiting cfg.RetryInterval after
// the first failure and doubling the delay each time. Migrate reads
// cfg.MigrationsPath from the given fs.FS, normally an embed.FS.
package pg
