// Package postgres stores auth credentials in PostgreSQL.
//
//	pool, _ := pg.Connect(ctx, cfg)
//	storage := postgres.NewCredentialRepository(pool)
//	svc := auth.NewService(storage, hasher, tokens, transport, verifier)
//
// The schema lives in the top-level migrations package.
package postgres
