package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrymomot/secureauth/pkg/auth"
	"github.com/dmitrymomot/secureauth/pkg/pg"
)

// DB is the subset of *pgxpool.Pool used by the repository.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const (
	selectByEmailSQL = `SELECT id, email, hashed_password, is_active, created_at
FROM users
WHERE LOWER(email) = LOWER($1)`

	insertSQL = `INSERT INTO users (id, email, hashed_password, is_active, created_at)
VALUES ($1, $2, $3, $4, $5)`
)

// CredentialRepository implements auth.Storage over the users table.
type CredentialRepository struct {
	db DB
}

var _ auth.Storage = (*CredentialRepository)(nil)

// NewCredentialRepository creates a repository backed by db.
func NewCredentialRepository(db DB) *CredentialRepository {
	return &CredentialRepository{db: db}
}

// GetCredentialByEmail looks up a credential, matching the email case-insensitively.
func (r *CredentialRepository) GetCredentialByEmail(ctx context.Context, email string) (*auth.Credential, error) {
	var cred auth.Credential
	err := r.db.QueryRow(ctx, selectByEmailSQL, email).Scan(
		&cred.ID,
		&cred.Email,
		&cred.PasswordHash,
		&cred.Active,
		&cred.CreatedAt,
	)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return nil, auth.ErrNotFound
		}
		return nil, errors.Join(ErrQueryFailed, err)
	}
	return &cred, nil
}

// CreateCredential inserts cred. A unique violation maps to auth.ErrDuplicateEmail.
func (r *CredentialRepository) CreateCredential(ctx context.Context, cred *auth.Credential) error {
	_, err := r.db.Exec(ctx, insertSQL,
		cred.ID,
		cred.Email,
		cred.PasswordHash,
		cred.Active,
		cred.CreatedAt,
	)
	if err != nil {
		if pg.IsDuplicateKeyError(err) {
			return auth.ErrDuplicateEmail
		}
		return errors.Join(ErrQueryFailed, err)
	}
	return nil
}
