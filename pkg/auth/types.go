package auth

import (
	"time"

	"github.com/google/uuid"
)

// Credential is the persisted association between an identity and its password hash.
type Credential struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Active       bool
	CreatedAt    time.Time
}

// User returns the non-secret identity of the credential.
func (c *Credential) User() *User {
	return &User{
		ID:        c.ID,
		Email:     c.Email,
		Active:    c.Active,
		CreatedAt: c.CreatedAt,
	}
}

// User is the identity returned to callers. It never carries the password hash.
type User struct {
	ID        uuid.UUID
	Email     string
	Active    bool
	CreatedAt time.Time
}

// RegisterInput carries the fields submitted on registration.
type RegisterInput struct {
	Email        string
	Password     string
	CaptchaToken string
	ClientIP     string
}
