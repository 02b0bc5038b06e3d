package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// maxPasswordBytes is the bcrypt input limit; longer inputs would be silently truncated.
const maxPasswordBytes = 72

// Hasher hashes passwords and verifies them against stored hashes.
type Hasher interface {
	// Hash produces a salted, self-describing one-way hash of the password.
	Hash(password string) (string, error)

	// Verify reports whether password matches hash.
	// A malformed hash never errors, it simply does not match.
	Verify(password, hash string) bool

	// NeedsRehash reports whether hash was produced with parameters
	// other than the hasher's current ones.
	NeedsRehash(hash string) bool
}

// BcryptHasher implements Hasher using bcrypt.
// The output embeds algorithm version and cost ($2a$<cost>$...), so hashes
// created with an older cost remain verifiable after the cost is raised.
type BcryptHasher struct {
	cost int
}

// Option configures BcryptHasher.
type Option func(*BcryptHasher)

// WithCost sets the bcrypt cost. Values outside bcrypt's supported range fall back to bcrypt.DefaultCost.
func WithCost(cost int) Option {
	return func(h *BcryptHasher) {
		if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
			cost = bcrypt.DefaultCost
		}
		h.cost = cost
	}
}

// NewBcryptHasher creates a bcrypt hasher with bcrypt.DefaultCost unless overridden.
func NewBcryptHasher(opts ...Option) *BcryptHasher {
	h := &BcryptHasher{cost: bcrypt.DefaultCost}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// NewFromConfig creates a bcrypt hasher from Config.
func NewFromConfig(cfg Config) *BcryptHasher {
	if cfg.BcryptCost == 0 {
		return NewBcryptHasher()
	}
	return NewBcryptHasher(WithCost(cfg.BcryptCost))
}

// Cost returns the configured bcrypt cost.
func (h *BcryptHasher) Cost() int {
	return h.cost
}

// Hash produces a bcrypt hash of the password.
func (h *BcryptHasher) Hash(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}
	if len(password) > maxPasswordBytes {
		return "", ErrPasswordTooLong
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Verify compares password with hash in constant time. Passwords longer than
// bcrypt's input limit never match, since bcrypt ignores the excess bytes.
func (h *BcryptHasher) Verify(password, hash string) bool {
	if hash == "" || len(password) > maxPasswordBytes {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// NeedsRehash reports true when the stored cost differs from the configured one
// or the hash cannot be parsed at all.
func (h *BcryptHasher) NeedsRehash(hash string) bool {
	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		return true
	}
	return cost != h.cost
}
