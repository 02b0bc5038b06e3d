package auth

import (
	"context"
	"strings"
	"sync"
)

// MemoryStorage is a concurrency-safe in-memory Storage keyed by lowercased email.
type MemoryStorage struct {
	mu    sync.RWMutex
	creds map[string]Credential
}

// NewMemoryStorage creates an empty MemoryStorage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{creds: make(map[string]Credential)}
}

// GetCredentialByEmail returns a copy of the stored credential.
func (m *MemoryStorage) GetCredentialByEmail(_ context.Context, email string) (*Credential, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	cred, ok := m.creds[strings.ToLower(email)]
	if !ok {
		return nil, ErrNotFound
	}
	return &cred, nil
}

// CreateCredential stores cred, rejecting a duplicate email.
func (m *MemoryStorage) CreateCredential(_ context.Context, cred *Credential) error {
	key := strings.ToLower(cred.Email)

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.creds[key]; exists {
		return ErrDuplicateEmail
	}
	m.creds[key] = *cred
	return nil
}

// Len returns the number of stored credentials.
func (m *MemoryStorage) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.creds)
}
