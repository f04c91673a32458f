package entities

import (
	"strings"
	"sync"
)

// CredentialStore is the single process-wide slot holding the active GitHub token.
// Set replaces the value atomically (last write wins); nothing is persisted.
type CredentialStore struct {
	mu       sync.RWMutex
	token    string
	fallback string
}

// NewCredentialStore creates a store whose last-resort value is the statically
// configured fallback token (empty when none is configured).
func NewCredentialStore(settings *Settings) *CredentialStore {
	return &CredentialStore{fallback: strings.TrimSpace(settings.GitHub.Token)}
}

// Set replaces the active credential. It fails only when token is empty.
func (it *CredentialStore) Set(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrEmptyToken
	}

	it.mu.Lock()
	defer it.mu.Unlock()
	it.token = token
	return nil
}

// Resolve returns the explicit token when non-empty, else the stored credential,
// else the configured fallback. The boolean is false when no source has a value.
func (it *CredentialStore) Resolve(explicit string) (string, bool) {
	if explicit = strings.TrimSpace(explicit); explicit != "" {
		return explicit, true
	}

	it.mu.RLock()
	stored := it.token
	it.mu.RUnlock()

	if stored != "" {
		return stored, true
	}
	if it.fallback != "" {
		return it.fallback, true
	}
	return "", false
}
