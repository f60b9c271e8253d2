package memory

import (
	"context"
	"sync"
)

// CredentialStore holds the credential in process memory. It is lost on
// restart and is meant for tests and local runs.
type CredentialStore struct {
	mu    sync.RWMutex
	token string
}

func NewCredentialStore(initial string) *CredentialStore {
	return &CredentialStore{token: initial}
}

func (s *CredentialStore) Get(_ context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, nil
}

func (s *CredentialStore) Save(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}
