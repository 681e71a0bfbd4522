// Package tokenstore provides ready-made TokenStore backends: in-memory for
// tests and short-lived processes, file for single-host tools, and NATS
// JetStream KV for shared deployments.
package tokenstore

import (
	"context"
	"sync"

	"github.com/Panoptic-IT-Solutions/quickbooks-client/pkg/quickbooks"
)

// MemoryStore keeps tokens in process memory. Safe for concurrent use.
type MemoryStore struct {
	mu    sync.RWMutex
	token *quickbooks.BearerToken
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// NewMemoryStoreWithToken creates a store pre-seeded with token. Useful when
// credentials were obtained out of band.
func NewMemoryStoreWithToken(token *quickbooks.BearerToken) *MemoryStore {
	store := NewMemoryStore()
	if token != nil {
		copied := *token
		store.token = &copied
	}

	return store
}

// GetTokens returns the stored token, or (nil, nil) when empty.
func (s *MemoryStore) GetTokens(_ context.Context) (*quickbooks.BearerToken, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.token == nil {
		return nil, nil
	}

	copied := *s.token

	return &copied, nil
}

// StoreTokens replaces the stored token.
func (s *MemoryStore) StoreTokens(_ context.Context, token *quickbooks.BearerToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token == nil {
		s.token = nil

		return nil
	}

	copied := *token
	s.token = &copied

	return nil
}

// ClearTokens removes the stored token.
func (s *MemoryStore) ClearTokens(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = nil

	return nil
}
