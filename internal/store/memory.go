package store

import (
	"context"
	"sync"
)

// MemoryStore implements the Store interface in memory. It backs tests
// and lets failures be injected to exercise the fail-open save path.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]string

	// GetErr and SetErr, when non-nil, are returned by the respective
	// operations instead of touching the map.
	GetErr error
	SetErr error

	// SetCalls counts the number of Set invocations, including failed ones.
	SetCalls int
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		values: make(map[string]string),
	}
}

// Get returns the value stored under key.
func (s *MemoryStore) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.GetErr != nil {
		return "", false, s.GetErr
	}
	value, found := s.values[key]
	return value, found, nil
}

// Set stores value under key.
func (s *MemoryStore) Set(ctx context.Context, key string, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.SetCalls++
	if s.SetErr != nil {
		return s.SetErr
	}
	s.values[key] = value
	return nil
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close() error {
	return nil
}
