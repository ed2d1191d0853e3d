// Package memory provides an in-memory implementation of the durable
// key-value port. It backs development runs without a storage path and
// doubles as the fake in tests.
package memory

import (
	"context"
	"sync"

	"dindigul/internal/domain/repository"
)

// userRecordStore is a mutex-guarded map. Values are copied on the way in
// and out so callers cannot alias the stored bytes.
type userRecordStore struct {
	mu      sync.RWMutex
	records map[string][]byte
}

// NewUserRecordStore is the constructor for the in-memory store.
func NewUserRecordStore() repository.UserRecordStore {
	return &userRecordStore{
		records: make(map[string][]byte),
	}
}

// Get returns the value stored under key.
func (s *userRecordStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.records[key]
	if !ok {
		return nil, repository.ErrRecordNotFound
	}

	out := make([]byte, len(value))
	copy(out, value)

	return out, nil
}

// Set stores value under key.
func (s *userRecordStore) Set(ctx context.Context, key string, value []byte) error {
	stored := make([]byte, len(value))
	copy(stored, value)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[key] = stored

	return nil
}

// Remove deletes the value under key; absent keys are not an error.
func (s *userRecordStore) Remove(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, key)

	return nil
}
