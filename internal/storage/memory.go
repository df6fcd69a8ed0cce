package storage

import (
	"context"
	"sync"
)

// MemoryStore is a map-backed DocumentStore for the memory backend and
// for tests. FailPuts forces Put to return an error so save-failure
// paths can be exercised.
type MemoryStore struct {
	mu       sync.Mutex
	docs     map[string]string
	FailPuts error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string]string)}
}

func (s *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.docs[key]
	return v, ok, nil
}

func (s *MemoryStore) Put(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailPuts != nil {
		return s.FailPuts
	}
	s.docs[key] = value
	return nil
}

func (s *MemoryStore) Close() error { return nil }
