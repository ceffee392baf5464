package memory

import (
	"context"
	"sync"

	"token-recovery-dapp/internal/core/ports"
)

// KVStore is an in-process ports.KeyValueStore. Values are lost on exit.
type KVStore struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewKVStore creates an empty KVStore.
func NewKVStore() *KVStore {
	return &KVStore{data: make(map[string]string)}
}

func (s *KVStore) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	if !ok {
		return "", ports.ErrKeyNotFound
	}
	return v, nil
}

func (s *KVStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

func (s *KVStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

// Ping implements ports.HealthChecker.
func (s *KVStore) Ping(context.Context) error { return nil }

// Name implements ports.HealthChecker.
func (s *KVStore) Name() string { return "memory" }
