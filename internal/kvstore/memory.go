package kvstore

import (
	"context"
	"sync"

	"github.com/KirkDiggler/pancasting/internal/errors"
)

type memoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemory returns a process-local store. Nothing survives a restart.
func NewMemory() Store {
	return &memoryStore{values: make(map[string]string)}
}

var _ Store = (*memoryStore)(nil)

func (m *memoryStore) Get(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", errors.InvalidArgument(errKeyEmpty)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.values[key]
	if !ok {
		return "", errors.NotFoundf("key %s not found", key)
	}
	return value, nil
}

func (m *memoryStore) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return errors.InvalidArgument(errKeyEmpty)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = value
	return nil
}

func (m *memoryStore) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.InvalidArgument(errKeyEmpty)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.values, key)
	return nil
}

func (m *memoryStore) Close() error {
	return nil
}
