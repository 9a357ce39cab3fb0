package kvstore

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// MemoryConfig holds configuration for the in-memory store
type MemoryConfig struct {
	// QuotaBytes is the budget for keys plus values; zero means unlimited
	QuotaBytes int64
}

type memoryStore struct {
	mu     sync.RWMutex
	quota  int64
	values map[string]string
}

// NewMemory creates an in-process store. It backs the "memory" storage
// backend and tests that need quota behavior without a server.
func NewMemory(cfg *MemoryConfig) *memoryStore {
	s := &memoryStore{values: make(map[string]string)}
	if cfg != nil {
		s.quota = cfg.QuotaBytes
	}
	return s
}

func (s *memoryStore) Get(ctx context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (s *memoryStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.quota > 0 {
		var used int64
		for k, v := range s.values {
			if k != key {
				used += int64(len(k) + len(v))
			}
		}
		if used+int64(len(key)+len(value)) > s.quota {
			return ErrQuotaExceeded
		}
	}

	s.values[key] = value
	return nil
}

func (s *memoryStore) Delete(ctx context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, k := range keys {
		delete(s.values, k)
	}
	return nil
}

func (s *memoryStore) Keys(ctx context.Context, prefix string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := []string{}
	for k := range s.values {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

func (s *memoryStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values = make(map[string]string)
	return nil
}
