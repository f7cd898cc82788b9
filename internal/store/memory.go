package store

import (
	"context"
	"encoding/json"
	"sync"
)

// MemStore : substrat en mémoire pour les tests. Mêmes garanties que RedisStore.
type MemStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMemStore() *MemStore {
	return &MemStore{data: make(map[string][]byte)}
}

func (s *MemStore) Read(_ context.Context, key string, dest any) {
	s.mu.Lock()
	data, ok := s.data[key]
	s.mu.Unlock()
	if !ok {
		return
	}
	_ = json.Unmarshal(data, dest)
}

func (s *MemStore) Write(_ context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.data[key] = data
	s.mu.Unlock()
	return nil
}

func (s *MemStore) Clear(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.data, key)
	s.mu.Unlock()
	return nil
}

// Corrupt écrit une valeur non-JSON sous une clé, pour tester le repli des lecteurs.
func (s *MemStore) Corrupt(key string) {
	s.mu.Lock()
	s.data[key] = []byte("{not json")
	s.mu.Unlock()
}
