package store

import (
	"slices"
	"sync"
)

// MemoryStore 프로세스 안에서만 유지되는 저장소
type MemoryStore struct {
	mu   sync.RWMutex
	sets map[string][]int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sets: make(map[string][]int64)}
}

func (s *MemoryStore) Put(name string, data []int64) error {
	if err := validateName(name); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sets[name] = slices.Clone(data)
	return nil
}

func (s *MemoryStore) Get(name string) ([]int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.sets[name]
	if !ok {
		return nil, ErrNotFound
	}
	return slices.Clone(data), nil
}

func (s *MemoryStore) Has(name string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.sets[name]
	return ok, nil
}

func (s *MemoryStore) Close() error { return nil }
