package memory

import (
	"context"
	"sync"
)

// Storage - временное in-memory хранилище слотов кэша
type Storage struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

func New() *Storage {
	return &Storage{slots: make(map[string][]byte)}
}

func (s *Storage) Load(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.slots[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), data...), nil
}

func (s *Storage) Save(_ context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.slots[key] = append([]byte(nil), data...)
	return nil
}

func (s *Storage) Close() error {
	return nil
}
