package storage

import (
	"context"
	"sync"
)

type MemorySlots struct {
	mu     sync.RWMutex
	values map[string][]byte
}

func NewMemorySlots() *MemorySlots {
	return &MemorySlots{values: map[string][]byte{}}
}

func (m *MemorySlots) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.values[key]
	if !ok {
		return nil, ErrSlotNotFound
	}
	return append([]byte(nil), v...), nil
}

func (m *MemorySlots) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = append([]byte(nil), value...)
	return nil
}

func (m *MemorySlots) Close() error {
	return nil
}
