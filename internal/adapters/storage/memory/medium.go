// Package memory implementa storage.Medium en memoria (tests y driver "memory").
package memory

import (
	"context"
	"sync"
)

type Medium struct {
	mu     sync.RWMutex
	values map[string][]byte
}

func NewMedium() *Medium {
	return &Medium{values: make(map[string][]byte)}
}

func (m *Medium) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.values[key]
	if !ok {
		return nil, false, nil
	}
	return clone(v), true, nil
}

func (m *Medium) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = clone(value)
	return nil
}

// Keys lista las claves presentes (útil en tests).
func (m *Medium) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]string, 0, len(m.values))
	for k := range m.values {
		out = append(out, k)
	}
	return out
}

func clone(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
