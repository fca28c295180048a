package kvstore

import (
	"context"
	"maps"
	"sync"
)

// MemoryStore is an in-process Store. Values are copied on the way in and
// out so callers cannot alias stored bytes.
type MemoryStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (m *MemoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return get(m.data, key), nil
}

func (m *MemoryStore) Set(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		m.data = make(map[string][]byte)
	}
	set(m.data, key, value)
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *MemoryStore) List(ctx context.Context) (map[string][]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return list(m.data), nil
}

func (m *MemoryStore) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	clear(m.data)
	return nil
}

// Update runs fn against a snapshot and swaps it in only if fn succeeds.
func (m *MemoryStore) Update(ctx context.Context, fn func(ctx context.Context, r Repository) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	snap := &memoryTx{data: maps.Clone(m.data)}
	if snap.data == nil {
		snap.data = make(map[string][]byte)
	}
	if err := fn(ctx, snap); err != nil {
		return err
	}
	m.data = snap.data
	return nil
}

// memoryTx is the unlocked Repository handed to Update callbacks.
type memoryTx struct {
	data map[string][]byte
}

func (t *memoryTx) Get(ctx context.Context, key string) ([]byte, error) {
	return get(t.data, key), nil
}

func (t *memoryTx) Set(ctx context.Context, key string, value []byte) error {
	set(t.data, key, value)
	return nil
}

func (t *memoryTx) Delete(ctx context.Context, key string) error {
	delete(t.data, key)
	return nil
}

func (t *memoryTx) List(ctx context.Context) (map[string][]byte, error) {
	return list(t.data), nil
}

func (t *memoryTx) Clear(ctx context.Context) error {
	clear(t.data)
	return nil
}

func get(data map[string][]byte, key string) []byte {
	v, ok := data[key]
	if !ok {
		return nil
	}
	return append([]byte{}, v...)
}

func set(data map[string][]byte, key string, value []byte) {
	data[key] = append([]byte{}, value...)
}

func list(data map[string][]byte) map[string][]byte {
	out := make(map[string][]byte, len(data))
	for k, v := range data {
		out[k] = append([]byte{}, v...)
	}
	return out
}
