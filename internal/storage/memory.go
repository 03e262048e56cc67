package storage

import "sync"

// Memory is a KV kept in process memory, for tests and dry runs.
type Memory struct {
	mu   sync.RWMutex
	data map[string][]byte
	// Writes counts successful Put calls.
	Writes int
	// FailPut, when set, is returned by every Put.
	FailPut error
}

func NewMemory() *Memory {
	return &Memory{data: map[string][]byte{}}
}

func (m *Memory) Get(key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (m *Memory) Put(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailPut != nil {
		return m.FailPut
	}
	m.data[key] = append([]byte(nil), value...)
	m.Writes++
	return nil
}

func (m *Memory) Close() error {
	return nil
}

var _ KV = (*Memory)(nil)
