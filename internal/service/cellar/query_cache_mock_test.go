package cellar

import "sync"

var _ queryCache = &queryCacheMock{}

// queryCacheMock is a real map-backed cache for tests: Get/Put behave
// normally and calls are recorded for assertions.
type queryCacheMock struct {
	mu      sync.Mutex
	items   map[string]any
	puts    []string
	gets    []string
	invalid []string
}

func newQueryCacheMock() *queryCacheMock {
	return &queryCacheMock{items: map[string]any{}}
}

func (m *queryCacheMock) Get(key string) (any, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gets = append(m.gets, key)
	v, ok := m.items[key]
	return v, ok
}

func (m *queryCacheMock) Put(key string, value any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.puts = append(m.puts, key)
	m.items[key] = value
}

func (m *queryCacheMock) InvalidatePrefix(prefix string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.invalid = append(m.invalid, prefix)
	for k := range m.items {
		if len(k) >= len(prefix) && k[:len(prefix)] == prefix {
			delete(m.items, k)
		}
	}
}

func (m *queryCacheMock) InvalidateCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.invalid...)
}
