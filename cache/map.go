package cache

// Map is the default store: a Go map holding every computed value until the
// Map itself is dropped. It is not safe for concurrent use; see Sync.
type Map[K comparable, V any] struct {
	entries map[K]V
}

func NewMap[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{entries: make(map[K]V)}
}

// Get returns the value stored for key, or stores and returns compute().
//
// compute runs with nothing locked and may call Get for other keys.
func (m *Map[K, V]) Get(key K, compute func() V) V {
	if v, ok := m.entries[key]; ok {
		return v
	}
	v := compute()
	m.entries[key] = v
	return v
}

func (m *Map[K, V]) Peek(key K) (V, bool) {
	v, ok := m.entries[key]
	return v, ok
}

func (m *Map[K, V]) Len() int {
	return len(m.entries)
}
