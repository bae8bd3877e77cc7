package cache

import (
	"runtime"
	"sync"
	"weak"

	"go.uber.org/zap"
)

// Weak holds computed values through weak pointers, so a value stays cached
// only while something else keeps it alive. Once the garbage collector has
// reclaimed it, the next Get for its key recomputes.
//
// Weak implements Cache[K, *V]. A nil result is returned but not cached.
// Results that are never collected, such as pointers to package-level
// variables or to zero-size values, stay cached for good. Keep V larger than
// a few words or pointer-bearing; tiny pointer-free objects may share an
// allocation with unrelated data and outlive their last reference.
//
// Weak is safe for concurrent use, since reclaimed entries are removed by
// cleanups running on a runtime goroutine. Concurrent misses for one key may
// each compute; the last one stored wins.
type Weak[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]weak.Pointer[V]
	logger  *zap.Logger
}

type weakEntry[K comparable, V any] struct {
	key K
	ptr weak.Pointer[V]
}

func NewWeak[K comparable, V any](opts ...Option) *Weak[K, V] {
	cfg := NewConfig(opts...)
	return &Weak[K, V]{
		entries: make(map[K]weak.Pointer[V]),
		logger:  cfg.Logger,
	}
}

func (w *Weak[K, V]) Get(key K, compute func() *V) *V {
	w.mu.Lock()
	ptr, ok := w.entries[key]
	w.mu.Unlock()

	if ok {
		if v := ptr.Value(); v != nil {
			return v
		}
		w.logger.Debug("weak cache value was reclaimed, recomputing", zap.Any("key", key))
	}

	v := compute()
	if v == nil {
		return nil
	}
	ptr = weak.Make(v)

	w.mu.Lock()
	w.entries[key] = ptr
	w.mu.Unlock()

	runtime.AddCleanup(v, w.drop, weakEntry[K, V]{key: key, ptr: ptr})
	return v
}

// drop removes the entry for a reclaimed value unless the key has been
// recomputed since.
func (w *Weak[K, V]) drop(e weakEntry[K, V]) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if cur, ok := w.entries[e.key]; ok && cur == e.ptr {
		delete(w.entries, e.key)
		w.logger.Debug("weak cache entry dropped", zap.Any("key", e.key))
	}
}

// Len counts entries whose value is still alive.
func (w *Weak[K, V]) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	n := 0
	for _, ptr := range w.entries {
		if ptr.Value() != nil {
			n++
		}
	}
	return n
}
