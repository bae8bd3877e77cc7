package cache

import (
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

// Sync is a sharded store that is safe for concurrent use.
//
// Its miss path is a single insert-if-absent: the first caller for a key
// installs an in-flight entry under the shard lock and computes with the lock
// released; every other caller for that key waits for the entry instead of
// computing again. If the compute panics, the entry is removed before the
// waiters wake, and they retry.
//
// A compute must not depend on its own key, directly or through other keys.
// With Map that is unbounded recursion; with Sync the caller waits on itself
// forever.
type Sync[K comparable, V any] struct {
	hasher keyHasher[K]
	shards []syncShard[K, V]
	mask   uint64
	logger *zap.Logger

	hits   atomic.Uint64
	misses atomic.Uint64
	waits  atomic.Uint64
}

type syncShard[K comparable, V any] struct {
	mu      sync.RWMutex
	entries map[K]*flight[V]
}

// flight is a value being computed or already computed. val and ok are
// written once, before done is closed.
type flight[V any] struct {
	done chan struct{}
	val  V
	ok   bool
}

// SyncStats is a snapshot of a Sync store's counters.
type SyncStats struct {
	Hits   uint64 // Get calls answered without computing
	Misses uint64 // Get calls that ran compute
	Waits  uint64 // times a Get found an entry already present, done or in flight
}

func NewSync[K comparable, V any](opts ...Option) *Sync[K, V] {
	cfg := NewConfig(opts...)
	s := &Sync[K, V]{
		hasher: newKeyHasher[K](),
		shards: make([]syncShard[K, V], cfg.Shards),
		mask:   uint64(cfg.Shards - 1),
		logger: cfg.Logger,
	}
	for i := range s.shards {
		s.shards[i].entries = make(map[K]*flight[V])
	}
	return s
}

func (s *Sync[K, V]) Get(key K, compute func() V) V {
	sh := &s.shards[s.hasher.hash(key)&s.mask]
	for {
		sh.mu.RLock()
		f, found := sh.entries[key]
		sh.mu.RUnlock()

		if !found {
			sh.mu.Lock()
			if f, found = sh.entries[key]; !found {
				f = &flight[V]{done: make(chan struct{})}
				sh.entries[key] = f
				sh.mu.Unlock()
				s.misses.Add(1)
				return s.fill(sh, key, f, compute)
			}
			sh.mu.Unlock()
		}

		s.waits.Add(1)
		<-f.done
		if f.ok {
			s.hits.Add(1)
			return f.val
		}
		// the owner's compute panicked and its entry is gone
	}
}

func (s *Sync[K, V]) fill(sh *syncShard[K, V], key K, f *flight[V], compute func() V) V {
	defer func() {
		if !f.ok {
			sh.mu.Lock()
			if sh.entries[key] == f {
				delete(sh.entries, key)
			}
			sh.mu.Unlock()
			s.logger.Debug("sync cache discarded in-flight entry", zap.Any("key", key))
		}
		close(f.done)
	}()
	f.val = compute()
	f.ok = true
	return f.val
}

// Peek returns a completed value for key without computing or waiting.
func (s *Sync[K, V]) Peek(key K) (V, bool) {
	sh := &s.shards[s.hasher.hash(key)&s.mask]
	sh.mu.RLock()
	f, found := sh.entries[key]
	sh.mu.RUnlock()

	var zero V
	if !found {
		return zero, false
	}
	select {
	case <-f.done:
		if f.ok {
			return f.val, true
		}
	default:
	}
	return zero, false
}

// Len counts completed entries.
func (s *Sync[K, V]) Len() int {
	n := 0
	for i := range s.shards {
		sh := &s.shards[i]
		sh.mu.RLock()
		for _, f := range sh.entries {
			select {
			case <-f.done:
				if f.ok {
					n++
				}
			default:
			}
		}
		sh.mu.RUnlock()
	}
	return n
}

func (s *Sync[K, V]) Stats() SyncStats {
	return SyncStats{
		Hits:   s.hits.Load(),
		Misses: s.misses.Load(),
		Waits:  s.waits.Load(),
	}
}
