package cache_test

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/on-the-ground/recursive_go/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type point struct{ X, Y int }

func TestSync_ConcurrentMissesComputeOnce(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	s := cache.NewSync[string, int](cache.WithShards(4))
	var computes atomic.Int32
	release := make(chan struct{})

	const callers = 32
	results := make([]int, callers)
	var wg sync.WaitGroup
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = s.Get("answer", func() int {
				computes.Add(1)
				<-release
				return 42
			})
		}()
	}
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), computes.Load())
	for _, r := range results {
		assert.Equal(t, 42, r)
	}
	stats := s.Stats()
	assert.Equal(t, uint64(1), stats.Misses)
	assert.Equal(t, uint64(callers-1), stats.Hits)
	assert.Equal(t, uint64(callers-1), stats.Waits)
	assert.Equal(t, 1, s.Len())
}

func TestSync_ReentrantComputeForOtherKeys(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	s := cache.NewSync[int, uint64]()
	var fib func(int) uint64
	fib = func(n int) uint64 {
		return s.Get(n, func() uint64 {
			if n <= 1 {
				return uint64(n)
			}
			return fib(n-1) + fib(n-2)
		})
	}

	var wg sync.WaitGroup
	for n := 60; n < 70; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fib(n)
		}()
	}
	wg.Wait()

	assert.Equal(t, uint64(190392490709135), fib(70))
	assert.Equal(t, 71, s.Len())
	assert.Equal(t, uint64(71), s.Stats().Misses)
}

func TestSync_PanicLeavesKeyRetryable(t *testing.T) {
	s := cache.NewSync[point, string]()
	key := point{1, 2}

	assert.PanicsWithValue(t, "boom", func() {
		s.Get(key, func() string { panic("boom") })
	})
	_, ok := s.Peek(key)
	assert.False(t, ok)

	assert.Equal(t, "ok", s.Get(key, func() string { return "ok" }))
	v, ok := s.Peek(key)
	require.True(t, ok)
	assert.Equal(t, "ok", v)
}

func TestSync_WaitersRetryAfterOwnerPanics(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	s := cache.NewSync[int, int]()
	started := make(chan struct{})
	release := make(chan struct{})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer func() { _ = recover() }()
		s.Get(7, func() int {
			close(started)
			<-release
			panic("owner failed")
		})
	}()
	<-started

	got := make(chan int, 1)
	wg.Add(1)
	go func() {
		defer wg.Done()
		got <- s.Get(7, func() int { return 49 })
	}()
	// the owner is parked until release, so a wait can only be on its entry
	require.Eventually(t, func() bool {
		return s.Stats().Waits == 1
	}, 5*time.Second, time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, 49, <-got)
	stats := s.Stats()
	assert.Equal(t, uint64(0), stats.Hits)
	assert.Equal(t, uint64(2), stats.Misses)
	assert.Equal(t, uint64(1), stats.Waits)
}

func TestNewConfig_Defaults(t *testing.T) {
	cfg := cache.NewConfig()
	assert.Equal(t, cache.DefaultShards, cfg.Shards)
	assert.NotNil(t, cfg.Logger)

	assert.Equal(t, 4, cache.NewConfig(cache.WithShards(3)).Shards)
	assert.Equal(t, 1, cache.NewConfig(cache.WithShards(1)).Shards)
	assert.Equal(t, cache.DefaultShards, cache.NewConfig(cache.WithShards(-5)).Shards)
}
