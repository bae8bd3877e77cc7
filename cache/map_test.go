package cache_test

import (
	"testing"

	"github.com/on-the-ground/recursive_go/cache"

	"github.com/stretchr/testify/assert"
)

func TestMap_ComputesOncePerKey(t *testing.T) {
	m := cache.NewMap[string, int]()
	count := 0
	compute := func() int {
		count++
		return 42
	}

	assert.Equal(t, 42, m.Get("a", compute))
	assert.Equal(t, 42, m.Get("a", compute)) // cached
	assert.Equal(t, 1, count)

	m.Get("b", compute)
	assert.Equal(t, 2, count)
	assert.Equal(t, 2, m.Len())
}

func TestMap_ComputeMayReenter(t *testing.T) {
	m := cache.NewMap[int, int]()
	var sum func(int) int
	sum = func(n int) int {
		return m.Get(n, func() int {
			if n == 0 {
				return 0
			}
			return n + sum(n-1)
		})
	}

	assert.Equal(t, 5050, sum(100))
	assert.Equal(t, 101, m.Len())
	v, ok := m.Peek(50)
	assert.True(t, ok)
	assert.Equal(t, 1275, v)
}

func TestMap_PanicStoresNothing(t *testing.T) {
	m := cache.NewMap[int, int]()
	assert.Panics(t, func() {
		m.Get(1, func() int { panic("boom") })
	})
	_, ok := m.Peek(1)
	assert.False(t, ok)
	assert.Equal(t, 7, m.Get(1, func() int { return 7 }))
}

func TestPair_EqualComponentsAreTheSameKey(t *testing.T) {
	seen := map[cache.Pair[int, string]]bool{}
	seen[cache.PairOf(1, "a")] = true

	assert.True(t, seen[cache.PairOf(1, "a")])
	assert.Equal(t, "(1, a)", cache.PairOf(1, "a").String())
}

func TestPairMap_SwappedComponentsDoNotCollide(t *testing.T) {
	m := cache.NewPairMap[any, any, string]()
	count := 0

	assert.Equal(t, "first", m.Get(1, "a", func() string { count++; return "first" }))
	assert.Equal(t, "second", m.Get("a", 1, func() string { count++; return "second" }))
	assert.Equal(t, "first", m.Get(1, "a", func() string { count++; return "third" }))
	assert.Equal(t, 2, count)
	assert.Equal(t, 2, m.Len())
}

func TestPairMap_NilComponents(t *testing.T) {
	m := cache.NewPairMap[*int, *int, int]()
	count := 0
	compute := func() int { count++; return count }

	assert.Equal(t, 1, m.Get(nil, nil, compute))
	assert.Equal(t, 1, m.Get(nil, nil, compute))
	v, ok := m.Peek(nil, nil)
	assert.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestComparePairs(t *testing.T) {
	x := 1
	tests := []struct {
		name string
		got  int
		want int
	}{
		{"lexicographic on first", cache.ComparePairs(cache.PairOf(1, "z"), cache.PairOf(2, "a")), -1},
		{"ties fall through to second", cache.ComparePairs(cache.PairOf(1, "b"), cache.PairOf(1, "a")), 1},
		{"equal", cache.ComparePairs(cache.PairOf(1.5, true), cache.PairOf(1.5, true)), 0},
		{"bool order", cache.ComparePairs(cache.PairOf(0, false), cache.PairOf(0, true)), -1},
		{"nil sorts first", cache.ComparePairs(cache.PairOf[*int, int](nil, 9), cache.PairOf(&x, 0)), -1},
		{"unordered components compare equal", cache.ComparePairs(cache.PairOf([]int{1}, 1), cache.PairOf([]int{2}, 1)), 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.got, tt.name)
	}
}
