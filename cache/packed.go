package cache

import (
	"cmp"
	"math"
	"slices"
)

// Packed stores results of a function of two ints under a single uint64 key,
// avoiding a composite key per entry. Both arguments must fit in an int32.
type Packed[V any] struct {
	entries map[uint64]V
}

func NewPacked[V any]() *Packed[V] {
	return &Packed[V]{entries: make(map[uint64]V)}
}

// PackKey puts a in the high and b in the low 32 bits. b is zero-extended so
// that UnpackKey recovers both halves, signs included.
func PackKey(a, b int32) uint64 {
	return uint64(uint32(a))<<32 | uint64(uint32(b))
}

func UnpackKey(k uint64) (a, b int32) {
	return int32(uint32(k >> 32)), int32(uint32(k))
}

// Get returns the value stored for (a, b), or stores and returns compute().
// It panics with *OutOfRangeError when either argument does not fit in int32.
func (p *Packed[V]) Get(a, b int, compute func() V) V {
	k, err := packInts(a, b)
	if err != nil {
		panic(err)
	}
	if v, ok := p.entries[k]; ok {
		return v
	}
	v := compute()
	p.entries[k] = v
	return v
}

func (p *Packed[V]) Peek(a, b int) (V, bool) {
	k, err := packInts(a, b)
	if err != nil {
		var zero V
		return zero, false
	}
	v, ok := p.entries[k]
	return v, ok
}

// Keys returns the stored argument pairs in ascending (a, b) order.
func (p *Packed[V]) Keys() []Pair[int32, int32] {
	keys := make([]Pair[int32, int32], 0, len(p.entries))
	for k := range p.entries {
		a, b := UnpackKey(k)
		keys = append(keys, PairOf(a, b))
	}
	slices.SortFunc(keys, func(x, y Pair[int32, int32]) int {
		return cmp.Or(cmp.Compare(x.First, y.First), cmp.Compare(x.Second, y.Second))
	})
	return keys
}

func (p *Packed[V]) Len() int {
	return len(p.entries)
}

func packInts(a, b int) (uint64, error) {
	for _, v := range [2]int{a, b} {
		if v < math.MinInt32 || v > math.MaxInt32 {
			return 0, &OutOfRangeError{Key: int64(v), Min: math.MinInt32, Max: math.MaxInt32}
		}
	}
	return PackKey(int32(a), int32(b)), nil
}
