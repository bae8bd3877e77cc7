package cache

import (
	"fmt"
	"math"

	"github.com/bits-and-blooms/bitset"
)

// MaxRangeSize bounds the number of slots a Range may preallocate.
const MaxRangeSize = math.MaxInt32

// Range is a dense store for int keys in the closed interval [min, max].
//
// Values live in a slice indexed by key-min. Presence is tracked in a bitset
// rather than with a reserved "not computed" value, so every V, including the
// zero value, is a legitimate result.
type Range[V any] struct {
	min, max int
	values   []V
	present  *bitset.BitSet
}

// NewRange allocates a store for keys in [min, max]. It fails with
// ErrInvalidBounds when min >= max or when the window exceeds MaxRangeSize.
func NewRange[V any](min, max int) (*Range[V], error) {
	if min >= max {
		return nil, fmt.Errorf("%w: min=%d; max=%d", ErrInvalidBounds, min, max)
	}
	// two's complement subtraction stays exact in uint64 even across the int range
	span := uint64(max) - uint64(min)
	if span >= MaxRangeSize {
		return nil, fmt.Errorf("%w: [%d, %d] holds more than %d keys", ErrInvalidBounds, min, max, MaxRangeSize)
	}
	size := int(span) + 1
	return &Range[V]{
		min:     min,
		max:     max,
		values:  make([]V, size),
		present: bitset.New(uint(size)),
	}, nil
}

// Get returns the value stored for key, or stores and returns compute().
// It panics with *OutOfRangeError when key is outside [min, max]; compute is
// not called in that case.
func (r *Range[V]) Get(key int, compute func() V) V {
	i, err := r.index(key)
	if err != nil {
		panic(err)
	}
	if r.present.Test(i) {
		return r.values[i]
	}
	v := compute()
	r.values[i] = v
	r.present.Set(i)
	return v
}

// Lookup is the non-panicking probe: it reports the stored value, whether
// there is one, and an *OutOfRangeError for keys the store cannot hold.
func (r *Range[V]) Lookup(key int) (V, bool, error) {
	var zero V
	i, err := r.index(key)
	if err != nil {
		return zero, false, err
	}
	if !r.present.Test(i) {
		return zero, false, nil
	}
	return r.values[i], true, nil
}

func (r *Range[V]) Contains(key int) bool {
	return key >= r.min && key <= r.max
}

func (r *Range[V]) Bounds() (min, max int) {
	return r.min, r.max
}

func (r *Range[V]) Len() int {
	return int(r.present.Count())
}

func (r *Range[V]) index(key int) (uint, error) {
	if !r.Contains(key) {
		return 0, &OutOfRangeError{Key: int64(key), Min: int64(r.min), Max: int64(r.max)}
	}
	return uint(key - r.min), nil
}
