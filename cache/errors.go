package cache

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidBounds is returned when a bounded store is configured with an
	// empty or unusable key range.
	ErrInvalidBounds = errors.New("invalid cache bounds")

	// ErrOutOfRange is wrapped by OutOfRangeError.
	ErrOutOfRange = errors.New("key out of cache range")
)

// OutOfRangeError reports a key that a bounded store cannot hold.
//
// Bounded stores panic with a *OutOfRangeError from Get because Get runs
// inside the memoized function, where there is no error result to carry it.
// Use errors.As on the recovered value, or probe with Lookup first.
type OutOfRangeError struct {
	Key      int64
	Min, Max int64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%v: %d is not in [%d, %d]", ErrOutOfRange, e.Key, e.Min, e.Max)
}

func (e *OutOfRangeError) Unwrap() error {
	return ErrOutOfRange
}
