package fix

import (
	"errors"
	"sync/atomic"
)

var (
	ErrCellEmpty      = errors.New("self-reference cell read before it was set")
	ErrCellAlreadySet = errors.New("self-reference cell is already set")
)

// Cell is a write-once slot for a callable value.
//
// It starts empty, is populated exactly once with Set, and is read-only after
// that. Publication is a single compare-and-set, so a closure handed to another
// goroutine after Set returns always observes the populated cell.
type Cell[F any] struct {
	fn atomic.Pointer[F]
}

// Set publishes f. It panics with ErrCellAlreadySet on a second call.
func (c *Cell[F]) Set(f F) {
	if !c.fn.CompareAndSwap(nil, &f) {
		panic(ErrCellAlreadySet)
	}
}

// Get returns the published value. It panics with ErrCellEmpty if Set has not
// happened yet, which can only mean the construction protocol was broken.
func (c *Cell[F]) Get() F {
	p := c.fn.Load()
	if p == nil {
		panic(ErrCellEmpty)
	}
	return *p
}

func (c *Cell[F]) IsSet() bool {
	return c.fn.Load() != nil
}
