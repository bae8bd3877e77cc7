// Package memo builds recursive closures that remember their results.
//
// Each constructor pairs a fix combinator with a store from package cache.
// The self-handle passed to the body is the memoized closure itself, so
// recursive sub-calls are cached too, not just the outermost call:
//
//	fib := memo.Func(func(n int, self func(int) uint64) uint64 {
//	    if n <= 1 {
//	        return uint64(n)
//	    }
//	    return self(n-1) + self(n-2)
//	})
//
// The store is owned by the returned closure and lives as long as it does.
// Only memoize bodies whose result depends on nothing but their arguments.
package memo

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/on-the-ground/recursive_go/cache"
	"github.com/on-the-ground/recursive_go/fix"
)

// FuncWith memoizes gen through c. Use it to pick a store other than the
// default, or to share one store between closures on purpose.
func FuncWith[T, R any](c cache.Cache[T, R], gen func(T, func(T) R) R, opts ...cache.Option) func(T) R {
	announce(c, opts)
	return fix.Bind(func(self *fix.Cell[func(T) R]) func(T) R {
		return func(t T) R {
			return c.Get(t, func() R {
				return gen(t, self.Get())
			})
		}
	})
}

// Func memoizes gen in a cache.Map.
func Func[T comparable, R any](gen func(T, func(T) R) R, opts ...cache.Option) func(T) R {
	return FuncWith(cache.NewMap[T, R](), gen, opts...)
}

func BiFuncWith[T, U, R any](c cache.BiCache[T, U, R], gen func(T, U, func(T, U) R) R, opts ...cache.Option) func(T, U) R {
	announce(c, opts)
	return fix.Bind(func(self *fix.Cell[func(T, U) R]) func(T, U) R {
		return func(t T, u U) R {
			return c.Get(t, u, func() R {
				return gen(t, u, self.Get())
			})
		}
	})
}

// BiFunc memoizes gen in a cache.PairMap.
func BiFunc[T, U comparable, R any](gen func(T, U, func(T, U) R) R, opts ...cache.Option) func(T, U) R {
	return BiFuncWith(cache.NewPairMap[T, U, R](), gen, opts...)
}

// IntFunc memoizes gen in a cache.Range over [min, max]. It fails with
// cache.ErrInvalidBounds for an empty range. Calling the result with an
// argument outside the range panics with *cache.OutOfRangeError.
func IntFunc[R any](gen func(int, func(int) R) R, min, max int, opts ...cache.Option) (func(int) R, error) {
	r, err := cache.NewRange[R](min, max)
	if err != nil {
		return nil, err
	}
	return FuncWith(r, gen, opts...), nil
}

// IntBiFunc memoizes gen in a cache.Packed. Both arguments must fit in int32.
func IntBiFunc[R any](gen func(int, int, func(int, int) R) R, opts ...cache.Option) func(int, int) R {
	return BiFuncWith(cache.NewPacked[R](), gen, opts...)
}

// WeakFunc memoizes gen in a cache.Weak: results stay cached only while the
// caller keeps them reachable.
func WeakFunc[T comparable, R any](gen func(T, func(T) *R) *R, opts ...cache.Option) func(T) *R {
	return FuncWith(cache.NewWeak[T, R](opts...), gen, opts...)
}

// SyncFunc memoizes gen in a cache.Sync. The result may be called from many
// goroutines; each argument is computed once.
func SyncFunc[T comparable, R any](gen func(T, func(T) R) R, opts ...cache.Option) func(T) R {
	return FuncWith(cache.NewSync[T, R](opts...), gen, opts...)
}

func announce(c any, opts []cache.Option) {
	cfg := cache.NewConfig(opts...)
	if ce := cfg.Logger.Check(zap.DebugLevel, "created memoized closure"); ce != nil {
		ce.Write(
			zap.String("memoId", uuid.New().String()),
			zap.String("cache", fmt.Sprintf("%T", c)),
		)
	}
}
