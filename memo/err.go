package memo

import (
	"github.com/on-the-ground/recursive_go/cache"
	"github.com/on-the-ground/recursive_go/fix"
)

// failure carries an error out of a compute function. Stores keep nothing for
// a compute that panics, so failed calls are never cached.
type failure struct {
	err error
}

// FuncErrWith memoizes the successful results of gen through c. A call that
// returns an error stores nothing, and the error reaches the caller unchanged;
// the same argument is computed again on the next call.
func FuncErrWith[T, R any](c cache.Cache[T, R], gen func(T, func(T) (R, error)) (R, error), opts ...cache.Option) func(T) (R, error) {
	announce(c, opts)
	return fix.Bind(func(self *fix.Cell[func(T) (R, error)]) func(T) (R, error) {
		return func(t T) (r R, err error) {
			defer func() {
				if p := recover(); p != nil {
					f, ok := p.(failure)
					if !ok {
						panic(p)
					}
					err = f.err
				}
			}()
			return c.Get(t, func() R {
				v, err := gen(t, self.Get())
				if err != nil {
					panic(failure{err: err})
				}
				return v
			}), nil
		}
	})
}

// FuncErr is FuncErrWith over a cache.Map.
func FuncErr[T comparable, R any](gen func(T, func(T) (R, error)) (R, error), opts ...cache.Option) func(T) (R, error) {
	return FuncErrWith(cache.NewMap[T, R](), gen, opts...)
}
