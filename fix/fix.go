package fix

// Bind runs the construction protocol for any closure shape F.
//
// wire receives the still-empty cell and must return the closure; the closure
// may call self.Get() when invoked but not while wire is running. The returned
// value is the cell's content after publication.
func Bind[F any](wire func(self *Cell[F]) F) F {
	self := new(Cell[F])
	self.Set(wire(self))
	return self.Get()
}

// Func makes a recursive one-argument function.
func Func[T, R any](gen func(T, func(T) R) R) func(T) R {
	return Bind(func(self *Cell[func(T) R]) func(T) R {
		return func(t T) R {
			return gen(t, self.Get())
		}
	})
}

// BiFunc makes a recursive two-argument function.
func BiFunc[T, U, R any](gen func(T, U, func(T, U) R) R) func(T, U) R {
	return Bind(func(self *Cell[func(T, U) R]) func(T, U) R {
		return func(t T, u U) R {
			return gen(t, u, self.Get())
		}
	})
}

// Predicate is Func specialised to a boolean result.
func Predicate[T any](gen func(T, func(T) bool) bool) func(T) bool {
	return Func(gen)
}

// BiPredicate is BiFunc specialised to a boolean result.
func BiPredicate[T, U any](gen func(T, U, func(T, U) bool) bool) func(T, U) bool {
	return BiFunc(gen)
}

// Consumer makes a recursive function with no result.
func Consumer[T any](gen func(T, func(T))) func(T) {
	return Bind(func(self *Cell[func(T)]) func(T) {
		return func(t T) {
			gen(t, self.Get())
		}
	})
}

func BiConsumer[T, U any](gen func(T, U, func(T, U))) func(T, U) {
	return Bind(func(self *Cell[func(T, U)]) func(T, U) {
		return func(t T, u U) {
			gen(t, u, self.Get())
		}
	})
}

// Supplier makes a recursive function of no arguments. Recursion is only
// useful here when gen keeps state of its own, e.g. retrying until a source
// yields a value.
func Supplier[T any](gen func(func() T) T) func() T {
	return Bind(func(self *Cell[func() T]) func() T {
		return func() T {
			return gen(self.Get())
		}
	})
}

func Runnable(gen func(func())) func() {
	return Bind(func(self *Cell[func()]) func() {
		return func() {
			gen(self.Get())
		}
	})
}

// FuncErr makes a recursive function that can fail. Errors are returned as is;
// whether a failed sub-call aborts the computation is up to gen.
func FuncErr[T, R any](gen func(T, func(T) (R, error)) (R, error)) func(T) (R, error) {
	return Bind(func(self *Cell[func(T) (R, error)]) func(T) (R, error) {
		return func(t T) (R, error) {
			return gen(t, self.Get())
		}
	})
}
