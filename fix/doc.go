// Package fix builds recursive closures from anonymous function bodies.
//
// A Go function literal cannot name itself. The usual workaround is a
// forward-declared variable:
//
//	var fib func(int) int
//	fib = func(n int) int { ... fib(n-1) ... }
//
// which leaves a window where fib is nil and lets any later assignment to the
// variable silently redirect the recursion. fix closes that window: the body
// receives its own handle as the last parameter, and the handle is bound
// exactly once before the closure is handed back.
//
//	fib := fix.Func(func(n int, self func(int) int) int {
//	    if n <= 1 {
//	        return n
//	    }
//	    return self(n-1) + self(n-2)
//	})
//
// # Construction protocol
//
// Every constructor in this package is an instantiation of [Bind]:
//
//  1. allocate an empty [Cell];
//  2. build a closure that captures the cell (not its content);
//  3. publish the closure into the cell with a single compare-and-set;
//  4. return the cell's content.
//
// The closure looks the cell up at call time, so the recursive calls it makes
// see the published value. Nothing can call the closure before step 3 because
// nothing holds it yet.
//
// Failures are not handled here. A panic raised by the body, or a stack
// overflow from unbounded recursion, reaches the caller unchanged.
//
// For memoized variants see package memo.
package fix
