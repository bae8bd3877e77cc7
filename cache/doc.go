// Package cache provides the key/value stores behind memoized recursion.
//
// Every store answers the same question: "give me the value for this key,
// computing it with this function if you do not have it yet". Single-key
// stores implement [Cache]; stores keyed by two arguments implement [BiCache].
//
// The stores differ in the key domain they accept and in what they trade:
//
//   - [Map]: any comparable key, plain Go map, strong values, never evicts.
//   - [PairMap]: two comparable arguments combined into a [Pair] key.
//   - [Range]: an int key inside a fixed [min, max] window, dense slice storage,
//     O(1) direct indexing. Keys outside the window are a programming error.
//   - [Packed]: two ints that each fit in 32 bits, packed into one uint64 key.
//   - [Weak]: values held through weak pointers, so the garbage collector may
//     reclaim them between calls. A reclaimed value is simply recomputed.
//   - [Sync]: a sharded store with atomic insert-if-absent, the only one that
//     is safe for concurrent callers.
//
// None of the stores evict on their own. A store lives as long as the closure
// that owns it; share one between closures only on purpose.
//
// Compute functions run without any store lock held, so they may call back
// into the same store for other keys. That is what recursive memoization does
// on every miss. A compute that panics leaves nothing behind for its key.
//
// WARNING: only memoize functions whose result depends on nothing but their
// arguments. A store cannot tell a stale value from a fresh one.
package cache
