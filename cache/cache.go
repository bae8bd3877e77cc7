package cache

// Cache looks up a value by key, computing and storing it on a miss.
type Cache[K, V any] interface {
	Get(key K, compute func() V) V
}

// BiCache is Cache for functions of two arguments.
type BiCache[A, B, V any] interface {
	Get(a A, b B, compute func() V) V
}

var (
	_ Cache[string, int]        = (*Map[string, int])(nil)
	_ Cache[int, string]        = (*Range[string])(nil)
	_ Cache[string, *int]       = (*Weak[string, int])(nil)
	_ Cache[string, int]        = (*Sync[string, int])(nil)
	_ BiCache[int, string, int] = (*PairMap[int, string, int])(nil)
	_ BiCache[int, int, int]    = (*Packed[int])(nil)
)
