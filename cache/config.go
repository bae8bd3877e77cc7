package cache

import (
	"math/bits"

	"go.uber.org/zap"
)

const (
	// DefaultShards is the shard count of a Sync store unless WithShards says otherwise.
	DefaultShards = 64
	maxShards     = 1 << 16
)

// Config holds the tunables shared by the stores that have any.
type Config struct {
	Shards int         // Sync only; rounded up to a power of two. default: DefaultShards
	Logger *zap.Logger // default: no-op
}

type Option func(*Config)

func WithShards(n int) Option {
	return func(c *Config) {
		c.Shards = n
	}
}

// WithLogger sets the logger used for debug events such as the recomputation
// of a reclaimed weak value. Errors are never logged; they reach the caller.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// NewConfig applies opts and fills in defaults for anything left unset.
func NewConfig(opts ...Option) Config {
	var c Config
	for _, opt := range opts {
		opt(&c)
	}
	if c.Shards <= 0 {
		c.Shards = DefaultShards
	}
	if c.Shards > maxShards {
		c.Shards = maxShards
	}
	c.Shards = 1 << bits.Len(uint(c.Shards-1))
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	return c
}
