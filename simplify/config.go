package simplify

import "github.com/rs/zerolog"

// Config holds the two bounds that guard a Builder against runaway
// recursion and leaf explosion, read-only after construction.
type Config struct {
	// MaxLeaves bounds the distinct opaque leaves: the whole simplification
	// aborts when a leaf is reached while more than MaxLeaves leaves are
	// already recorded. Hard ceiling logic.MaxLeaves.
	MaxLeaves int
	// MaxDepth is the maximum recursion depth into the expression DAG
	// before aborting.
	MaxDepth int

	logger *zerolog.Logger
}

// DefaultMaxLeaves and DefaultMaxDepth are the bounds a Builder uses when
// no WithMaxLeaves/WithMaxDepth option overrides them.
const (
	DefaultMaxLeaves = 8
	DefaultMaxDepth  = 8
)

func defaultConfig() Config {
	return Config{MaxLeaves: DefaultMaxLeaves, MaxDepth: DefaultMaxDepth}
}

// Option configures a Builder or a Simplify call via the functional-options
// pattern: each Option mutates one field of a Config passed by pointer.
type Option func(*Config)

// WithMaxLeaves overrides DefaultMaxLeaves. Values above logic.MaxLeaves
// (62) are a programmer error and panic in NewBuilder (which Simplify
// calls), not here.
func WithMaxLeaves(n int) Option {
	return func(c *Config) { c.MaxLeaves = n }
}

// WithMaxDepth overrides DefaultMaxDepth.
func WithMaxDepth(n int) Option {
	return func(c *Config) { c.MaxDepth = n }
}

// WithLogger attaches a zerolog.Logger that receives one debug line per
// node built. A nil logger (the default) disables debug output entirely.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Config) { c.logger = &l }
}
