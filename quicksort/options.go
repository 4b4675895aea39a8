package quicksort

import (
	"log/slog"

	"github.com/amp-labs/amp-sort/forkjoin"
	"github.com/amp-labs/amp-sort/prng"
)

// Option configures a single sort call.
type Option func(*config)

type config struct {
	source prng.Source
	pool   *forkjoin.Pool
	logger *slog.Logger
}

// WithSource sets the generator used to pick pivots. Within one call the
// concurrent strategies serialize draws on sources that are not already safe
// for concurrent use; sharing such a source between simultaneous calls is
// the caller's responsibility (use a *prng.Locked instead).
func WithSource(src prng.Source) Option {
	return func(c *config) {
		c.source = src
	}
}

// WithSeed gives the call its own generator seeded with seed, so the pivot
// sequence does not depend on any other caller.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.source = prng.NewLocked(seed)
	}
}

// WithPool sets the pool used by Parallel. Defaults to forkjoin.Default().
func WithPool(pool *forkjoin.Pool) Option {
	return func(c *config) {
		c.pool = pool
	}
}

// WithLogger sets the logger for the call. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

func newConfig(opts []Option) *config {
	cfg := &config{}

	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.source == nil {
		cfg.source = prng.Default()
	}

	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}

	return cfg
}

func (c *config) forkJoinPool() *forkjoin.Pool {
	if c.pool == nil {
		return forkjoin.Default()
	}

	return c.pool
}
