package quicksort

import (
	"cmp"

	"github.com/amp-labs/amp-sort/forkjoin"
	"github.com/amp-labs/amp-sort/prng"
	"go.uber.org/atomic"
)

// Threaded sorts s in place, spawning a goroutine for the left half of
// every partition whose halves both need sorting, and joining it before
// returning. Goroutine count is unbounded (up to one per partition), which
// suits demonstrations rather than production throughput; see Parallel.
//
// If any goroutine panics, the remaining ones still run to completion and
// Threaded returns an error wrapping errors.ErrPanicRecovery. The contents
// of s are then unspecified, but still a permutation of the input.
func Threaded[T cmp.Ordered](s []T, opts ...Option) error {
	return ThreadedFunc(s, lessOrdered[T], opts...)
}

// ThreadedFunc is Threaded with a caller-supplied less, which must be safe
// to call from several goroutines at once.
func ThreadedFunc[T any](s []T, less func(a, b T) bool, opts ...Option) error {
	cfg := newConfig(opts)
	c := begin(cfg, StrategyThreaded, len(s))

	if len(s) <= 1 {
		return c.end(nil)
	}

	src := prng.Synchronized(cfg.source)

	return c.end(guard(func() error {
		return threaded(s, less, src, c.partitions)
	}))
}

func threaded[T any](s []T, less func(a, b T) bool, src prng.Source, partitions *atomic.Int64) error {
	if len(s) <= 1 {
		return nil
	}

	p := partition(s, less, src)
	partitions.Inc()

	left, right := split(s, p)

	switch {
	case len(left) <= 1:
		return threaded(right, less, src, partitions)
	case len(right) <= 1:
		return threaded(left, less, src, partitions)
	}

	return forkjoin.Spawn(
		func() error { return threaded(left, less, src, partitions) },
		func() error { return threaded(right, less, src, partitions) },
	)
}
