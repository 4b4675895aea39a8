package quicksort

import (
	"cmp"

	"github.com/amp-labs/amp-sort/forkjoin"
	"github.com/amp-labs/amp-sort/prng"
	"go.uber.org/atomic"
)

// Parallel sorts s in place, forking both halves of every partition through
// a bounded fork-join pool (WithPool, default forkjoin.Default()). Idle
// workers steal queued halves; halves nobody stole run on the goroutine that
// forked them. Parallel returns only after every half has finished.
//
// Panics are reported as for Threaded.
func Parallel[T cmp.Ordered](s []T, opts ...Option) error {
	return ParallelFunc(s, lessOrdered[T], opts...)
}

// ParallelFunc is Parallel with a caller-supplied less, which must be safe
// to call from several goroutines at once.
func ParallelFunc[T any](s []T, less func(a, b T) bool, opts ...Option) error {
	cfg := newConfig(opts)
	c := begin(cfg, StrategyParallel, len(s))

	if len(s) <= 1 {
		return c.end(nil)
	}

	job := &parallelJob[T]{
		less:       less,
		src:        prng.Synchronized(cfg.source),
		pool:       cfg.forkJoinPool(),
		partitions: c.partitions,
	}

	return c.end(guard(func() error {
		return job.sort(s)
	}))
}

type parallelJob[T any] struct {
	less       func(a, b T) bool
	src        prng.Source
	pool       *forkjoin.Pool
	partitions *atomic.Int64
}

func (j *parallelJob[T]) sort(s []T) error {
	if len(s) <= 1 {
		return nil
	}

	p := partition(s, j.less, j.src)
	j.partitions.Inc()

	left, right := split(s, p)

	switch {
	case len(left) <= 1:
		return j.sort(right)
	case len(right) <= 1:
		return j.sort(left)
	}

	return j.pool.Join(
		func() error { return j.sort(left) },
		func() error { return j.sort(right) },
	)
}
