package quicksort

import (
	"cmp"

	"github.com/amp-labs/amp-sort/prng"
	"go.uber.org/atomic"
)

// Sort sorts s in place in ascending order on the calling goroutine.
// It is not stable.
func Sort[T cmp.Ordered](s []T, opts ...Option) {
	SortFunc(s, lessOrdered[T], opts...)
}

// SortFunc sorts s in place using less. It is not stable.
func SortFunc[T any](s []T, less func(a, b T) bool, opts ...Option) {
	cfg := newConfig(opts)
	c := begin(cfg, StrategySequential, len(s))

	sequential(s, less, cfg.source, c.partitions)

	c.finish(nil)
}

func sequential[T any](s []T, less func(a, b T) bool, src prng.Source, partitions *atomic.Int64) {
	if len(s) <= 1 {
		return
	}

	p := partition(s, less, src)
	partitions.Inc()

	left, right := split(s, p)

	sequential(left, less, src, partitions)
	sequential(right, less, src, partitions)
}
