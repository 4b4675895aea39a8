package quicksort

import (
	"fmt"
	"runtime/debug"
	"time"

	"github.com/amp-labs/amp-sort/errors"
	"go.uber.org/atomic"
)

// Strategy selects how the quicksort recursion is executed.
type Strategy int

const (
	// StrategySequential recurses on the calling goroutine only.
	StrategySequential Strategy = iota
	// StrategyThreaded forks a new goroutine for every partition whose
	// halves both need sorting.
	StrategyThreaded
	// StrategyParallel forks through a bounded work-stealing pool.
	StrategyParallel
)

// Strategies lists every execution strategy.
var Strategies = []Strategy{StrategySequential, StrategyThreaded, StrategyParallel} //nolint:gochecknoglobals

func (s Strategy) String() string {
	switch s {
	case StrategySequential:
		return "sequential"
	case StrategyThreaded:
		return "threaded"
	case StrategyParallel:
		return "parallel"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// Run sorts s with the given strategy. Sequential sorts never return an
// error; a panic in less propagates to the caller as usual.
func Run[T any](strategy Strategy, s []T, less func(a, b T) bool, opts ...Option) error {
	switch strategy {
	case StrategySequential:
		SortFunc(s, less, opts...)

		return nil
	case StrategyThreaded:
		return ThreadedFunc(s, less, opts...)
	case StrategyParallel:
		return ParallelFunc(s, less, opts...)
	default:
		return fmt.Errorf("%w: %s", errors.ErrUnknownStrategy, strategy)
	}
}

// call tracks one top-level sort invocation for logging and metrics.
type call struct {
	cfg        *config
	strategy   Strategy
	length     int
	start      time.Time
	partitions *atomic.Int64
}

func begin(cfg *config, strategy Strategy, length int) *call {
	if strategy != StrategySequential {
		cfg.logger.Debug("quicksort starting", "strategy", strategy.String(), "length", length)
	}

	return &call{
		cfg:        cfg,
		strategy:   strategy,
		length:     length,
		start:      time.Now(),
		partitions: atomic.NewInt64(0),
	}
}

// end records the call and hands err back to the caller.
func (c *call) end(err error) error {
	c.finish(err)

	return err
}

func (c *call) finish(err error) {
	label := c.strategy.String()

	sortsTotal.WithLabelValues(label).Inc()
	elementsTotal.WithLabelValues(label).Add(float64(c.length))
	partitionsTotal.WithLabelValues(label).Add(float64(c.partitions.Load()))
	sortDuration.WithLabelValues(label).Observe(time.Since(c.start).Seconds())

	if err != nil {
		failuresTotal.WithLabelValues(label).Inc()

		c.cfg.logger.Error("quicksort failed",
			"strategy", label, "length", c.length, "error", err)
	}
}

// guard runs fn, converting a panic on the calling goroutine into an error
// so the concurrent strategies report every failure the same way.
func guard(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Recovered(r, debug.Stack())
		}
	}()

	return fn()
}
