package forkjoin

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"

	"github.com/alitto/pond/v2"
	"github.com/amp-labs/amp-sort/envutil"
	"github.com/amp-labs/amp-sort/errors"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/atomic"
)

// WorkerCountEnvVar sizes the default pool.
const WorkerCountEnvVar = "SORT_WORKER_COUNT"

const defaultPoolName = "default"

var errWorkerCount = fmt.Errorf("%s must be at least 1", WorkerCountEnvVar)

type poolOptions struct {
	name string
}

// Option configures a Pool.
type Option func(*poolOptions)

// WithName labels the pool's metrics.
func WithName(name string) Option {
	return func(p *poolOptions) {
		p.name = name
	}
}

// Pool is a bounded fork-join pool. It is safe for concurrent use and may be
// shared by any number of simultaneous Join calls.
type Pool struct {
	name    string
	workers int
	pool    pond.Pool
	closed  *atomic.Bool

	stolen   prometheus.Counter
	inline   prometheus.Counter
	panicked prometheus.Counter
}

// New creates a pool with at most workers goroutines. Values below 1 are
// treated as 1.
func New(workers int, opts ...Option) *Pool {
	options := &poolOptions{
		name: "forkjoin",
	}

	for _, opt := range opts {
		opt(options)
	}

	if workers < 1 {
		workers = 1
	}

	p := &Pool{
		name:     options.name,
		workers:  workers,
		pool:     pond.NewPool(workers),
		closed:   atomic.NewBool(false),
		stolen:   forks.WithLabelValues(options.name, modeStolen),
		inline:   forks.WithLabelValues(options.name, modeInline),
		panicked: panics.WithLabelValues(options.name),
	}

	poolAlive.WithLabelValues(p.name).Set(1)
	poolWorkers.WithLabelValues(p.name).Set(float64(workers))

	return p
}

// Name returns the metrics label of the pool.
func (p *Pool) Name() string {
	return p.name
}

// Workers returns the maximum number of pool goroutines.
func (p *Pool) Workers() int {
	return p.workers
}

// task is the forked half of a Join. Exactly one goroutine wins the claim and
// runs it; done is closed once it has finished.
type task struct {
	fn      func() error
	claimed *atomic.Bool
	done    chan struct{}
	err     error
}

func (t *task) claim() bool {
	return t.claimed.CompareAndSwap(false, true)
}

func (t *task) run(panicked prometheus.Counter) {
	defer close(t.done)

	t.err = call(t.fn, panicked)
}

// Join runs left and right, possibly in parallel, and returns once both have
// finished. left is queued on the pool; right runs on the calling goroutine.
// Once right is done, left is either reclaimed and run inline (if no worker
// started it) or waited for. After Close, both run inline.
func (p *Pool) Join(left, right func() error) error {
	if p.closed.Load() {
		return p.sequential(left, right)
	}

	forked := &task{
		fn:      left,
		claimed: atomic.NewBool(false),
		done:    make(chan struct{}),
	}

	if err := p.pool.Go(func() {
		if forked.claim() {
			p.stolen.Inc()
			forked.run(p.panicked)
		}
	}); err != nil {
		// Pool stopped underneath us; fall back to inline execution.
		return p.sequential(left, right)
	}

	rightErr := call(right, p.panicked)

	if forked.claim() {
		p.inline.Inc()
		forked.run(p.panicked)
	} else {
		<-forked.done
	}

	var errs errors.Collection

	errs.Add(forked.err)
	errs.Add(rightErr)

	return errs.GetError()
}

func (p *Pool) sequential(left, right func() error) error {
	p.inline.Inc()

	var errs errors.Collection

	errs.Add(call(left, p.panicked))
	errs.Add(call(right, p.panicked))

	return errs.GetError()
}

// Close stops the pool after the tasks already handed to workers complete.
// Joins issued afterwards run inline. Closing twice returns errors.ErrPoolClosed.
func (p *Pool) Close() error {
	if !p.closed.CompareAndSwap(false, true) {
		return errors.ErrPoolClosed
	}

	p.pool.StopAndWait()

	poolAlive.WithLabelValues(p.name).Set(0)

	return nil
}

var defaultPool = sync.OnceValue(func() *Pool { //nolint:gochecknoglobals
	count := WorkerCount(context.Background())

	slog.Debug("Initializing fork-join pool", "count", count)

	return New(count, WithName(defaultPoolName))
})

// Default returns the process-wide pool, created on first use and sized by
// WorkerCount.
func Default() *Pool {
	return defaultPool()
}

// WorkerCount returns SORT_WORKER_COUNT, or GOMAXPROCS when the variable is
// unset or invalid.
func WorkerCount(ctx context.Context) int {
	fallback := runtime.GOMAXPROCS(0)

	return envutil.Int(ctx, WorkerCountEnvVar,
		envutil.Default(fallback),
		envutil.Validate(func(n int) error {
			if n < 1 {
				return errWorkerCount
			}

			return nil
		})).ValueOrElse(fallback)
}
