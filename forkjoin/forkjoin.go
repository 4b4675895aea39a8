// Package forkjoin runs two closures as a fork-join pair and reports their
// combined outcome.
//
// Two execution models are provided:
//
//   - Spawn forks the left closure onto a brand new goroutine every time.
//     Goroutine count grows with the number of forks; there is no bound.
//   - Pool.Join offers the left closure to a bounded pond worker pool. If no
//     worker has picked it up by the time the right closure finishes, the
//     caller takes it back and runs it inline. A joining caller therefore
//     only ever blocks on a task that is already running, which keeps
//     recursive joins deadlock-free no matter how small the pool is.
//
// In both models a panic inside either closure is recovered at the goroutine
// boundary and returned as an error wrapping errors.ErrPanicRecovery, and the
// call does not return until both closures have finished.
package forkjoin

import (
	"runtime/debug"

	"github.com/amp-labs/amp-sort/errors"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"
)

// Spawn runs left on a new goroutine and right on the calling goroutine,
// then waits for left. Errors (and recovered panics) from both sides are
// joined, left first.
func Spawn(left, right func() error) error {
	var group errgroup.Group

	spawnedForks.Inc()

	group.Go(func() error {
		return call(left, spawnPanics)
	})

	rightErr := call(right, spawnPanics)
	leftErr := group.Wait()

	var errs errors.Collection

	errs.Add(leftErr)
	errs.Add(rightErr)

	return errs.GetError()
}

// call runs fn, converting a panic into an error.
func call(fn func() error, panicked prometheus.Counter) (err error) {
	defer func() {
		if r := recover(); r != nil {
			panicked.Inc()

			err = errors.Recovered(r, debug.Stack())
		}
	}()

	return fn()
}
