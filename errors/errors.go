// Package errors holds the sentinel errors shared by the sorting packages,
// plus helpers for turning recovered panics into errors and for combining
// the failures of sibling workers.
package errors

import "errors"

var (
	// ErrPanicRecovery wraps every panic recovered at a goroutine boundary.
	ErrPanicRecovery = errors.New("recovered from panic")

	// ErrEmptySequence is the panic value used when a partition is requested
	// on a sequence with no elements. Callers must guard with len(s) > 1.
	ErrEmptySequence = errors.New("partition of empty sequence")

	// ErrInvalidBound is the panic value used when a random draw is requested
	// with an upper bound that is not positive.
	ErrInvalidBound = errors.New("random bound must be positive")

	// ErrPoolClosed is returned when a fork-join pool is closed twice.
	ErrPoolClosed = errors.New("fork-join pool is closed")

	// ErrUnknownStrategy is returned when a sort is requested with an
	// execution strategy that does not exist.
	ErrUnknownStrategy = errors.New("unknown sort strategy")
)

// Collection is a thread-unsafe utility for accumulating multiple errors.
// It provides methods to add errors, check for errors, and retrieve them as a single combined error.
// The fork-join helpers use it to merge the outcome of both halves of a join.
type Collection struct {
	errors []error
}

// Add appends an error to the collection. Nil errors are automatically ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// Clear removes all errors from the collection, resetting it to an empty state.
func (c *Collection) Clear() {
	c.errors = nil
}

// HasError returns true if the collection contains at least one error.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// Len returns the number of collected errors.
func (c *Collection) Len() int {
	return len(c.errors)
}

// GetError returns the collected errors as a single error.
// Returns nil if the collection is empty, the single error if there's only one,
// or a joined error (using errors.Join) if there are multiple errors.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}
