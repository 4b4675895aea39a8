package prng

import "sync"

// Locked is a Generator guarded by a mutex. The lock covers a single draw
// only, so goroutines partitioning disjoint ranges contend for as short a
// time as possible.
type Locked struct {
	mut sync.Mutex
	gen Generator
}

var _ Source = (*Locked)(nil)

// NewLocked returns a generator seeded with seed that is safe for
// concurrent use.
func NewLocked(seed uint64) *Locked {
	return &Locked{gen: Generator{current: seed}}
}

// Intn advances the generator and returns a value in [0, bound).
func (l *Locked) Intn(bound int) int {
	l.mut.Lock()
	defer l.mut.Unlock()

	return l.gen.Intn(bound)
}

// State returns the current LCG state.
func (l *Locked) State() uint64 {
	l.mut.Lock()
	defer l.mut.Unlock()

	return l.gen.current
}

// Reseed replaces the state, as if the generator had been created with seed.
func (l *Locked) Reseed(seed uint64) {
	l.mut.Lock()
	defer l.mut.Unlock()

	l.gen.current = seed
}

// Synchronized returns src unchanged if it is already safe for concurrent
// use, and otherwise wraps it so every draw is serialized. A wrapped
// *Generator keeps advancing its own state.
func Synchronized(src Source) Source { //nolint:ireturn
	switch s := src.(type) {
	case *Locked:
		return s
	case *syncSource:
		return s
	default:
		return &syncSource{src: src}
	}
}

type syncSource struct {
	mut sync.Mutex
	src Source
}

func (s *syncSource) Intn(bound int) int {
	s.mut.Lock()
	defer s.mut.Unlock()

	return s.src.Intn(bound)
}
