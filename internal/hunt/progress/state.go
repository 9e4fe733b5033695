// Package progress holds the state shared between the search worker and
// its observers during one search.
package progress

import "sync/atomic"

// Observer is the read-only view of a search in flight.
type Observer interface {
	Running() bool
	LastExamined() uint64
}

// State is written by exactly one goroutine (the search worker) and read by
// any number of others. Fields are atomics; no ordering between them is
// promised beyond per-field visibility.
type State struct {
	running      atomic.Bool
	lastExamined atomic.Uint64
}

// NewState returns a state that is running with nothing examined yet.
func NewState() *State {
	s := &State{}
	s.running.Store(true)
	return s
}

// Running reports whether the search is still in progress.
func (s *State) Running() bool {
	return s.running.Load()
}

// LastExamined returns the last candidate the worker started evaluating.
func (s *State) LastExamined() uint64 {
	return s.lastExamined.Load()
}

// Advance publishes n as the candidate being evaluated. Callers must pass
// non-decreasing values.
func (s *State) Advance(n uint64) {
	s.lastExamined.Store(n)
}

// Stop clears the running flag. Only the first call has an effect; it
// returns true for that call.
func (s *State) Stop() bool {
	return s.running.CompareAndSwap(true, false)
}
