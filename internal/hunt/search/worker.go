// Package search runs the bounded, time-limited prime search.
package search

import (
	"time"

	"primehunt/internal/hunt/model"
	"primehunt/internal/hunt/prime"
	"primehunt/internal/hunt/progress"
)

// Clock returns the current time.
type Clock func() time.Time

// Option configures a Worker.
type Option func(*Worker)

// WithClock replaces the wall clock used for timeout checks.
func WithClock(clock Clock) Option {
	return func(w *Worker) {
		if clock != nil {
			w.now = clock
		}
	}
}

// Worker scans candidates in increasing order and is the sole writer of the
// progress state it is given.
type Worker struct {
	now Clock
}

// NewWorker creates a worker using the wall clock unless overridden.
func NewWorker(opts ...Option) *Worker {
	w := &Worker{now: time.Now}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run examines 1..params.UpperBound until the range is exhausted or more
// than params.Timeout has elapsed since start. The timeout is checked once per
// candidate, so a run may overrun by the cost of one primality test.
// The state is stopped exactly once before Run returns. Run writes nothing to
// the console or the log while the progress line is live.
func (w *Worker) Run(params model.SearchParameters, state *progress.State, start time.Time) model.SearchOutcome {
	var out model.SearchOutcome

	for n := uint64(1); n <= params.UpperBound; n++ {
		if w.now().Sub(start) > params.Timeout {
			out.TimedOut = true
			break
		}

		state.Advance(n)

		if prime.IsPrime(n) {
			out.PrimeCount++
			out.HighestPrime = n
		}

		if n == params.UpperBound {
			// n++ would wrap at math.MaxUint64
			break
		}
	}

	state.Stop()
	out.Elapsed = w.now().Sub(start)
	return out
}
