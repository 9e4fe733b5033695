// Package model defines the values exchanged by one prime search.
package model

import (
	"math"
	"time"

	appErr "primehunt/pkg/errors"
)

// SearchParameters bounds a single search. Immutable once the search starts.
type SearchParameters struct {
	UpperBound uint64
	Timeout    time.Duration
}

// Validate requires both the upper bound and the timeout to be positive.
func (p SearchParameters) Validate() error {
	if p.UpperBound == 0 {
		return appErr.ValidationError("upper_bound", "must be positive")
	}
	if p.Timeout <= 0 {
		return appErr.ValidationError("timeout", "must be positive")
	}
	return nil
}

// TimeoutFromMinutes converts a fractional minute count to a duration,
// saturating at the largest duration and rounding positive sub-nanosecond
// values up to one nanosecond.
func TimeoutFromMinutes(minutes float64) time.Duration {
	if minutes <= 0 || math.IsNaN(minutes) {
		return 0
	}
	ns := minutes * float64(time.Minute)
	if ns >= math.MaxInt64 {
		return time.Duration(math.MaxInt64)
	}
	if ns < 1 {
		return time.Nanosecond
	}
	return time.Duration(ns)
}

// SearchOutcome is produced once by the search worker.
type SearchOutcome struct {
	PrimeCount   uint64
	HighestPrime uint64 // 0 when no prime was found
	Elapsed      time.Duration
	TimedOut     bool
}

// Report combines the outcome with the final progress counter.
type Report struct {
	RunID        string
	Params       SearchParameters
	Outcome      SearchOutcome
	LastExamined uint64
}

// Coverage is the percentage of the requested range examined.
func (r Report) Coverage() float64 {
	if r.Params.UpperBound == 0 {
		return 0
	}
	return float64(r.LastExamined) / float64(r.Params.UpperBound) * 100
}
