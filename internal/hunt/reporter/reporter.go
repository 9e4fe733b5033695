// Package reporter renders elapsed time while a search runs.
package reporter

import (
	"context"
	"fmt"
	"io"
	"time"

	"primehunt/internal/hunt/progress"
	"primehunt/pkg/utils/logger"

	"go.uber.org/zap"
)

// DefaultInterval is the polling cadence of the progress line.
const DefaultInterval = 100 * time.Millisecond

// Renderer draws the progress line.
type Renderer interface {
	Tick(elapsed time.Duration)
	Finish()
}

// NopRenderer renders nothing.
type NopRenderer struct{}

func (NopRenderer) Tick(time.Duration) {}
func (NopRenderer) Finish()            {}

// ConsoleRenderer overwrites a single terminal line on every tick.
type ConsoleRenderer struct {
	out io.Writer
}

func NewConsoleRenderer(out io.Writer) *ConsoleRenderer {
	return &ConsoleRenderer{out: out}
}

func (r *ConsoleRenderer) Tick(elapsed time.Duration) {
	_, _ = fmt.Fprintf(r.out, "\r⏱️  Running: %.1fs", elapsed.Seconds())
}

func (r *ConsoleRenderer) Finish() {
	_, _ = fmt.Fprintln(r.out)
}

// Reporter polls a search and never writes to its state.
type Reporter struct {
	interval time.Duration
	render   Renderer
}

// New creates a reporter. A non-positive interval falls back to
// DefaultInterval and a nil renderer to NopRenderer.
func New(interval time.Duration, render Renderer) *Reporter {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if render == nil {
		render = NopRenderer{}
	}
	return &Reporter{interval: interval, render: render}
}

// Run ticks until the observer stops running, then renders the final line
// break once. It returns within one interval of the flag clearing. A
// cancelled ctx also ends the loop and is reported as its error, even when
// the search finished before the first poll.
func (r *Reporter) Run(ctx context.Context, state progress.Observer, start time.Time) error {
	ticks, err := r.poll(ctx, state, start)
	r.render.Finish()

	// Logged after Finish so the entry starts on a fresh line.
	logger.Debug(ctx, "progress reporter stopped", zap.Int("ticks", ticks), zap.Error(err))
	return err
}

func (r *Reporter) poll(ctx context.Context, state progress.Observer, start time.Time) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	ticks := 0
	for state.Running() {
		select {
		case <-ctx.Done():
			return ticks, ctx.Err()
		case <-ticker.C:
		}
		if !state.Running() {
			break
		}
		r.render.Tick(time.Since(start))
		ticks++
	}
	return ticks, nil
}
