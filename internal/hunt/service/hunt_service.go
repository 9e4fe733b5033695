// Package service sequences one prime search: it owns the shared progress
// state, runs the worker and the progress reporter, and builds the report.
package service

import (
	"context"
	"time"

	"primehunt/internal/hunt/model"
	"primehunt/internal/hunt/progress"
	"primehunt/internal/hunt/reporter"
	"primehunt/internal/hunt/search"
	appErr "primehunt/pkg/errors"
	"primehunt/pkg/utils/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Config wires the collaborators of a Service.
type Config struct {
	PollInterval time.Duration
	Renderer     reporter.Renderer
	Clock        search.Clock
}

// Service runs searches. It holds no per-search state and may be reused.
type Service struct {
	now      search.Clock
	worker   *search.Worker
	reporter *reporter.Reporter
}

// NewService creates a service from cfg.
func NewService(cfg Config) *Service {
	now := cfg.Clock
	if now == nil {
		now = time.Now
	}
	return &Service{
		now:      now,
		worker:   search.NewWorker(search.WithClock(now)),
		reporter: reporter.New(cfg.PollInterval, cfg.Renderer),
	}
}

// Hunt runs one search to completion or timeout. The reporter runs on its
// own goroutine; Hunt waits for the worker first and the reporter second,
// then reads the final progress counter. Nothing is logged between the two
// waits, while the progress line is on screen.
func (s *Service) Hunt(ctx context.Context, params model.SearchParameters) (model.Report, error) {
	if err := params.Validate(); err != nil {
		return model.Report{}, err
	}

	runID := uuid.NewString()
	ctx = logger.WithRunID(ctx, runID)

	state := progress.NewState()
	start := s.now()
	logger.Info(ctx, "search started",
		zap.Uint64("upper_bound", params.UpperBound),
		zap.Duration("timeout", params.Timeout),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.reporter.Run(gctx, state, start)
	})

	outcome := s.worker.Run(params, state, start)

	report := model.Report{
		RunID:   runID,
		Params:  params,
		Outcome: outcome,
	}
	err := g.Wait()
	report.LastExamined = state.LastExamined()
	if err != nil {
		return report, appErr.Wrapf(err, appErr.InternalError, "progress reporter failed")
	}

	if outcome.TimedOut {
		logger.Info(ctx, "search timed out",
			zap.Uint64("last_examined", report.LastExamined),
			zap.Uint64("upper_bound", params.UpperBound),
			zap.Duration("timeout", params.Timeout),
		)
	}
	logger.Info(ctx, "search finished",
		zap.Uint64("prime_count", outcome.PrimeCount),
		zap.Uint64("highest_prime", outcome.HighestPrime),
		zap.Duration("elapsed", outcome.Elapsed),
		zap.Bool("timed_out", outcome.TimedOut),
		zap.Uint64("last_examined", report.LastExamined),
	)
	return report, nil
}
