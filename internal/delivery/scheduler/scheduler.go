// Package scheduler runs the periodic background jobs of the service: the
// stuck-operation sweep and the production accrual pass.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"zara/config"
	"zara/internal/delivery"
	"zara/internal/usecase"

	"go.uber.org/fx"
)

const (
	defaultSweepInterval   = 5 * time.Minute
	defaultSweepMaxAge     = 24 * time.Hour
	defaultAccrualInterval = time.Minute
)

// SchedulerParams holds dependencies for the scheduler, injected by Fx.
type SchedulerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	OperationUC usecase.OperationUsecase
	ShiftUC     usecase.ShiftUsecase
}

type scheduler struct {
	cfg         *config.Config
	logger      *slog.Logger
	operationUC usecase.OperationUsecase
	shiftUC     usecase.ShiftUsecase

	// mu guards cancel and stopped; Serve and the fx stop hook run on
	// different goroutines and may race on startup or shutdown.
	mu      sync.Mutex
	cancel  context.CancelFunc
	stopped bool
	done    chan struct{}
}

// NewScheduler creates the background job runner.
func NewScheduler(params SchedulerParams) (delivery.Delivery, error) {
	s := &scheduler{
		cfg:         params.Cfg,
		logger:      params.Logger,
		operationUC: params.OperationUC,
		shiftUC:     params.ShiftUC,
		done:        make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s, nil
}

// Serve runs the sweep and accrual loops until the context is cancelled.
func (s *scheduler) Serve(ctx context.Context) error {
	defer close(s.done)

	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()

		return nil
	}
	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.mu.Unlock()

	sweepInterval, maxAge, accrualInterval := s.intervals()

	s.logger.Info("Starting scheduler",
		slog.Duration("sweep_interval", sweepInterval),
		slog.Duration("sweep_max_age", maxAge),
		slog.Duration("accrual_interval", accrualInterval),
	)

	sweepTicker := time.NewTicker(sweepInterval)
	defer sweepTicker.Stop()

	accrualTicker := time.NewTicker(accrualInterval)
	defer accrualTicker.Stop()

	for {
		select {
		case <-runCtx.Done():
			s.logger.Info("Scheduler stopped")

			return nil
		case <-sweepTicker.C:
			if s.sweepEnabled() {
				s.runSweep(runCtx, maxAge)
			}
		case <-accrualTicker.C:
			s.runAccrual(runCtx)
		}
	}
}

func (s *scheduler) stop(ctx context.Context) error {
	s.mu.Lock()
	s.stopped = true
	cancel := s.cancel
	s.mu.Unlock()

	if cancel == nil {
		// Serve has not started; the stopped flag makes it return at once.
		return nil
	}
	cancel()

	select {
	case <-s.done:
	case <-ctx.Done():
		return ctx.Err()
	}

	return nil
}

func (s *scheduler) sweepEnabled() bool {
	return s.cfg.Sweep == nil || s.cfg.Sweep.Enabled
}

func (s *scheduler) runSweep(ctx context.Context, maxAge time.Duration) {
	report, err := s.operationUC.SweepStuckOperations(ctx, maxAge)
	if err != nil {
		s.logger.Error("Stuck-operation sweep failed", slog.Any("error", err))

		return
	}

	if report.Scanned > 0 {
		s.logger.Info("Stuck-operation sweep finished",
			slog.Int("scanned", report.Scanned),
			slog.Int("cancelled", report.Cancelled),
			slog.Int("failed", report.Failed),
		)
	}
}

func (s *scheduler) runAccrual(ctx context.Context) {
	if err := s.shiftUC.AccrueAllRunning(ctx, time.Now()); err != nil {
		s.logger.Error("Production accrual pass failed", slog.Any("error", err))
	}
}

// intervals resolves the configured cadence, falling back to defaults when
// the sweep section is absent.
func (s *scheduler) intervals() (sweepInterval, maxAge, accrualInterval time.Duration) {
	sweepInterval = defaultSweepInterval
	maxAge = defaultSweepMaxAge
	accrualInterval = defaultAccrualInterval

	if s.cfg.Sweep == nil {
		return sweepInterval, maxAge, accrualInterval
	}

	if s.cfg.Sweep.Interval > 0 {
		sweepInterval = s.cfg.Sweep.Interval
	}
	if s.cfg.Sweep.MaxAge > 0 {
		maxAge = s.cfg.Sweep.MaxAge
	}
	if s.cfg.Sweep.AccrualInterval > 0 {
		accrualInterval = s.cfg.Sweep.AccrualInterval
	}

	return sweepInterval, maxAge, accrualInterval
}
