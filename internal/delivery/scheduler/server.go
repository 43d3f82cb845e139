// Package scheduler flushes queued events whenever the flush alarm fires.
package scheduler

import (
	"context"
	"log/slog"
	"sync"

	"pushkit/internal/domain/lifecycle"
	"pushkit/internal/domain/resource"
	"pushkit/internal/errors"
	"pushkit/internal/infra/alarm"
	"pushkit/internal/usecase"

	"go.uber.org/fx"
)

// Trigger is the alarm driving the scheduler
type Trigger interface {
	Enable() bool
	Fired() <-chan struct{}
}

// ServerParams holds dependencies for the scheduler, injected by Fx
type ServerParams struct {
	fx.In

	Lc       fx.Lifecycle
	Logger   *slog.Logger
	Alarm    *alarm.Alarm
	Dispatch usecase.DispatchUsecase
}

// Scheduler is the delivery that turns alarm fires into flushes
type Scheduler struct {
	logger   *slog.Logger
	trigger  Trigger
	dispatch usecase.DispatchUsecase

	quit     chan struct{}
	stopOnce sync.Once
	done     chan struct{}
}

// NewServer creates the scheduler delivery
func NewServer(params ServerParams) *Scheduler {
	s := newScheduler(params.Alarm, params.Dispatch, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Alarm.Disable()

			return s.stop(ctx)
		},
	})

	return s
}

func newScheduler(trigger Trigger, dispatch usecase.DispatchUsecase, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		logger:   logger,
		trigger:  trigger,
		dispatch: dispatch,
		quit:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Serve recovers pending work and then flushes on every alarm fire
func (s *Scheduler) Serve(ctx context.Context) error {
	defer close(s.done)

	s.logger.Info("Starting flush scheduler")
	s.resume(ctx)

	for {
		select {
		case <-s.quit:
			return nil
		case <-ctx.Done():
			return nil
		case <-s.trigger.Fired():
			s.flush(ctx)
		}
	}
}

// resume arms the alarm when events survived a restart.
func (s *Scheduler) resume(ctx context.Context) {
	var pending int64
	for _, res := range resource.All() {
		n, err := s.dispatch.Pending(ctx, res.Kind)
		if err != nil {
			s.logger.WarnContext(ctx, "Failed to count pending events", slog.String("stream", string(res.Kind)), slog.Any("error", err))
			// Arm anyway; the flush reports the storage problem.
			pending++

			continue
		}
		pending += n
	}

	if pending > 0 {
		s.trigger.Enable()
		s.logger.InfoContext(ctx, "Pending events found at start, flush scheduled", slog.Int64("pending", pending))
	}
}

func (s *Scheduler) flush(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case <-s.quit:
			cancel()
		case <-ctx.Done():
		}
	}()

	results, err := s.dispatch.FlushAll(ctx)

	var remaining int64
	for _, r := range results {
		remaining += r.Remaining
	}

	if err != nil {
		s.logger.WarnContext(ctx, "Scheduled flush failed", slog.Any("error", err))
	}
	if err != nil || remaining > 0 {
		s.trigger.Enable()
	}

	s.logger.InfoContext(ctx, "Scheduled flush finished",
		slog.Int("streams", len(results)),
		slog.Int64("remaining", remaining),
	)
}

func (s *Scheduler) stop(ctx context.Context) error {
	s.stopOnce.Do(func() { close(s.quit) })

	s.logger.Info("Shutting down flush scheduler")

	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}
}
