// Package worker runs registration jobs one at a time on a single goroutine.
package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"pushkit/config"
	"pushkit/internal/domain/entity"
	domainerrors "pushkit/internal/domain/errors"
	"pushkit/internal/errors"
	"pushkit/internal/usecase"

	"github.com/cenkalti/backoff/v5"
	"go.uber.org/fx"
)

const (
	defaultQueueSize    = 16
	startupRetryTimeout = 10 * time.Minute
)

// JobKind names a registration job
type JobKind string

const (
	JobRegister     JobKind = "register"
	JobUnregister   JobKind = "unregister"
	JobRefreshToken JobKind = "refresh_token"
)

// Job is one unit of registration work
type Job struct {
	Kind   JobKind
	Params *entity.RegistrationParameters
	Token  string
}

type envelope struct {
	ctx    context.Context
	job    Job
	result chan error
}

// Submitter hands jobs to the worker and waits for their outcome
type Submitter interface {
	Submit(ctx context.Context, job Job) error
}

// RegistrationWorkerParams holds dependencies for the worker, injected by Fx
type RegistrationWorkerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Config       *config.Config
	Logger       *slog.Logger
	Registration usecase.RegistrationUsecase
}

// RegistrationWorker serializes registration jobs and optionally registers on start
type RegistrationWorker struct {
	logger          *slog.Logger
	registration    usecase.RegistrationUsecase
	registerOnStart *entity.RegistrationParameters
	timeout         time.Duration

	jobs     chan envelope
	quit     chan struct{}
	stopOnce sync.Once
	done     chan struct{}
}

// NewRegistrationWorker creates the worker; Serve must run for Submit to make progress
func NewRegistrationWorker(params RegistrationWorkerParams) *RegistrationWorker {
	w := newRegistrationWorker(params.Registration, params.Logger)

	if reg := params.Config.Registration; reg != nil {
		w.timeout = reg.Timeout
		if reg.RegisterOnStart {
			w.registerOnStart = reg.Parameters()
		}
	}

	params.Lc.Append(fx.Hook{
		OnStop: w.stop,
	})

	return w
}

func newRegistrationWorker(registration usecase.RegistrationUsecase, logger *slog.Logger) *RegistrationWorker {
	return &RegistrationWorker{
		logger:       logger,
		registration: registration,
		jobs:         make(chan envelope, defaultQueueSize),
		quit:         make(chan struct{}),
		done:         make(chan struct{}),
	}
}

// Submit queues a job and blocks until it has run or ctx is done
func (w *RegistrationWorker) Submit(ctx context.Context, job Job) error {
	env := envelope{ctx: ctx, job: job, result: make(chan error, 1)}

	select {
	case w.jobs <- env:
	case <-w.quit:
		return domainerrors.ErrWorkerStopped
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}

	select {
	case err := <-env.result:
		return err
	case <-w.quit:
		return domainerrors.ErrWorkerStopped
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}
}

// Serve runs jobs until the worker is stopped
func (w *RegistrationWorker) Serve(ctx context.Context) error {
	defer close(w.done)

	w.logger.Info("Starting registration worker")

	if w.registerOnStart != nil {
		go w.registerAtStartup(ctx)
	}

	for {
		select {
		case <-w.quit:
			return nil
		case <-ctx.Done():
			return nil
		case env := <-w.jobs:
			env.result <- w.run(env.ctx, env.job)
		}
	}
}

func (w *RegistrationWorker) run(ctx context.Context, job Job) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}
	if w.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, w.timeout)
		defer cancel()
	}

	w.logger.DebugContext(ctx, "Running registration job", slog.String("kind", string(job.Kind)))

	switch job.Kind {
	case JobRegister:
		return w.registration.Register(ctx, job.Params)
	case JobUnregister:
		return w.registration.Unregister(ctx, job.Params)
	case JobRefreshToken:
		return w.registration.HandleTokenRefresh(ctx, job.Token)
	default:
		return domainerrors.ErrInvalidParameters.WithDetails("unknown job kind " + string(job.Kind))
	}
}

// registerAtStartup retries the configured registration with exponential backoff.
// Invalid parameters are not retried.
func (w *RegistrationWorker) registerAtStartup(parent context.Context) {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()
	go func() {
		select {
		case <-w.quit:
			cancel()
		case <-ctx.Done():
		}
	}()

	job := Job{Kind: JobRegister, Params: w.registerOnStart}
	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		err := w.Submit(ctx, job)
		switch {
		case err == nil:
			return struct{}{}, nil
		case errors.Is(err, domainerrors.ErrInvalidParameters), errors.Is(err, domainerrors.ErrWorkerStopped):
			return struct{}{}, backoff.Permanent(err)
		default:
			w.logger.WarnContext(ctx, "Startup registration failed, retrying", slog.Any("error", err))

			return struct{}{}, err
		}
	},
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxElapsedTime(startupRetryTimeout),
	)
	if err != nil {
		w.logger.Error("Startup registration gave up", slog.Any("error", err))

		return
	}
	w.logger.Info("Startup registration completed")
}

func (w *RegistrationWorker) stop(ctx context.Context) error {
	w.stopOnce.Do(func() { close(w.quit) })

	w.logger.Info("Shutting down registration worker")

	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}
}
