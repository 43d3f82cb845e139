package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"pushkit/config"
	"pushkit/internal/domain/entity"
	domainerrors "pushkit/internal/domain/errors"
	"pushkit/internal/domain/repository"
	"pushkit/internal/domain/resource"
	"pushkit/internal/domain/service"
	"pushkit/internal/errors"
	"pushkit/internal/infra/metrics"
	"pushkit/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"golang.org/x/sync/singleflight"
)

// DispatchServiceParams defines the dependencies of the dispatch engine
type DispatchServiceParams struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	EventRepo repository.EventRepository
	StateRepo repository.RegistrationStateRepository
	FlagRepo  repository.FlagRepository
	Sink      service.EventSink
	Trigger   service.FlushTrigger `optional:"true"`
	Metrics   *metrics.Metrics     `optional:"true"`
}

type dispatchService struct {
	logger    *slog.Logger
	eventRepo repository.EventRepository
	stateRepo repository.RegistrationStateRepository
	flagRepo  repository.FlagRepository
	sink      service.EventSink
	trigger   service.FlushTrigger
	metrics   *metrics.Metrics

	batchSize        int
	maxPending       int
	analyticsDefault bool

	// flights keeps at most one flush per stream in flight
	flights singleflight.Group
}

// NewDispatchService creates a new dispatch engine instance
func NewDispatchService(params DispatchServiceParams) usecase.DispatchUsecase {
	return &dispatchService{
		logger:           params.Logger,
		eventRepo:        params.EventRepo,
		stateRepo:        params.StateRepo,
		flagRepo:         params.FlagRepo,
		sink:             params.Sink,
		trigger:          params.Trigger,
		metrics:          params.Metrics,
		batchSize:        params.Config.Flush.BatchSize,
		maxPending:       params.Config.Analytics.MaxPending,
		analyticsDefault: params.Config.Analytics.Enabled,
	}
}

// Enqueue validates and stores an event, then makes sure a flush is scheduled
func (s *dispatchService) Enqueue(ctx context.Context, event *entity.Event) (uuid.UUID, error) {
	if event == nil || event.ID == uuid.Nil || strings.TrimSpace(event.Type) == "" {
		return uuid.Nil, domainerrors.ErrInvalidEvent
	}
	if event.Stream == "" {
		event.Stream = resource.KindAnalytics
	}

	res, err := resource.Lookup(event.Stream)
	if err != nil {
		return uuid.Nil, domainerrors.ErrUnknownResource.WithDetails(err.Error())
	}

	if res.RequiresAnalytics {
		enabled, err := s.AnalyticsEnabled(ctx)
		if err != nil {
			return uuid.Nil, err
		}
		if !enabled {
			return uuid.Nil, domainerrors.ErrAnalyticsDisabled
		}
	}

	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	event.Timestamp = event.Timestamp.UTC()
	if event.Status == "" {
		event.Status = entity.EventStatusNotPosted
	}
	if event.Payload == nil {
		event.Payload = map[string]any{}
	}

	id, err := s.eventRepo.Insert(ctx, event)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEvent) {
			return uuid.Nil, domainerrors.ErrEventAlreadyQueued.WithDetails(event.ID.String())
		}

		return uuid.Nil, domainerrors.NewDatabaseExecuteError(err, "insert event")
	}
	s.metrics.Enqueued(string(res.Kind))

	if s.maxPending > 0 {
		evicted, err := s.eventRepo.TrimOldest(ctx, res.Kind, s.maxPending)
		if err != nil {
			s.logger.WarnContext(ctx, "Failed to apply queue cap", slog.String("stream", string(res.Kind)), slog.Any("error", err))
		} else if evicted > 0 {
			s.metrics.Evicted(string(res.Kind), evicted)
			s.logger.WarnContext(ctx, "Queue cap reached, dropped oldest events",
				slog.String("stream", string(res.Kind)),
				slog.Int64("dropped", evicted),
			)
		}
	}

	if s.trigger != nil {
		s.trigger.Enable()
	}

	return id, nil
}

// Flush sends the oldest batch of a stream. Callers arriving while a flush of the
// same stream is in flight share its result instead of sending again.
func (s *dispatchService) Flush(ctx context.Context, kind resource.Kind) (*usecase.FlushResult, error) {
	res, err := resource.Lookup(kind)
	if err != nil {
		return nil, domainerrors.ErrUnknownResource.WithDetails(err.Error())
	}

	// leader is only written by the goroutine whose closure runs
	leader := false
	v, err, _ := s.flights.Do(string(res.Kind), func() (any, error) {
		leader = true

		return s.flush(ctx, res)
	})
	if err != nil {
		return nil, err
	}

	result := *v.(*usecase.FlushResult)
	result.Coalesced = !leader

	return &result, nil
}

func (s *dispatchService) flush(ctx context.Context, res resource.Resource) (*usecase.FlushResult, error) {
	logger := s.logger.With(slog.String("stream", string(res.Kind)))
	result := &usecase.FlushResult{Kind: res.Kind}

	if res.RequiresAnalytics {
		enabled, err := s.AnalyticsEnabled(ctx)
		if err != nil {
			return nil, err
		}
		if !enabled {
			return s.withRemaining(ctx, result)
		}
	}

	events, err := s.eventRepo.ListPending(ctx, res.Kind, s.batchSize)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "list pending events")
	}
	if len(events) == 0 {
		s.metrics.Pending(string(res.Kind), 0)

		return result, nil
	}

	state, err := s.stateRepo.Load(ctx)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "load registration state")
	}

	batch := entity.NewEventBatch(state.BackendDeviceID, events)
	ids := entity.EventIDs(events)

	start := time.Now()
	err = s.sink.Send(ctx, res, batch)
	took := time.Since(start)

	switch {
	case errors.Is(err, service.ErrAlreadyReceived):
		logger.InfoContext(ctx, "Batch already received by collector", slog.Int("events", len(ids)))
	case err != nil:
		if uerr := s.eventRepo.UpdateStatus(ctx, ids, entity.EventStatusPostingError); uerr != nil {
			logger.WarnContext(ctx, "Failed to mark events as failed", slog.Any("error", uerr))
		}
		s.metrics.Flushed(string(res.Kind), "failure", 0, took)
		logger.WarnContext(ctx, "Flush failed, events kept for next attempt",
			slog.Int("events", len(ids)),
			slog.Any("error", err),
		)
		if s.trigger != nil {
			s.trigger.Enable()
		}

		return nil, domainerrors.ErrBackendFailure.WithDetails(err.Error())
	}

	deleted, err := s.eventRepo.DeleteByIDs(ctx, ids)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "delete sent events")
	}
	result.Sent = len(ids)
	result.Deleted = deleted
	s.metrics.Flushed(string(res.Kind), "success", len(ids), took)
	logger.InfoContext(ctx, "Flushed events", slog.Int("sent", len(ids)), slog.Duration("took", took))

	return s.withRemaining(ctx, result)
}

func (s *dispatchService) withRemaining(ctx context.Context, result *usecase.FlushResult) (*usecase.FlushResult, error) {
	remaining, err := s.eventRepo.Count(ctx, result.Kind)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "count pending events")
	}
	result.Remaining = remaining
	s.metrics.Pending(string(result.Kind), remaining)

	return result, nil
}

// FlushAll flushes every stream once. A failing stream does not stop the others.
func (s *dispatchService) FlushAll(ctx context.Context) ([]*usecase.FlushResult, error) {
	var (
		results []*usecase.FlushResult
		errs    []error
	)

	for _, res := range resource.All() {
		result, err := s.Flush(ctx, res.Kind)
		if err != nil {
			errs = append(errs, errors.Wrapf(err, "flush %s", res.Kind))

			continue
		}
		results = append(results, result)
	}

	return results, errors.Join(errs...)
}

// Pending returns the number of queued events of a stream
func (s *dispatchService) Pending(ctx context.Context, kind resource.Kind) (int64, error) {
	res, err := resource.Lookup(kind)
	if err != nil {
		return 0, domainerrors.ErrUnknownResource.WithDetails(err.Error())
	}

	count, err := s.eventRepo.Count(ctx, res.Kind)
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "count pending events")
	}

	return count, nil
}

func (s *dispatchService) SetAnalyticsEnabled(ctx context.Context, enabled bool) error {
	if err := s.flagRepo.SetAnalyticsEnabled(ctx, enabled); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "store analytics flag")
	}
	s.logger.InfoContext(ctx, "Analytics collection toggled", slog.Bool("enabled", enabled))

	return nil
}

func (s *dispatchService) AnalyticsEnabled(ctx context.Context) (bool, error) {
	enabled, err := s.flagRepo.AnalyticsEnabled(ctx, s.analyticsDefault)
	if err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "load analytics flag")
	}

	return enabled, nil
}
