package main

import (
	"context"
	"log/slog"
	"os"

	"pushkit/config"
	"pushkit/internal/delivery"
	"pushkit/internal/delivery/api"
	"pushkit/internal/delivery/api/router/handler"
	"pushkit/internal/delivery/scheduler"
	"pushkit/internal/delivery/worker"
	"pushkit/internal/domain/constants"
	"pushkit/internal/domain/repository"
	"pushkit/internal/domain/service"
	"pushkit/internal/errors"
	"pushkit/internal/infra/alarm"
	"pushkit/internal/infra/backend"
	logs "pushkit/internal/infra/log"
	"pushkit/internal/infra/messaging"
	"pushkit/internal/infra/metrics"
	"pushkit/internal/infra/persistence/kvstate"
	"pushkit/internal/infra/persistence/memory"
	"pushkit/internal/infra/persistence/postgres"
	"pushkit/internal/infra/persistence/redis"
	"pushkit/internal/infra/pubsub"
	"pushkit/internal/usecase"
	"pushkit/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		metrics.NewRegistry,
		metrics.New,
	)
}

type storageParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

type storageResult struct {
	fx.Out

	Events   repository.EventRepository
	Settings repository.KeyValueStore
}

// newStorage picks the event queue and settings store for storage.provider
func newStorage(params storageParams) (storageResult, error) {
	cfg := params.Config

	switch cfg.Storage.Provider {
	case "", constants.StorageProviderMemory:
		params.Logger.Warn("Using in-memory storage, queued events are lost on exit")

		return storageResult{
			Events:   memory.NewEventRepository(),
			Settings: memory.NewKVStore(),
		}, nil

	case constants.StorageProviderRedis:
		client, err := redis.New(redis.Params{Lifecycle: params.Lc, Config: cfg, Logger: params.Logger})
		if err != nil {
			return storageResult{}, err
		}

		return storageResult{
			Events:   redis.NewEventRepository(client, cfg.Redis.KeyPrefix),
			Settings: redis.NewKVStore(client, cfg.Redis.KeyPrefix),
		}, nil

	case constants.StorageProviderPostgres:
		db, err := postgres.New(postgres.Params{Lifecycle: params.Lc, Config: cfg, Logger: params.Logger})
		if err != nil {
			return storageResult{}, err
		}

		return storageResult{
			Events:   postgres.NewEventRepository(db),
			Settings: postgres.NewKVStore(db),
		}, nil

	default:
		return storageResult{}, errors.Errorf("unknown storage provider: %s", cfg.Storage.Provider)
	}
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			newStorage,
			kvstate.NewStateRepository,
			kvstate.NewFlagRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			backend.NewSessionFromConfig,
			backend.NewRegistrationClient,
			messaging.NewMessagingProvider,
			pubsub.NewEventSink,
			alarm.New,
			func(a *alarm.Alarm) service.FlushTrigger { return a },
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewRegistrationService,
			impl.NewDispatchService,
			func(uc usecase.DispatchUsecase) usecase.EventRecorder { return uc },
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewRegistrationHandler,
			handler.NewStreamHandler,
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			worker.NewRegistrationWorker,
			func(w *worker.RegistrationWorker) worker.Submitter { return w },
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				func(w *worker.RegistrationWorker) delivery.Delivery { return w },
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				func(params scheduler.ServerParams) delivery.Delivery { return scheduler.NewServer(params) },
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
