package pubsub

import (
	"context"
	"log/slog"

	"pushkit/config"
	"pushkit/internal/domain/constants"
	"pushkit/internal/domain/service"
	"pushkit/internal/infra/backend"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SinkParams holds dependencies for EventSink, injected by Fx
type SinkParams struct {
	fx.In

	Lc      fx.Lifecycle
	Ctx     context.Context
	Config  *config.Config
	Logger  *slog.Logger
	Session service.RegistrationSession
}

// NewEventSink creates an EventSink based on configuration
func NewEventSink(params SinkParams) (service.EventSink, error) {
	cfg := params.Config.Sink
	logger := params.Logger

	var (
		sink service.EventSink
		err  error
	)

	switch cfg.Provider {
	case "", constants.SinkProviderHTTP:
		logger.Info("Using backend events API sink")

		sink = backend.NewEventsSink(params.Config, params.Session, logger)

	case constants.SinkProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}
		logger.Info("Using Google Pub/Sub sink",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		sink, err = NewGoogleSink(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}

	case constants.SinkProviderNats:
		if cfg.NatsURL == "" {
			return nil, errors.New("nats URL is required for nats provider")
		}
		if cfg.Subject == "" {
			return nil, errors.New("subject is required for nats provider")
		}

		sink, err = NewNatsSink(params.Ctx, cfg.NatsURL, cfg.Subject, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown sink provider: %s", cfg.Provider)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing EventSink")

			return sink.Close()
		},
	})

	return sink, nil
}
