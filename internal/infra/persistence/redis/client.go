// Package redis stores agent settings and the event queue in Redis.
package redis

import (
	"context"
	"log/slog"
	"time"

	"pushkit/config"
	"pushkit/internal/domain/lifecycle"
	"pushkit/internal/errors"

	"github.com/cenkalti/backoff/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const pingDeadline = 30 * time.Second

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the Redis client and checks the connection on start
func New(params Params) (*redis.Client, error) {
	if params.Config.Redis == nil || params.Config.Redis.URL == "" {
		return nil, errors.New("redis.url is required for redis storage")
	}

	opts, err := redis.ParseURL(params.Config.Redis.URL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse redis URL")
	}
	client := redis.NewClient(opts)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := ping(ctx, client); err != nil {
				return err
			}
			params.Logger.Info("Redis client connected", slog.String("addr", opts.Addr), slog.Int("db", opts.DB))

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}

func ping(ctx context.Context, client *redis.Client) error {
	_, err := backoff.Retry(ctx, func() (string, error) {
		return client.Ping(ctx).Result()
	},
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxElapsedTime(pingDeadline),
	)
	if err != nil {
		return errors.Wrap(err, "failed to ping redis")
	}

	return nil
}
