package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"pushkit/internal/domain/entity"
	"pushkit/internal/domain/resource"
	"pushkit/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googleSink implements EventSink using one Google Cloud Pub/Sub topic per stream
type googleSink struct {
	client     *pubsub.Client
	publishers map[resource.Kind]*pubsub.Publisher
	logger     *slog.Logger
}

// NewGoogleSink creates a sink publishing to topicPrefix+subject for every stream
func NewGoogleSink(ctx context.Context, projectID, topicPrefix string, logger *slog.Logger) (service.EventSink, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	publishers := make(map[resource.Kind]*pubsub.Publisher)
	for _, res := range resource.All() {
		topicID := topicPrefix + res.Subject
		topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)

		if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topicPath}); err != nil {
			client.Close()

			return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
		}

		publishers[res.Kind] = client.Publisher(topicID)
	}

	logger.Info("Google Pub/Sub sink initialized",
		slog.String("project_id", projectID),
		slog.String("topic_prefix", topicPrefix),
	)

	return &googleSink{
		client:     client,
		publishers: publishers,
		logger:     logger,
	}, nil
}

// Send publishes the batch as one message and waits for the server ack
func (s *googleSink) Send(ctx context.Context, res resource.Resource, batch *entity.EventBatch) error {
	publisher, ok := s.publishers[res.Kind]
	if !ok {
		return errors.Wrapf(resource.ErrUnknownResource, "no topic for %s", res.Kind)
	}

	data, err := json.Marshal(batch)
	if err != nil {
		return errors.WithStack(err)
	}

	msg := &pubsub.Message{
		Data: data,
		Attributes: map[string]string{
			"stream":      string(res.Kind),
			"device_id":   batch.DeviceID,
			"event_count": strconv.Itoa(len(batch.Events)),
		},
	}

	serverID, err := publisher.Publish(ctx, msg).Get(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	s.logger.DebugContext(ctx, "[GooglePubSub] Batch published",
		slog.String("stream", string(res.Kind)),
		slog.String("server_id", serverID),
		slog.Int("events", len(batch.Events)),
	)

	return nil
}

// Close releases Pub/Sub client resources
func (s *googleSink) Close() error {
	for _, publisher := range s.publishers {
		publisher.Stop()
	}
	if s.client != nil {
		return errors.WithStack(s.client.Close())
	}

	return nil
}
