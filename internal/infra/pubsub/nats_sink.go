package pubsub

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"pushkit/internal/domain/entity"
	"pushkit/internal/domain/resource"
	"pushkit/internal/domain/service"

	"github.com/cenkalti/backoff/v5"
	"github.com/nats-io/nats.go"
	"github.com/pkg/errors"
)

const (
	natsConnectTimeout  = 10 * time.Second
	natsConnectDeadline = time.Minute
	natsStreamName      = "PUSHKIT"
)

// jetStreamPublisher is the subset of nats.JetStreamContext used by the sink
type jetStreamPublisher interface {
	PublishMsg(m *nats.Msg, opts ...nats.PubOpt) (*nats.PubAck, error)
}

// natsSink implements EventSink on NATS JetStream. Batches are published with a
// message id so JetStream drops redeliveries of the same batch.
type natsSink struct {
	conn          *nats.Conn
	js            jetStreamPublisher
	subjectPrefix string
	logger        *slog.Logger
}

// NewNatsSink connects to NATS and makes sure the stream covering subjectPrefix exists
func NewNatsSink(ctx context.Context, url, subjectPrefix string, logger *slog.Logger) (service.EventSink, error) {
	connect := func() (*nats.Conn, error) {
		return nats.Connect(
			url,
			nats.Timeout(natsConnectTimeout),
			nats.MaxReconnects(-1),
			nats.ReconnectWait(2*time.Second),
		)
	}

	nc, err := backoff.Retry(ctx, connect,
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxElapsedTime(natsConnectDeadline),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to NATS")
	}

	js, err := nc.JetStream()
	if err != nil {
		nc.Close()

		return nil, errors.Wrap(err, "failed to create JetStream context")
	}

	wildcard := strings.TrimSuffix(subjectPrefix, ".") + ".>"
	if _, err := js.StreamInfo(natsStreamName); err != nil {
		if !errors.Is(err, nats.ErrStreamNotFound) {
			nc.Close()

			return nil, errors.Wrapf(err, "failed to get stream info for %s", natsStreamName)
		}

		logger.Info("Stream not found, creating it", slog.String("stream", natsStreamName))
		if _, err := js.AddStream(&nats.StreamConfig{
			Name:     natsStreamName,
			Subjects: []string{wildcard},
		}); err != nil {
			nc.Close()

			return nil, errors.Wrapf(err, "failed to create stream %s", natsStreamName)
		}
	}

	logger.Info("NATS JetStream sink initialized",
		slog.String("url", url),
		slog.String("subjects", wildcard),
	)

	return newNatsSink(nc, js, subjectPrefix, logger), nil
}

func newNatsSink(conn *nats.Conn, js jetStreamPublisher, subjectPrefix string, logger *slog.Logger) *natsSink {
	return &natsSink{
		conn:          conn,
		js:            js,
		subjectPrefix: strings.TrimSuffix(subjectPrefix, ".") + ".",
		logger:        logger,
	}
}

// Send publishes the batch to prefix+subject and waits for the JetStream ack
func (s *natsSink) Send(ctx context.Context, res resource.Resource, batch *entity.EventBatch) error {
	data, err := json.Marshal(batch)
	if err != nil {
		return errors.WithStack(err)
	}

	msg := nats.NewMsg(s.subjectPrefix + res.Subject)
	msg.Data = data
	msg.Header.Set("Device-Id", batch.DeviceID)
	msg.Header.Set(nats.MsgIdHdr, batchID(batch))

	ack, err := s.js.PublishMsg(msg, nats.Context(ctx))
	if err != nil {
		return errors.Wrap(err, "failed to publish batch to NATS")
	}
	if ack.Duplicate {
		return errors.WithStack(service.ErrAlreadyReceived)
	}

	s.logger.DebugContext(ctx, "[NATS] Batch published",
		slog.String("subject", msg.Subject),
		slog.String("stream", ack.Stream),
		slog.Uint64("seq", ack.Sequence),
	)

	return nil
}

// Close drains the connection
func (s *natsSink) Close() error {
	if s.conn == nil {
		return nil
	}

	return errors.WithStack(s.conn.Drain())
}

// batchID identifies a batch by the digest of all its event ids in order.
func batchID(batch *entity.EventBatch) string {
	if len(batch.Events) == 0 {
		return ""
	}

	h := sha256.New()
	for _, ev := range batch.Events {
		h.Write([]byte(ev.ID))
		h.Write([]byte{0})
	}

	return hex.EncodeToString(h.Sum(nil))
}
