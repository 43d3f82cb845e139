package backend

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"

	"pushkit/config"
	"pushkit/internal/domain/entity"
	"pushkit/internal/domain/resource"
	"pushkit/internal/domain/service"

	"github.com/pkg/errors"
)

// eventsSink posts batches to the backend events API of the active registration
type eventsSink struct {
	httpClient *http.Client
	session    service.RegistrationSession
	logger     *slog.Logger
}

// NewEventsSink creates an EventSink for the backend events API
func NewEventsSink(cfg *config.Config, session service.RegistrationSession, logger *slog.Logger) service.EventSink {
	return newEventsSink(&http.Client{Timeout: cfg.Sink.Timeout}, session, logger)
}

func newEventsSink(httpClient *http.Client, session service.RegistrationSession, logger *slog.Logger) *eventsSink {
	return &eventsSink{
		httpClient: httpClient,
		session:    session,
		logger:     logger,
	}
}

// Send posts the batch to {base}/{resource path}; 409 maps to ErrAlreadyReceived
func (s *eventsSink) Send(ctx context.Context, res resource.Resource, batch *entity.EventBatch) error {
	params := s.session.Resolve()
	if params == nil || params.ServiceBaseURL == "" {
		return errors.New("no backend configured for event delivery")
	}

	endpoint, err := url.JoinPath(params.ServiceBaseURL, res.Path)
	if err != nil {
		return errors.Wrap(err, "build events url")
	}

	body, err := json.Marshal(batch)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := newRequest(ctx, http.MethodPost, endpoint, params, body)
	if err != nil {
		return err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "send events")
	}
	defer resp.Body.Close()

	switch {
	case isSuccess(resp.StatusCode):
		return nil
	case resp.StatusCode == http.StatusConflict:
		return errors.WithStack(service.ErrAlreadyReceived)
	default:
		s.logger.WarnContext(ctx, "Events API rejected batch",
			slog.String("stream", string(res.Kind)),
			slog.Int("status", resp.StatusCode),
			slog.Int("events", len(batch.Events)),
		)

		return &service.StatusError{Operation: "send events", StatusCode: resp.StatusCode}
	}
}

// Close releases resources (no-op for HTTP client)
func (s *eventsSink) Close() error {
	return nil
}
