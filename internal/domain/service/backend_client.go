package service

import (
	"context"
	"fmt"

	"pushkit/internal/domain/entity"
	"pushkit/internal/domain/resource"
	"pushkit/internal/errors"
)

var (
	// ErrDeviceNotRegistered is returned when the backend does not know the device (HTTP 404 on unregister).
	ErrDeviceNotRegistered = errors.New("device not registered on backend")
	// ErrAlreadyReceived is returned when the collector reports the batch as already processed.
	ErrAlreadyReceived = errors.New("event batch already received")
)

// StatusError reports a non-2xx answer from the backend.
type StatusError struct {
	Operation  string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d", e.Operation, e.StatusCode)
}

// RegistrationClient talks to the backend registration API.
type RegistrationClient interface {
	// Register creates or refreshes the backend record and returns the backend device id.
	Register(ctx context.Context, params *entity.RegistrationParameters, token string) (string, error)

	// Unregister deletes the backend record. Returns ErrDeviceNotRegistered on 404.
	Unregister(ctx context.Context, params *entity.RegistrationParameters, deviceID string) error
}

// EventSink delivers event batches to the collector.
type EventSink interface {
	// Send submits one batch. A nil error or ErrAlreadyReceived acknowledges every event in it.
	Send(ctx context.Context, res resource.Resource, batch *entity.EventBatch) error

	// Close releases any resources held by the sink
	Close() error
}

// FlushTrigger is the scheduling signal raised when new events are queued.
type FlushTrigger interface {
	// Enable arms a future flush unless one is already pending.
	Enable() bool
}

// RegistrationSession shares the parameters of the active registration with the backend clients.
type RegistrationSession interface {
	// Current returns the parameters of the last successful registration, or nil.
	Current() *entity.RegistrationParameters

	// Resolve returns Current, falling back to the configured defaults.
	Resolve() *entity.RegistrationParameters

	Set(params *entity.RegistrationParameters)
	Clear()
}
