package usecase

import (
	"context"

	"pushkit/internal/domain/entity"
	"pushkit/internal/domain/resource"

	"github.com/google/uuid"
)

// FlushResult summarizes one flush of a stream
type FlushResult struct {
	Kind      resource.Kind `json:"kind"`
	Sent      int           `json:"sent"`
	Deleted   int64         `json:"deleted"`
	Remaining int64         `json:"remaining"`
	// Coalesced is set for callers that joined a flush already in flight
	Coalesced bool `json:"coalesced"`
}

// EventRecorder is the narrow enqueue side used by event producers
type EventRecorder interface {
	Enqueue(ctx context.Context, event *entity.Event) (uuid.UUID, error)
}

// DispatchUsecase defines the durable event queue and its flush protocol
type DispatchUsecase interface {
	EventRecorder

	// Flush sends the oldest pending batch of a stream
	Flush(ctx context.Context, kind resource.Kind) (*FlushResult, error)

	// FlushAll flushes every stream once and returns the per-stream results
	FlushAll(ctx context.Context) ([]*FlushResult, error)

	// Pending returns the number of queued events of a stream
	Pending(ctx context.Context, kind resource.Kind) (int64, error)

	SetAnalyticsEnabled(ctx context.Context, enabled bool) error
	AnalyticsEnabled(ctx context.Context) (bool, error)
}
