// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"pushkit/internal/domain/entity"
	"pushkit/internal/domain/resource"
	"pushkit/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for event persistence.
var (
	// ErrDuplicateEvent is returned when an event with the same id is already queued.
	ErrDuplicateEvent = errors.New("event already exists")
)

// EventRepository is the durable, ordered queue of pending events.
// Implementations must be safe for concurrent use: inserts may race with a flush
// that is reading or deleting an earlier batch.
type EventRepository interface {
	// Insert appends an event and returns its id.
	Insert(ctx context.Context, event *entity.Event) (uuid.UUID, error)

	// ListPending returns up to limit events of a stream, oldest first.
	ListPending(ctx context.Context, stream resource.Kind, limit int) ([]*entity.Event, error)

	// DeleteByIDs removes exactly the given events. Unknown ids are ignored.
	DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error)

	// Count returns the number of queued events of a stream.
	Count(ctx context.Context, stream resource.Kind) (int64, error)

	// UpdateStatus sets the lifecycle flag of the given events.
	UpdateStatus(ctx context.Context, ids []uuid.UUID, status entity.EventStatus) error

	// TrimOldest drops the oldest events of a stream so that at most keep remain.
	TrimOldest(ctx context.Context, stream resource.Kind, keep int) (int64, error)
}
