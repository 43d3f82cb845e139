// Package memory provides in-process implementations of the repositories.
package memory

import (
	"context"
	"maps"
	"slices"
	"sync"

	"pushkit/internal/domain/entity"
	"pushkit/internal/domain/repository"
	"pushkit/internal/domain/resource"

	"github.com/google/uuid"
)

type eventRepository struct {
	mu     sync.RWMutex
	seq    int64
	events []*entity.Event
	byID   map[uuid.UUID]*entity.Event
}

// NewEventRepository creates an in-memory event queue
func NewEventRepository() repository.EventRepository {
	return &eventRepository{
		byID: make(map[uuid.UUID]*entity.Event),
	}
}

func (r *eventRepository) Insert(_ context.Context, event *entity.Event) (uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[event.ID]; ok {
		return uuid.Nil, repository.ErrDuplicateEvent
	}

	r.seq++
	stored := copyEvent(event)
	stored.Seq = r.seq
	event.Seq = r.seq

	r.events = append(r.events, stored)
	r.byID[stored.ID] = stored

	return stored.ID, nil
}

func (r *eventRepository) ListPending(_ context.Context, stream resource.Kind, limit int) ([]*entity.Event, error) {
	if limit <= 0 {
		return []*entity.Event{}, nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.Event, 0, min(limit, len(r.events)))
	for _, evt := range r.events {
		if len(out) >= limit {
			break
		}
		if evt.Stream == stream {
			out = append(out, copyEvent(evt))
		}
	}

	return out, nil
}

func (r *eventRepository) DeleteByIDs(_ context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	drop := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := r.byID[id]; ok {
			drop[id] = struct{}{}
			delete(r.byID, id)
		}
	}
	if len(drop) == 0 {
		return 0, nil
	}

	r.events = slices.DeleteFunc(r.events, func(evt *entity.Event) bool {
		_, ok := drop[evt.ID]

		return ok
	})

	return int64(len(drop)), nil
}

func (r *eventRepository) Count(_ context.Context, stream resource.Kind) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var n int64
	for _, evt := range r.events {
		if evt.Stream == stream {
			n++
		}
	}

	return n, nil
}

func (r *eventRepository) UpdateStatus(_ context.Context, ids []uuid.UUID, status entity.EventStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range ids {
		if evt, ok := r.byID[id]; ok {
			evt.Status = status
		}
	}

	return nil
}

func (r *eventRepository) TrimOldest(_ context.Context, stream resource.Kind, keep int) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var total int
	for _, evt := range r.events {
		if evt.Stream == stream {
			total++
		}
	}

	excess := total - keep
	if excess <= 0 {
		return 0, nil
	}

	dropped := 0
	r.events = slices.DeleteFunc(r.events, func(evt *entity.Event) bool {
		if dropped >= excess || evt.Stream != stream {
			return false
		}
		dropped++
		delete(r.byID, evt.ID)

		return true
	})

	return int64(dropped), nil
}

func copyEvent(evt *entity.Event) *entity.Event {
	cp := *evt
	cp.Payload = maps.Clone(evt.Payload)

	return &cp
}
