// Package entity contains the core business objects of the agent.
package entity

import (
	"time"

	"pushkit/internal/domain/resource"

	"github.com/google/uuid"
)

// EventStatus is the delivery lifecycle flag of a queued event.
type EventStatus string

const (
	EventStatusNotPosted    EventStatus = "NOT_POSTED"
	EventStatusPosted       EventStatus = "POSTED"
	EventStatusPostingError EventStatus = "POSTING_ERROR"
)

// Well-known event types.
const (
	EventTypeDeviceRegistered = "device_registered"
	EventTypePushReceived     = "push_received"
)

// Event is a locally queued record waiting to be delivered to the collector.
// Only Status may change once the event is persisted.
type Event struct {
	ID        uuid.UUID      `json:"id"`        // Unique identifier, assigned at creation.
	Seq       int64          `json:"-"`         // Local insertion sequence, defines FIFO order.
	Stream    resource.Kind  `json:"stream"`    // Resource kind the event is delivered to.
	Type      string         `json:"type"`      // Event type tag, e.g. "push_received".
	Timestamp time.Time      `json:"timestamp"` // Creation time in UTC.
	Status    EventStatus    `json:"status"`    // Delivery lifecycle flag.
	Payload   map[string]any `json:"data"`      // Opaque key/value payload.
}

// NewEvent creates an event with a fresh id and the current UTC time.
func NewEvent(stream resource.Kind, eventType string, payload map[string]any) *Event {
	if payload == nil {
		payload = map[string]any{}
	}

	return &Event{
		ID:        uuid.New(),
		Stream:    stream,
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Status:    EventStatusNotPosted,
		Payload:   payload,
	}
}

// EventBatch is the body submitted to the collector for one flush.
type EventBatch struct {
	DeviceID string      `json:"device_id,omitempty"`
	Events   []BatchItem `json:"events"`
}

// BatchItem is the wire form of a single event.
type BatchItem struct {
	ID        string         `json:"id"`
	Type      string         `json:"type"`
	Timestamp time.Time      `json:"timestamp"`
	Data      map[string]any `json:"data"`
}

// NewEventBatch builds a batch preserving the order of events.
func NewEventBatch(deviceID string, events []*Event) *EventBatch {
	items := make([]BatchItem, 0, len(events))
	for _, evt := range events {
		data := evt.Payload
		if data == nil {
			data = map[string]any{}
		}
		items = append(items, BatchItem{
			ID:        evt.ID.String(),
			Type:      evt.Type,
			Timestamp: evt.Timestamp.UTC(),
			Data:      data,
		})
	}

	return &EventBatch{
		DeviceID: deviceID,
		Events:   items,
	}
}

// EventIDs collects the ids of events in order.
func EventIDs(events []*Event) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(events))
	for _, evt := range events {
		ids = append(ids, evt.ID)
	}

	return ids
}
