package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// EventModel is the GORM-specific struct for the 'event_queue' table.
// Seq is the insertion order and defines FIFO delivery within a stream.
type EventModel struct {
	Seq       int64             `gorm:"column:_id;primaryKey;autoIncrement;index:idx_event_queue_stream_seq,priority:2"`
	EventID   uuid.UUID         `gorm:"column:event_id;type:uuid;not null;uniqueIndex"`
	Stream    string            `gorm:"type:varchar(32);not null;index:idx_event_queue_stream_seq,priority:1"`
	Type      string            `gorm:"type:varchar(128);not null"`
	Timestamp time.Time         `gorm:"not null"`
	Status    string            `gorm:"type:varchar(16);not null;default:NOT_POSTED"`
	Data      datatypes.JSONMap `gorm:"type:jsonb;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (EventModel) TableName() string {
	return "event_queue"
}
