package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"pushkit/config"
	"pushkit/internal/domain/entity"
	"pushkit/internal/domain/resource"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestIsUniqueConstraintViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "gorm duplicated key", err: gorm.ErrDuplicatedKey, want: true},
		{name: "wrapped pg unique violation", err: errors.Wrap(&pgconn.PgError{Code: pgUniqueViolation}, "insert"), want: true},
		{name: "pg not null violation", err: &pgconn.PgError{Code: "23502"}, want: false},
		{name: "other error", err: errors.New("connection reset"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isUniqueConstraintViolation(tt.err))
		})
	}
}

func TestEventModelMapping(t *testing.T) {
	event := entity.NewEvent(resource.KindReceipts, entity.EventTypePushReceived, map[string]any{"message_id": "m-1"})
	event.Timestamp = time.Date(2026, 1, 2, 3, 4, 5, 0, time.FixedZone("UTC+8", 8*3600))

	m := fromEventDomain(event)
	m.Seq = 42

	assert.Equal(t, event.ID, m.EventID)
	assert.Equal(t, "receipts", m.Stream)
	assert.Equal(t, time.UTC, m.Timestamp.Location())

	back := toEventDomain(m)
	assert.Equal(t, int64(42), back.Seq)
	assert.Equal(t, event.ID, back.ID)
	assert.Equal(t, event.Type, back.Type)
	assert.Equal(t, entity.EventStatusNotPosted, back.Status)
	assert.True(t, event.Timestamp.Equal(back.Timestamp))
	assert.Equal(t, "m-1", back.Payload["message_id"])

	// the model holds its own copy of the payload
	event.Payload["message_id"] = "changed"
	assert.Equal(t, "m-1", m.Data["message_id"])
}

func TestGormSlogLogger(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	l := newGormSlogLogger(base, &config.Config{})
	ctx := context.Background()
	sqlFn := func() (string, int64) { return "SELECT 1", 1 }

	l.Trace(ctx, time.Now(), sqlFn, nil)
	assert.Empty(t, buf.String(), "fast queries are not logged at warn level")

	l.Trace(ctx, time.Now(), sqlFn, gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String(), "record not found is ignored")

	l.Trace(ctx, time.Now(), sqlFn, errors.New("boom"))
	require.Contains(t, buf.String(), "GORM query failed")
	buf.Reset()

	l.Trace(ctx, time.Now().Add(-time.Second), sqlFn, nil)
	require.Contains(t, buf.String(), "GORM slow query")
	buf.Reset()

	l.LogMode(logger.Info).Trace(ctx, time.Now(), sqlFn, nil)
	assert.Contains(t, buf.String(), "GORM query")
}
