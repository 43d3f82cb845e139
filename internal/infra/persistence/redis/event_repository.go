package redis

import (
	"context"
	"encoding/json"
	"time"

	"pushkit/internal/domain/entity"
	"pushkit/internal/domain/repository"
	"pushkit/internal/domain/resource"
	"pushkit/internal/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Events live in one hash (id -> record) plus one sorted set per stream scored by
// a global insertion counter, so ZRANGE returns FIFO order. The status is the only
// mutable field and is kept in its own hash so records are never rewritten.
const (
	eventsDataKey   = "events:data"
	eventsStatusKey = "events:status"
	eventsSeqKey    = "events:seq"
	eventsZSetKey   = "events:stream:"
)

// insertScript writes a record only when the id is new. It returns the assigned
// sequence, or 0 for a duplicate.
var insertScript = redis.NewScript(`
if redis.call("HEXISTS", KEYS[1], ARGV[1]) == 1 then
	return 0
end
local seq = redis.call("INCR", KEYS[2])
redis.call("HSET", KEYS[1], ARGV[1], ARGV[2])
redis.call("HSET", KEYS[4], ARGV[1], ARGV[3])
redis.call("ZADD", KEYS[3], seq, ARGV[1])
return seq
`)

// updateStatusScript sets ARGV[1] as the status of every id in ARGV[2:] that still
// has a record, and returns how many were updated.
var updateStatusScript = redis.NewScript(`
local n = 0
for i = 2, #ARGV do
	if redis.call("HEXISTS", KEYS[1], ARGV[i]) == 1 then
		redis.call("HSET", KEYS[2], ARGV[i], ARGV[1])
		n = n + 1
	end
end
return n
`)

type eventRecord struct {
	ID        uuid.UUID      `json:"id"`
	Seq       int64          `json:"-"`
	Stream    string         `json:"stream"`
	Type      string         `json:"type"`
	Timestamp time.Time      `json:"timestamp"`
	Status    string         `json:"status"`
	Data      map[string]any `json:"data"`
}

type eventRepository struct {
	client *redis.Client
	prefix string
}

// NewEventRepository creates an event queue stored under prefix
func NewEventRepository(client *redis.Client, prefix string) repository.EventRepository {
	if prefix == "" {
		prefix = defaultKeyPrefix
	}

	return &eventRepository{client: client, prefix: prefix}
}

func (r *eventRepository) dataKey() string { return r.prefix + eventsDataKey }

func (r *eventRepository) statusKey() string { return r.prefix + eventsStatusKey }

func (r *eventRepository) streamKey(stream resource.Kind) string {
	return r.prefix + eventsZSetKey + string(stream)
}

func (r *eventRepository) Insert(ctx context.Context, event *entity.Event) (uuid.UUID, error) {
	raw, err := json.Marshal(fromEventDomain(event))
	if err != nil {
		return uuid.Nil, errors.WithStack(err)
	}

	id := event.ID.String()
	seq, err := insertScript.Run(ctx, r.client,
		[]string{r.dataKey(), r.prefix + eventsSeqKey, r.streamKey(event.Stream), r.statusKey()},
		id, string(raw), string(event.Status),
	).Int64()
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to insert event")
	}
	if seq == 0 {
		return uuid.Nil, repository.ErrDuplicateEvent
	}
	event.Seq = seq

	return event.ID, nil
}

func (r *eventRepository) ListPending(ctx context.Context, stream resource.Kind, limit int) ([]*entity.Event, error) {
	if limit <= 0 {
		return []*entity.Event{}, nil
	}

	entries, err := r.client.ZRangeWithScores(ctx, r.streamKey(stream), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pending events")
	}

	ids := make([]string, 0, len(entries))
	seqs := make(map[string]int64, len(entries))
	for _, z := range entries {
		id, _ := z.Member.(string)
		ids = append(ids, id)
		seqs[id] = int64(z.Score)
	}

	records, err := r.load(ctx, ids)
	if err != nil {
		return nil, err
	}

	events := make([]*entity.Event, 0, len(records))
	for _, rec := range records {
		rec.Seq = seqs[rec.ID.String()]
		events = append(events, toEventDomain(rec))
	}

	return events, nil
}

func (r *eventRepository) DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	members := make([]string, 0, len(ids))
	for _, id := range ids {
		members = append(members, id.String())
	}

	return r.remove(ctx, members)
}

func (r *eventRepository) Count(ctx context.Context, stream resource.Kind) (int64, error) {
	count, err := r.client.ZCard(ctx, r.streamKey(stream)).Result()
	if err != nil {
		return 0, errors.Wrap(err, "failed to count events")
	}

	return count, nil
}

func (r *eventRepository) UpdateStatus(ctx context.Context, ids []uuid.UUID, status entity.EventStatus) error {
	if len(ids) == 0 {
		return nil
	}

	args := make([]any, 0, len(ids)+1)
	args = append(args, string(status))
	for _, id := range ids {
		args = append(args, id.String())
	}

	if err := updateStatusScript.Run(ctx, r.client, []string{r.dataKey(), r.statusKey()}, args...).Err(); err != nil {
		return errors.Wrap(err, "failed to update event status")
	}

	return nil
}

func (r *eventRepository) TrimOldest(ctx context.Context, stream resource.Kind, keep int) (int64, error) {
	if keep < 0 {
		keep = 0
	}

	count, err := r.Count(ctx, stream)
	if err != nil {
		return 0, err
	}
	excess := count - int64(keep)
	if excess <= 0 {
		return 0, nil
	}

	oldest, err := r.client.ZRange(ctx, r.streamKey(stream), 0, excess-1).Result()
	if err != nil {
		return 0, errors.Wrap(err, "failed to read oldest events")
	}

	return r.remove(ctx, oldest)
}

// load fetches records in the order of ids, skipping ids without data.
func (r *eventRepository) load(ctx context.Context, ids []string) ([]*eventRecord, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var data, statuses *redis.SliceCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		data = pipe.HMGet(ctx, r.dataKey(), ids...)
		statuses = pipe.HMGet(ctx, r.statusKey(), ids...)

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load events")
	}

	values := data.Val()
	states := statuses.Val()
	records := make([]*eventRecord, 0, len(values))
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			continue
		}
		var rec eventRecord
		if err := json.Unmarshal([]byte(raw), &rec); err != nil {
			return nil, errors.Wrap(err, "failed to decode event")
		}
		if status, ok := states[i].(string); ok && status != "" {
			rec.Status = status
		}
		records = append(records, &rec)
	}

	return records, nil
}

// remove deletes records and their stream entries in one MULTI/EXEC block.
func (r *eventRepository) remove(ctx context.Context, ids []string) (int64, error) {
	var deleted *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, res := range resource.All() {
			pipe.ZRem(ctx, r.streamKey(res.Kind), toAny(ids)...)
		}
		deleted = pipe.HDel(ctx, r.dataKey(), ids...)
		pipe.HDel(ctx, r.statusKey(), ids...)

		return nil
	})
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete events")
	}

	return deleted.Val(), nil
}

func toAny(ids []string) []any {
	out := make([]any, len(ids))
	for i, id := range ids {
		out[i] = id
	}

	return out
}

func fromEventDomain(event *entity.Event) *eventRecord {
	return &eventRecord{
		ID:        event.ID,
		Stream:    string(event.Stream),
		Type:      event.Type,
		Timestamp: event.Timestamp.UTC(),
		Status:    string(event.Status),
		Data:      event.Payload,
	}
}

func toEventDomain(rec *eventRecord) *entity.Event {
	data := rec.Data
	if data == nil {
		data = map[string]any{}
	}

	return &entity.Event{
		ID:        rec.ID,
		Seq:       rec.Seq,
		Stream:    resource.Kind(rec.Stream),
		Type:      rec.Type,
		Timestamp: rec.Timestamp.UTC(),
		Status:    entity.EventStatus(rec.Status),
		Payload:   data,
	}
}
