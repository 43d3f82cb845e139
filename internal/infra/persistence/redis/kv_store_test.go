package redis

import (
	"context"
	"os"
	"testing"

	"pushkit/internal/domain/entity"
	"pushkit/internal/domain/repository"
	"pushkit/internal/domain/resource"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// getTestRedisClient connects to REDIS_URL or skips the test
func getTestRedisClient(t *testing.T) *redis.Client {
	t.Helper()

	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("REDIS_URL not set")
	}

	opts, err := redis.ParseURL(url)
	require.NoError(t, err)

	client := redis.NewClient(opts)
	require.NoError(t, client.Ping(context.Background()).Err())
	t.Cleanup(func() { _ = client.Close() })

	return client
}

func TestKVStore_RoundTrip(t *testing.T) {
	client := getTestRedisClient(t)
	prefix := "pushkit-test:" + uuid.NewString() + ":"
	store := NewKVStore(client, prefix)
	ctx := context.Background()

	t.Cleanup(func() {
		keys, _ := client.Keys(ctx, prefix+"*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
	})

	_, ok, err := store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, "a", "1"))
	require.NoError(t, store.SetMany(ctx, map[string]string{"b": "2", "c": "3"}))

	for k, want := range map[string]string{"a": "1", "b": "2", "c": "3"} {
		v, ok, err := store.Get(ctx, k)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, want, v)
	}

	got, err := store.GetMany(ctx, "a", "c", "never-set")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"a": "1", "c": "3"}, got)

	raw, err := client.Get(ctx, prefix+"b").Result()
	require.NoError(t, err)
	assert.Equal(t, "2", raw)

	require.NoError(t, store.Delete(ctx, "a", "b", "never-set"))
	_, ok, err = store.Get(ctx, "a")
	require.NoError(t, err)
	assert.False(t, ok)

	v, ok, err := store.Get(ctx, "c")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "3", v)
}

func TestNewKVStore_DefaultPrefix(t *testing.T) {
	store := NewKVStore(nil, "").(*kvStore)

	assert.Equal(t, "pushkit:flags.analytics_enabled", store.key("flags.analytics_enabled"))
}

func TestEventRepository_FIFOAndDelete(t *testing.T) {
	client := getTestRedisClient(t)
	prefix := "pushkit-test:" + uuid.NewString() + ":"
	repo := NewEventRepository(client, prefix)
	ctx := context.Background()

	t.Cleanup(func() {
		keys, _ := client.Keys(ctx, prefix+"*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
	})

	var ids []uuid.UUID
	for i := 0; i < 3; i++ {
		event := entity.NewEvent(resource.KindAnalytics, "screen_view", map[string]any{"n": float64(i)})
		id, err := repo.Insert(ctx, event)
		require.NoError(t, err)
		assert.Positive(t, event.Seq)
		ids = append(ids, id)
	}

	dup := entity.NewEvent(resource.KindAnalytics, "screen_view", nil)
	dup.ID = ids[0]
	_, err := repo.Insert(ctx, dup)
	assert.ErrorIs(t, err, repository.ErrDuplicateEvent)

	pending, err := repo.ListPending(ctx, resource.KindAnalytics, 2)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, ids[0], pending[0].ID)
	assert.Equal(t, ids[1], pending[1].ID)
	assert.Equal(t, float64(0), pending[0].Payload["n"])
	assert.Less(t, pending[0].Seq, pending[1].Seq)

	require.NoError(t, repo.UpdateStatus(ctx, ids[:1], entity.EventStatusPostingError))
	pending, err = repo.ListPending(ctx, resource.KindAnalytics, 1)
	require.NoError(t, err)
	assert.Equal(t, entity.EventStatusPostingError, pending[0].Status)

	deleted, err := repo.DeleteByIDs(ctx, []uuid.UUID{ids[1], uuid.New()})
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	trimmed, err := repo.TrimOldest(ctx, resource.KindAnalytics, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), trimmed)

	pending, err = repo.ListPending(ctx, resource.KindAnalytics, 10)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, ids[2], pending[0].ID)

	count, err := repo.Count(ctx, resource.KindReceipts)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestEventRepository_UpdateStatusSkipsDeletedEvents(t *testing.T) {
	client := getTestRedisClient(t)
	prefix := "pushkit-test:" + uuid.NewString() + ":"
	repo := NewEventRepository(client, prefix)
	ctx := context.Background()

	t.Cleanup(func() {
		keys, _ := client.Keys(ctx, prefix+"*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
	})

	kept := entity.NewEvent(resource.KindReceipts, "push_received", nil)
	gone := entity.NewEvent(resource.KindReceipts, "push_received", nil)
	_, err := repo.Insert(ctx, kept)
	require.NoError(t, err)
	_, err = repo.Insert(ctx, gone)
	require.NoError(t, err)

	_, err = repo.DeleteByIDs(ctx, []uuid.UUID{gone.ID})
	require.NoError(t, err)

	require.NoError(t, repo.UpdateStatus(ctx, []uuid.UUID{kept.ID, gone.ID}, entity.EventStatusPostingError))

	exists, err := client.HExists(ctx, prefix+eventsDataKey, gone.ID.String()).Result()
	require.NoError(t, err)
	assert.False(t, exists)
	exists, err = client.HExists(ctx, prefix+eventsStatusKey, gone.ID.String()).Result()
	require.NoError(t, err)
	assert.False(t, exists)

	pending, err := repo.ListPending(ctx, resource.KindReceipts, 10)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, entity.EventStatusPostingError, pending[0].Status)
}
