package redis

import (
	"context"

	"pushkit/internal/domain/repository"
	"pushkit/internal/errors"

	"github.com/redis/go-redis/v9"
)

const defaultKeyPrefix = "pushkit:"

type kvStore struct {
	client *redis.Client
	prefix string
}

// NewKVStore creates a key-value store keeping every key under prefix
func NewKVStore(client *redis.Client, prefix string) repository.KeyValueStore {
	if prefix == "" {
		prefix = defaultKeyPrefix
	}

	return &kvStore{client: client, prefix: prefix}
}

func (s *kvStore) key(k string) string {
	return s.prefix + k
}

func (s *kvStore) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := s.client.Get(ctx, s.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrapf(err, "failed to get %s", key)
	}

	return v, true, nil
}

// GetMany reads all keys with a single MGET
func (s *kvStore) GetMany(ctx context.Context, keys ...string) (map[string]string, error) {
	out := make(map[string]string, len(keys))
	if len(keys) == 0 {
		return out, nil
	}

	prefixed := make([]string, 0, len(keys))
	for _, k := range keys {
		prefixed = append(prefixed, s.key(k))
	}

	values, err := s.client.MGet(ctx, prefixed...).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get keys")
	}

	for i, v := range values {
		if str, ok := v.(string); ok {
			out[keys[i]] = str
		}
	}

	return out, nil
}

func (s *kvStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, s.key(key), value, 0).Err(); err != nil {
		return errors.Wrapf(err, "failed to set %s", key)
	}

	return nil
}

// SetMany writes all keys in one MULTI/EXEC block
func (s *kvStore) SetMany(ctx context.Context, values map[string]string) error {
	if len(values) == 0 {
		return nil
	}

	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for k, v := range values {
			pipe.Set(ctx, s.key(k), v, 0)
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to set keys")
	}

	return nil
}

func (s *kvStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	prefixed := make([]string, 0, len(keys))
	for _, k := range keys {
		prefixed = append(prefixed, s.key(k))
	}

	if err := s.client.Del(ctx, prefixed...).Err(); err != nil {
		return errors.Wrap(err, "failed to delete keys")
	}

	return nil
}
