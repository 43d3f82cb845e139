package postgres

import (
	"context"

	"pushkit/internal/domain/repository"
	"pushkit/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// kvStore implements the repository.KeyValueStore interface on the kv_entries table.
type kvStore struct {
	db *gorm.DB
}

// NewKVStore is the constructor for kvStore.
func NewKVStore(db *gorm.DB) repository.KeyValueStore {
	return &kvStore{db: db}
}

func (s *kvStore) Get(ctx context.Context, key string) (string, bool, error) {
	var entry model.KVEntryModel
	if err := s.db.WithContext(ctx).
		Where("key = ?", key).
		First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}

		return "", false, errors.Wrapf(err, "failed to get key %s", key)
	}

	return entry.Value, true, nil
}

func (s *kvStore) GetMany(ctx context.Context, keys ...string) (map[string]string, error) {
	out := make(map[string]string, len(keys))
	if len(keys) == 0 {
		return out, nil
	}

	var entries []model.KVEntryModel
	if err := s.db.WithContext(ctx).
		Where("key IN ?", keys).
		Find(&entries).Error; err != nil {
		return nil, errors.Wrap(err, "failed to get keys")
	}

	for _, e := range entries {
		out[e.Key] = e.Value
	}

	return out, nil
}

func (s *kvStore) Set(ctx context.Context, key, value string) error {
	return s.upsert(s.db.WithContext(ctx), map[string]string{key: value})
}

func (s *kvStore) SetMany(ctx context.Context, values map[string]string) error {
	if len(values) == 0 {
		return nil
	}

	return runInTx(ctx, s.db, func(tx *gorm.DB) error {
		return s.upsert(tx, values)
	})
}

func (s *kvStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	if err := s.db.WithContext(ctx).
		Where("key IN ?", keys).
		Delete(&model.KVEntryModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete keys")
	}

	return nil
}

func (s *kvStore) upsert(db *gorm.DB, values map[string]string) error {
	entries := make([]model.KVEntryModel, 0, len(values))
	for k, v := range values {
		entries = append(entries, model.KVEntryModel{Key: k, Value: v})
	}

	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entries).Error; err != nil {
		return errors.Wrap(err, "failed to upsert keys")
	}

	return nil
}
