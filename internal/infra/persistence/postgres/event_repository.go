package postgres

import (
	"context"

	"pushkit/internal/domain/entity"
	"pushkit/internal/domain/repository"
	"pushkit/internal/domain/resource"
	"pushkit/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// eventRepository implements the repository.EventRepository interface.
type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository is the constructor for eventRepository.
func NewEventRepository(db *gorm.DB) repository.EventRepository {
	return &eventRepository{
		db: db,
	}
}

func (repo *eventRepository) Insert(ctx context.Context, event *entity.Event) (uuid.UUID, error) {
	eventM := fromEventDomain(event)

	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return uuid.Nil, repository.ErrDuplicateEvent
		}

		return uuid.Nil, errors.Wrap(err, "failed to insert event")
	}
	event.Seq = eventM.Seq

	return eventM.EventID, nil
}

func (repo *eventRepository) ListPending(ctx context.Context, stream resource.Kind, limit int) ([]*entity.Event, error) {
	if limit <= 0 {
		return []*entity.Event{}, nil
	}

	var eventModels []*model.EventModel
	if err := repo.db.WithContext(ctx).
		Where("stream = ?", string(stream)).
		Order("_id ASC").
		Limit(limit).
		Find(&eventModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list pending events")
	}

	events := make([]*entity.Event, 0, len(eventModels))
	for _, m := range eventModels {
		events = append(events, toEventDomain(m))
	}

	return events, nil
}

func (repo *eventRepository) DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	result := repo.db.WithContext(ctx).
		Where("event_id IN ?", ids).
		Delete(&model.EventModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete events")
	}

	return result.RowsAffected, nil
}

func (repo *eventRepository) Count(ctx context.Context, stream resource.Kind) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.EventModel{}).
		Where("stream = ?", string(stream)).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count events")
	}

	return count, nil
}

func (repo *eventRepository) UpdateStatus(ctx context.Context, ids []uuid.UUID, status entity.EventStatus) error {
	if len(ids) == 0 {
		return nil
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.EventModel{}).
		Where("event_id IN ?", ids).
		Update("status", string(status)).Error; err != nil {
		return errors.Wrap(err, "failed to update event status")
	}

	return nil
}

func (repo *eventRepository) TrimOldest(ctx context.Context, stream resource.Kind, keep int) (int64, error) {
	if keep < 0 {
		keep = 0
	}

	var evicted int64
	err := runInTx(ctx, repo.db, func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.EventModel{}).
			Where("stream = ?", string(stream)).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to count events")
		}

		excess := count - int64(keep)
		if excess <= 0 {
			return nil
		}

		oldest := tx.Model(&model.EventModel{}).
			Select("_id").
			Where("stream = ?", string(stream)).
			Order("_id ASC").
			Limit(int(excess))

		result := tx.Where("_id IN (?)", oldest).Delete(&model.EventModel{})
		if result.Error != nil {
			return errors.Wrap(result.Error, "failed to trim events")
		}
		evicted = result.RowsAffected

		return nil
	})
	if err != nil {
		return 0, err
	}

	return evicted, nil
}

func fromEventDomain(event *entity.Event) *model.EventModel {
	data := datatypes.JSONMap{}
	for k, v := range event.Payload {
		data[k] = v
	}

	return &model.EventModel{
		EventID:   event.ID,
		Stream:    string(event.Stream),
		Type:      event.Type,
		Timestamp: event.Timestamp.UTC(),
		Status:    string(event.Status),
		Data:      data,
	}
}

func toEventDomain(m *model.EventModel) *entity.Event {
	payload := make(map[string]any, len(m.Data))
	for k, v := range m.Data {
		payload[k] = v
	}

	return &entity.Event{
		ID:        m.EventID,
		Seq:       m.Seq,
		Stream:    resource.Kind(m.Stream),
		Type:      m.Type,
		Timestamp: m.Timestamp.UTC(),
		Status:    entity.EventStatus(m.Status),
		Payload:   payload,
	}
}
