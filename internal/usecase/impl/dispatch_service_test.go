package impl

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"pushkit/config"
	"pushkit/internal/domain/entity"
	domainerrors "pushkit/internal/domain/errors"
	"pushkit/internal/domain/repository"
	"pushkit/internal/domain/resource"
	"pushkit/internal/domain/service"
	"pushkit/internal/infra/persistence/kvstate"
	"pushkit/internal/infra/persistence/memory"
	mockRepo "pushkit/internal/mocks/repository"
	mockService "pushkit/internal/mocks/service"
	"pushkit/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// dispatchServiceFixtures holds all test dependencies for dispatch service tests.
type dispatchServiceFixtures struct {
	service   usecase.DispatchUsecase
	eventRepo repository.EventRepository
	stateRepo repository.RegistrationStateRepository
	sink      *mockService.MockEventSink
	trigger   *mockService.MockFlushTrigger
}

func createTestDispatchService(t *testing.T, cfg *config.Config) dispatchServiceFixtures {
	return createTestDispatchServiceWithEvents(t, cfg, memory.NewEventRepository())
}

func createTestDispatchServiceWithEvents(t *testing.T, cfg *config.Config, eventRepo repository.EventRepository) dispatchServiceFixtures {
	kv := memory.NewKVStore()
	stateRepo := kvstate.NewStateRepository(kv)
	sink := mockService.NewMockEventSink(t)
	trigger := mockService.NewMockFlushTrigger(t)

	svc := NewDispatchService(DispatchServiceParams{
		Config:    cfg,
		Logger:    discardLogger(),
		EventRepo: eventRepo,
		StateRepo: stateRepo,
		FlagRepo:  kvstate.NewFlagRepository(kv),
		Sink:      sink,
		Trigger:   trigger,
	})

	return dispatchServiceFixtures{
		service:   svc,
		eventRepo: eventRepo,
		stateRepo: stateRepo,
		sink:      sink,
		trigger:   trigger,
	}
}

func enqueueN(t *testing.T, fx dispatchServiceFixtures, n int) []*entity.Event {
	t.Helper()

	events := make([]*entity.Event, 0, n)
	for i := range n {
		evt := entity.NewEvent(resource.KindAnalytics, fmt.Sprintf("event-%d", i), map[string]any{"n": i})
		_, err := fx.service.Enqueue(context.Background(), evt)
		require.NoError(t, err)
		events = append(events, evt)
	}

	return events
}

func batchIDs(batch *entity.EventBatch) []string {
	ids := make([]string, 0, len(batch.Events))
	for _, item := range batch.Events {
		ids = append(ids, item.ID)
	}

	return ids
}

func eventIDStrings(events []*entity.Event) []string {
	ids := make([]string, 0, len(events))
	for _, evt := range events {
		ids = append(ids, evt.ID.String())
	}

	return ids
}

func TestDispatchService_Enqueue_SignalsTrigger(t *testing.T) {
	fx := createTestDispatchService(t, testConfig())
	ctx := context.Background()

	fx.trigger.EXPECT().Enable().Return(true).Once()
	fx.trigger.EXPECT().Enable().Return(false).Once()

	evt := entity.NewEvent(resource.KindAnalytics, entity.EventTypePushReceived, nil)
	id, err := fx.service.Enqueue(ctx, evt)
	require.NoError(t, err)
	assert.Equal(t, evt.ID, id)

	_, err = fx.service.Enqueue(ctx, entity.NewEvent(resource.KindReceipts, entity.EventTypePushReceived, nil))
	require.NoError(t, err)

	pending, err := fx.service.Pending(ctx, resource.KindAnalytics)
	require.NoError(t, err)
	assert.Equal(t, int64(1), pending)
}

func TestDispatchService_Enqueue_Validation(t *testing.T) {
	tests := []struct {
		name    string
		event   *entity.Event
		wantErr error
	}{
		{name: "nil event", event: nil, wantErr: domainerrors.ErrInvalidEvent},
		{name: "nil id", event: &entity.Event{Type: "t"}, wantErr: domainerrors.ErrInvalidEvent},
		{name: "empty type", event: &entity.Event{ID: uuid.New(), Type: "  "}, wantErr: domainerrors.ErrInvalidEvent},
		{name: "unknown stream", event: &entity.Event{ID: uuid.New(), Type: "t", Stream: "billing"}, wantErr: domainerrors.ErrUnknownResource},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestDispatchService(t, testConfig())

			_, err := fx.service.Enqueue(context.Background(), tt.event)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDispatchService_Enqueue_Defaults(t *testing.T) {
	fx := createTestDispatchService(t, testConfig())
	ctx := context.Background()
	fx.trigger.EXPECT().Enable().Return(true)

	evt := &entity.Event{ID: uuid.New(), Type: "custom"}
	_, err := fx.service.Enqueue(ctx, evt)
	require.NoError(t, err)

	stored, err := fx.eventRepo.ListPending(ctx, resource.KindAnalytics, 1)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, entity.EventStatusNotPosted, stored[0].Status)
	assert.False(t, stored[0].Timestamp.IsZero())
	assert.Equal(t, time.UTC, stored[0].Timestamp.Location())
	assert.NotNil(t, stored[0].Payload)
}

func TestDispatchService_Enqueue_Duplicate(t *testing.T) {
	fx := createTestDispatchService(t, testConfig())
	ctx := context.Background()
	fx.trigger.EXPECT().Enable().Return(true).Once()

	evt := entity.NewEvent(resource.KindAnalytics, "t", nil)
	_, err := fx.service.Enqueue(ctx, evt)
	require.NoError(t, err)

	_, err = fx.service.Enqueue(ctx, evt)
	assert.ErrorIs(t, err, domainerrors.ErrEventAlreadyQueued)
}

func TestDispatchService_Enqueue_AnalyticsDisabled(t *testing.T) {
	fx := createTestDispatchService(t, testConfig())
	ctx := context.Background()

	require.NoError(t, fx.service.SetAnalyticsEnabled(ctx, false))
	enabled, err := fx.service.AnalyticsEnabled(ctx)
	require.NoError(t, err)
	assert.False(t, enabled)

	_, err = fx.service.Enqueue(ctx, entity.NewEvent(resource.KindAnalytics, "t", nil))
	assert.ErrorIs(t, err, domainerrors.ErrAnalyticsDisabled)

	// Receipts are not gated by the analytics flag.
	fx.trigger.EXPECT().Enable().Return(true).Once()
	_, err = fx.service.Enqueue(ctx, entity.NewEvent(resource.KindReceipts, entity.EventTypePushReceived, nil))
	require.NoError(t, err)
}

func TestDispatchService_Enqueue_CapDropsOldest(t *testing.T) {
	cfg := testConfig()
	cfg.Analytics.MaxPending = 3
	fx := createTestDispatchService(t, cfg)
	ctx := context.Background()
	fx.trigger.EXPECT().Enable().Return(true)

	events := enqueueN(t, fx, 5)

	left, err := fx.eventRepo.ListPending(ctx, resource.KindAnalytics, 10)
	require.NoError(t, err)
	assert.Equal(t, eventIDStrings(events[2:]), eventIDStrings(left))
}

func TestDispatchService_Flush_EmptyMakesNoNetworkCall(t *testing.T) {
	fx := createTestDispatchService(t, testConfig())

	result, err := fx.service.Flush(context.Background(), resource.KindAnalytics)
	require.NoError(t, err)
	assert.Zero(t, result.Sent)
	assert.Zero(t, result.Remaining)
	fx.sink.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

func TestDispatchService_Flush_SendsInOrderAndEmptiesStore(t *testing.T) {
	fx := createTestDispatchService(t, testConfig())
	ctx := context.Background()
	fx.trigger.EXPECT().Enable().Return(true)
	require.NoError(t, fx.stateRepo.Save(ctx, &entity.RegistrationState{
		MessagingToken:  "token-1",
		BackendDeviceID: "device-1",
	}))

	e1 := entity.NewEvent(resource.KindAnalytics, entity.EventTypeDeviceRegistered, nil)
	e2 := entity.NewEvent(resource.KindAnalytics, entity.EventTypePushReceived, map[string]any{"message_id": "m1"})
	_, err := fx.service.Enqueue(ctx, e1)
	require.NoError(t, err)
	_, err = fx.service.Enqueue(ctx, e2)
	require.NoError(t, err)

	analytics, err := resource.Lookup(resource.KindAnalytics)
	require.NoError(t, err)

	fx.sink.EXPECT().Send(ctx, analytics, mock.AnythingOfType("*entity.EventBatch")).
		Run(func(_ context.Context, _ resource.Resource, batch *entity.EventBatch) {
			assert.Equal(t, "device-1", batch.DeviceID)
			assert.Equal(t, []string{e1.ID.String(), e2.ID.String()}, batchIDs(batch))
			assert.Equal(t, entity.EventTypeDeviceRegistered, batch.Events[0].Type)
			assert.Equal(t, "m1", batch.Events[1].Data["message_id"])
		}).
		Return(nil).Once()

	result, err := fx.service.Flush(ctx, resource.KindAnalytics)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Sent)
	assert.Equal(t, int64(2), result.Deleted)
	assert.Zero(t, result.Remaining)
	assert.False(t, result.Coalesced)
}

func TestDispatchService_Flush_BatchBoundary(t *testing.T) {
	cfg := testConfig()
	cfg.Flush.BatchSize = 10
	fx := createTestDispatchService(t, cfg)
	ctx := context.Background()
	fx.trigger.EXPECT().Enable().Return(true)

	events := enqueueN(t, fx, 15)

	var sent [][]string
	fx.sink.EXPECT().Send(ctx, mock.Anything, mock.Anything).
		Run(func(_ context.Context, _ resource.Resource, batch *entity.EventBatch) {
			sent = append(sent, batchIDs(batch))
		}).
		Return(nil).Twice()

	first, err := fx.service.Flush(ctx, resource.KindAnalytics)
	require.NoError(t, err)
	assert.Equal(t, 10, first.Sent)
	assert.Equal(t, int64(5), first.Remaining)

	second, err := fx.service.Flush(ctx, resource.KindAnalytics)
	require.NoError(t, err)
	assert.Equal(t, 5, second.Sent)
	assert.Zero(t, second.Remaining)

	require.Len(t, sent, 2)
	assert.Equal(t, eventIDStrings(events[:10]), sent[0])
	assert.Equal(t, eventIDStrings(events[10:]), sent[1])
}

func TestDispatchService_Flush_FailureKeepsEventsForNextFlush(t *testing.T) {
	fx := createTestDispatchService(t, testConfig())
	ctx := context.Background()
	fx.trigger.EXPECT().Enable().Return(true)

	events := enqueueN(t, fx, 3)

	fx.sink.EXPECT().Send(ctx, mock.Anything, mock.Anything).
		Return(&service.StatusError{Operation: "send events", StatusCode: 503}).Once()

	_, err := fx.service.Flush(ctx, resource.KindAnalytics)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrBackendFailure)

	stored, err := fx.eventRepo.ListPending(ctx, resource.KindAnalytics, 10)
	require.NoError(t, err)
	require.Len(t, stored, 3)
	for _, evt := range stored {
		assert.Equal(t, entity.EventStatusPostingError, evt.Status)
	}

	late := enqueueN(t, fx, 1)

	fx.sink.EXPECT().Send(ctx, mock.Anything, mock.Anything).
		Run(func(_ context.Context, _ resource.Resource, batch *entity.EventBatch) {
			assert.Equal(t, eventIDStrings(append(events, late...)), batchIDs(batch))
		}).
		Return(nil).Once()

	result, err := fx.service.Flush(ctx, resource.KindAnalytics)
	require.NoError(t, err)
	assert.Equal(t, 4, result.Sent)
	assert.Zero(t, result.Remaining)
}

func TestDispatchService_Flush_AlreadyReceivedIsSuccess(t *testing.T) {
	fx := createTestDispatchService(t, testConfig())
	ctx := context.Background()
	fx.trigger.EXPECT().Enable().Return(true)
	enqueueN(t, fx, 2)

	fx.sink.EXPECT().Send(ctx, mock.Anything, mock.Anything).
		Return(errors.Wrap(service.ErrAlreadyReceived, "send events")).Once()

	result, err := fx.service.Flush(ctx, resource.KindAnalytics)
	require.NoError(t, err)
	assert.Equal(t, int64(2), result.Deleted)
	assert.Zero(t, result.Remaining)
}

func TestDispatchService_Flush_InsertDuringSendIsKept(t *testing.T) {
	fx := createTestDispatchService(t, testConfig())
	ctx := context.Background()
	fx.trigger.EXPECT().Enable().Return(true)
	enqueueN(t, fx, 2)

	var concurrent *entity.Event
	fx.sink.EXPECT().Send(ctx, mock.Anything, mock.Anything).
		Run(func(_ context.Context, _ resource.Resource, _ *entity.EventBatch) {
			concurrent = entity.NewEvent(resource.KindAnalytics, "during-flush", nil)
			_, err := fx.service.Enqueue(ctx, concurrent)
			assert.NoError(t, err)
		}).
		Return(nil).Once()

	result, err := fx.service.Flush(ctx, resource.KindAnalytics)
	require.NoError(t, err)
	assert.Equal(t, int64(2), result.Deleted)
	assert.Equal(t, int64(1), result.Remaining)

	left, err := fx.eventRepo.ListPending(ctx, resource.KindAnalytics, 10)
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, concurrent.ID, left[0].ID)
}

func TestDispatchService_Flush_ConcurrentCallsAreCoalesced(t *testing.T) {
	fx := createTestDispatchService(t, testConfig())
	ctx := context.Background()
	fx.trigger.EXPECT().Enable().Return(true)
	enqueueN(t, fx, 3)

	started := make(chan struct{})
	release := make(chan struct{})
	fx.sink.EXPECT().Send(ctx, mock.Anything, mock.Anything).
		Run(func(_ context.Context, _ resource.Resource, _ *entity.EventBatch) {
			close(started)
			<-release
		}).
		Return(nil).Once()

	results := make([]*usecase.FlushResult, 2)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		res, err := fx.service.Flush(ctx, resource.KindAnalytics)
		assert.NoError(t, err)
		results[0] = res
	}()

	<-started
	wg.Add(1)
	go func() {
		defer wg.Done()
		res, err := fx.service.Flush(ctx, resource.KindAnalytics)
		assert.NoError(t, err)
		results[1] = res
	}()

	// Give the second caller time to join the in-flight flush.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	require.NotNil(t, results[0])
	require.NotNil(t, results[1])
	assert.Equal(t, 3, results[0].Sent)
	assert.Equal(t, 3, results[1].Sent)
	assert.False(t, results[0].Coalesced)
	assert.True(t, results[1].Coalesced)
}

func TestDispatchService_Flush_SoloCallIsNotCoalesced(t *testing.T) {
	fx := createTestDispatchService(t, testConfig())
	ctx := context.Background()
	fx.trigger.EXPECT().Enable().Return(true)
	enqueueN(t, fx, 1)
	fx.sink.EXPECT().Send(ctx, mock.Anything, mock.Anything).Return(nil).Once()

	result, err := fx.service.Flush(ctx, resource.KindAnalytics)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Sent)
	assert.False(t, result.Coalesced)
}

func TestDispatchService_Flush_AnalyticsDisabledSkipsSend(t *testing.T) {
	fx := createTestDispatchService(t, testConfig())
	ctx := context.Background()
	fx.trigger.EXPECT().Enable().Return(true)
	enqueueN(t, fx, 2)

	require.NoError(t, fx.service.SetAnalyticsEnabled(ctx, false))

	result, err := fx.service.Flush(ctx, resource.KindAnalytics)
	require.NoError(t, err)
	assert.Zero(t, result.Sent)
	assert.Equal(t, int64(2), result.Remaining)
}

func TestDispatchService_Flush_UnknownStream(t *testing.T) {
	fx := createTestDispatchService(t, testConfig())

	_, err := fx.service.Flush(context.Background(), "billing")
	assert.ErrorIs(t, err, domainerrors.ErrUnknownResource)
}

func TestDispatchService_Flush_StorageFailure(t *testing.T) {
	eventRepo := mockRepo.NewMockEventRepository(t)
	fx := createTestDispatchServiceWithEvents(t, testConfig(), eventRepo)
	ctx := context.Background()

	eventRepo.EXPECT().ListPending(ctx, resource.KindReceipts, 10).Return(nil, errors.New("connection reset")).Once()

	_, err := fx.service.Flush(ctx, resource.KindReceipts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestDispatchService_FlushAll_ContinuesAfterFailure(t *testing.T) {
	fx := createTestDispatchService(t, testConfig())
	ctx := context.Background()
	fx.trigger.EXPECT().Enable().Return(true)

	enqueueN(t, fx, 1)
	_, err := fx.service.Enqueue(ctx, entity.NewEvent(resource.KindReceipts, entity.EventTypePushReceived, nil))
	require.NoError(t, err)

	analytics, _ := resource.Lookup(resource.KindAnalytics)
	receipts, _ := resource.Lookup(resource.KindReceipts)
	fx.sink.EXPECT().Send(ctx, analytics, mock.Anything).Return(errors.New("unreachable")).Once()
	fx.sink.EXPECT().Send(ctx, receipts, mock.Anything).Return(nil).Once()

	results, err := fx.service.FlushAll(ctx)
	require.Error(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, resource.KindReceipts, results[0].Kind)
	assert.Equal(t, 1, results[0].Sent)

	pending, err := fx.service.Pending(ctx, resource.KindAnalytics)
	require.NoError(t, err)
	assert.Equal(t, int64(1), pending)
}
