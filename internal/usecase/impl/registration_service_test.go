package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"pushkit/config"
	"pushkit/internal/domain/entity"
	domainerrors "pushkit/internal/domain/errors"
	"pushkit/internal/domain/repository"
	"pushkit/internal/domain/resource"
	"pushkit/internal/domain/service"
	"pushkit/internal/infra/backend"
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

// registrationServiceFixtures holds all test dependencies for registration service tests.
type registrationServiceFixtures struct {
	service   usecase.RegistrationUsecase
	cfg       *config.Config
	stateRepo repository.RegistrationStateRepository
	provider  *mockService.MockMessagingProvider
	client    *mockService.MockRegistrationClient
	recorder  *recordingDispatcher
}

// recordingDispatcher captures events enqueued by the registration engine.
type recordingDispatcher struct {
	events []*entity.Event
	err    error
}

func (r *recordingDispatcher) Enqueue(_ context.Context, event *entity.Event) (uuid.UUID, error) {
	r.events = append(r.events, event)

	return event.ID, r.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	cfg := &config.Config{
		Registration: &config.RegistrationConfig{},
		Analytics:    &config.AnalyticsConfig{Enabled: true, MaxPending: 1000},
		Flush:        &config.FlushConfig{BatchSize: 10},
	}
	cfg.App.VersionCode = 3

	return cfg
}

func createTestRegistrationService(t *testing.T, cfg *config.Config) registrationServiceFixtures {
	stateRepo := kvstate.NewStateRepository(memory.NewKVStore())

	return createTestRegistrationServiceWithState(t, cfg, stateRepo)
}

func createTestRegistrationServiceWithState(t *testing.T, cfg *config.Config, stateRepo repository.RegistrationStateRepository) registrationServiceFixtures {
	provider := mockService.NewMockMessagingProvider(t)
	client := mockService.NewMockRegistrationClient(t)
	recorder := &recordingDispatcher{}

	svc := NewRegistrationService(RegistrationServiceParams{
		Config:    cfg,
		Logger:    discardLogger(),
		StateRepo: stateRepo,
		Provider:  provider,
		Client:    client,
		Session:   backend.NewSession(cfg.Registration.Parameters()),
		Recorder:  recorder,
	})

	return registrationServiceFixtures{
		service:   svc,
		cfg:       cfg,
		stateRepo: stateRepo,
		provider:  provider,
		client:    client,
		recorder:  recorder,
	}
}

func validParams() *entity.RegistrationParameters {
	return &entity.RegistrationParameters{
		PlatformSenderID: "sender-1",
		VariantID:        "variant-1",
		VariantSecret:    "secret-1",
		DeviceAlias:      "alice-phone",
		ServiceBaseURL:   "https://push.example.com/api",
	}
}

func TestRegistrationService_Register_FirstRegistration(t *testing.T) {
	fx := createTestRegistrationService(t, testConfig())
	ctx := context.Background()
	params := validParams()

	fx.provider.EXPECT().Register(ctx, "sender-1").Return("token-1", nil).Once()
	fx.client.EXPECT().Register(ctx, mock.AnythingOfType("*entity.RegistrationParameters"), "token-1").Return("device-1", nil).Once()

	require.NoError(t, fx.service.Register(ctx, params))

	state, err := fx.service.State(ctx)
	require.NoError(t, err)
	assert.Equal(t, "token-1", state.MessagingToken)
	assert.Equal(t, "device-1", state.BackendDeviceID)
	assert.Equal(t, 3, state.AppVersion)
	assert.Equal(t, params.Hash(), state.ParamsHash)
	assert.False(t, state.RegisteredAt.IsZero())

	require.Len(t, fx.recorder.events, 1)
	assert.Equal(t, entity.EventTypeDeviceRegistered, fx.recorder.events[0].Type)
	assert.Equal(t, resource.KindAnalytics, fx.recorder.events[0].Stream)
	assert.True(t, fx.service.LastParameters().Equal(params))
}

func TestRegistrationService_Register_IdempotentNoOp(t *testing.T) {
	fx := createTestRegistrationService(t, testConfig())
	ctx := context.Background()

	fx.provider.EXPECT().Register(ctx, "sender-1").Return("token-1", nil).Once()
	fx.client.EXPECT().Register(ctx, mock.Anything, "token-1").Return("device-1", nil).Once()

	require.NoError(t, fx.service.Register(ctx, validParams()))
	// Second call must not reach the provider or the backend; Once() enforces it.
	require.NoError(t, fx.service.Register(ctx, validParams()))

	assert.Len(t, fx.recorder.events, 1)
}

func TestRegistrationService_Register_ParameterChangeForcesFullRegistration(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *entity.RegistrationParameters)
	}{
		{name: "sender id", mutate: func(p *entity.RegistrationParameters) { p.PlatformSenderID = "sender-2" }},
		{name: "variant id", mutate: func(p *entity.RegistrationParameters) { p.VariantID = "variant-2" }},
		{name: "variant secret", mutate: func(p *entity.RegistrationParameters) { p.VariantSecret = "secret-2" }},
		{name: "device alias", mutate: func(p *entity.RegistrationParameters) { p.DeviceAlias = "bob-phone" }},
		{name: "base url", mutate: func(p *entity.RegistrationParameters) { p.ServiceBaseURL = "https://other.example.com" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestRegistrationService(t, testConfig())
			ctx := context.Background()

			first := validParams()
			second := validParams()
			tt.mutate(second)

			fx.provider.EXPECT().Register(ctx, first.PlatformSenderID).Return("token-1", nil).Once()
			fx.client.EXPECT().Register(ctx, mock.Anything, "token-1").Return("device-1", nil).Once()
			require.NoError(t, fx.service.Register(ctx, first))

			fx.provider.EXPECT().Register(ctx, second.PlatformSenderID).Return("token-2", nil).Once()
			fx.client.EXPECT().Register(ctx, mock.Anything, "token-2").Return("device-2", nil).Once()
			require.NoError(t, fx.service.Register(ctx, second))

			state, err := fx.service.State(ctx)
			require.NoError(t, err)
			assert.Equal(t, "device-2", state.BackendDeviceID)
			assert.Equal(t, second.Hash(), state.ParamsHash)
		})
	}
}

func TestRegistrationService_Register_AppVersionBumpForcesFullRegistration(t *testing.T) {
	ctx := context.Background()
	stateRepo := kvstate.NewStateRepository(memory.NewKVStore())

	v3 := createTestRegistrationServiceWithState(t, testConfig(), stateRepo)
	v3.provider.EXPECT().Register(ctx, "sender-1").Return("token-1", nil).Once()
	v3.client.EXPECT().Register(ctx, mock.Anything, "token-1").Return("device-1", nil).Once()
	require.NoError(t, v3.service.Register(ctx, validParams()))

	cfg := testConfig()
	cfg.App.VersionCode = 4
	v4 := createTestRegistrationServiceWithState(t, cfg, stateRepo)
	v4.provider.EXPECT().Register(ctx, "sender-1").Return("token-1", nil).Once()
	v4.client.EXPECT().Register(ctx, mock.Anything, "token-1").Return("device-1b", nil).Once()
	require.NoError(t, v4.service.Register(ctx, validParams()))

	state, err := stateRepo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, state.AppVersion)
	assert.Equal(t, "device-1b", state.BackendDeviceID)
}

func TestRegistrationService_Register_BackendFailureLeavesNoDeviceID(t *testing.T) {
	fx := createTestRegistrationService(t, testConfig())
	ctx := context.Background()

	fx.provider.EXPECT().Register(ctx, "sender-1").Return("token-1", nil).Once()
	fx.client.EXPECT().Register(ctx, mock.Anything, "token-1").
		Return("", &service.StatusError{Operation: "register device", StatusCode: 500}).Once()

	err := fx.service.Register(ctx, validParams())
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrBackendFailure)
	assert.Contains(t, err.Error(), "500")

	state, err := fx.service.State(ctx)
	require.NoError(t, err)
	assert.Empty(t, state.BackendDeviceID)
	assert.Empty(t, state.MessagingToken)
	assert.Empty(t, fx.recorder.events)

	// The retry restarts from token acquisition.
	fx.provider.EXPECT().Register(ctx, "sender-1").Return("token-1", nil).Once()
	fx.client.EXPECT().Register(ctx, mock.Anything, "token-1").Return("device-1", nil).Once()
	require.NoError(t, fx.service.Register(ctx, validParams()))
}

func TestRegistrationService_Register_FailedReRegistrationKeepsState(t *testing.T) {
	tests := []struct {
		name   string
		expect func(fx registrationServiceFixtures, ctx context.Context)
		want   error
	}{
		{
			name: "provider failure",
			expect: func(fx registrationServiceFixtures, ctx context.Context) {
				fx.provider.EXPECT().Register(ctx, "sender-1").Return("", errors.New("SERVICE_NOT_AVAILABLE")).Once()
			},
			want: domainerrors.ErrProviderFailure,
		},
		{
			name: "backend failure",
			expect: func(fx registrationServiceFixtures, ctx context.Context) {
				fx.provider.EXPECT().Register(ctx, "sender-1").Return("token-2", nil).Once()
				fx.client.EXPECT().Register(ctx, mock.Anything, "token-2").
					Return("", &service.StatusError{Operation: "register device", StatusCode: 503}).Once()
			},
			want: domainerrors.ErrBackendFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestRegistrationService(t, testConfig())
			ctx := context.Background()

			fx.provider.EXPECT().Register(ctx, "sender-1").Return("token-1", nil).Once()
			fx.client.EXPECT().Register(ctx, mock.Anything, "token-1").Return("device-1", nil).Once()
			require.NoError(t, fx.service.Register(ctx, validParams()))

			before, err := fx.stateRepo.Load(ctx)
			require.NoError(t, err)

			changed := validParams()
			changed.DeviceAlias = "bob-phone"
			tt.expect(fx, ctx)
			assert.ErrorIs(t, fx.service.Register(ctx, changed), tt.want)

			after, err := fx.stateRepo.Load(ctx)
			require.NoError(t, err)
			assert.Equal(t, before, after)
		})
	}
}

func TestRegistrationService_Register_ProviderFailureSkipsBackend(t *testing.T) {
	fx := createTestRegistrationService(t, testConfig())
	ctx := context.Background()

	fx.provider.EXPECT().Register(ctx, "sender-1").Return("", errors.New("SERVICE_NOT_AVAILABLE")).Once()

	err := fx.service.Register(ctx, validParams())
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProviderFailure)
	assert.Contains(t, err.Error(), "SERVICE_NOT_AVAILABLE")
	fx.client.AssertNotCalled(t, "Register", mock.Anything, mock.Anything, mock.Anything)
}

func TestRegistrationService_Register_EmptyTokenIsProviderFailure(t *testing.T) {
	fx := createTestRegistrationService(t, testConfig())
	ctx := context.Background()

	fx.provider.EXPECT().Register(ctx, "sender-1").Return("", nil).Once()

	err := fx.service.Register(ctx, validParams())
	assert.ErrorIs(t, err, domainerrors.ErrProviderFailure)
}

func TestRegistrationService_Register_InvalidParameters(t *testing.T) {
	tests := []struct {
		name   string
		params *entity.RegistrationParameters
	}{
		{name: "nil", params: nil},
		{name: "missing sender", params: func() *entity.RegistrationParameters { p := validParams(); p.PlatformSenderID = ""; return p }()},
		{name: "missing variant", params: func() *entity.RegistrationParameters { p := validParams(); p.VariantID = ""; return p }()},
		{name: "missing secret", params: func() *entity.RegistrationParameters { p := validParams(); p.VariantSecret = ""; return p }()},
		{name: "malformed url", params: func() *entity.RegistrationParameters { p := validParams(); p.ServiceBaseURL = "not a url"; return p }()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestRegistrationService(t, testConfig())

			err := fx.service.Register(context.Background(), tt.params)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidParameters)
		})
	}
}

func TestRegistrationService_Register_SaveFailure(t *testing.T) {
	stateRepo := mockRepo.NewMockRegistrationStateRepository(t)
	fx := createTestRegistrationServiceWithState(t, testConfig(), stateRepo)
	ctx := context.Background()

	stateRepo.EXPECT().Load(ctx).Return(&entity.RegistrationState{}, nil).Once()
	fx.provider.EXPECT().Register(ctx, "sender-1").Return("token-1", nil).Once()
	fx.client.EXPECT().Register(ctx, mock.Anything, "token-1").Return("device-1", nil).Once()
	stateRepo.EXPECT().Save(ctx, mock.AnythingOfType("*entity.RegistrationState")).Return(errors.New("disk full")).Once()

	err := fx.service.Register(ctx, validParams())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.Nil(t, fx.service.LastParameters())
}

func TestRegistrationService_Register_AnalyticsDisabledIsNotAnError(t *testing.T) {
	fx := createTestRegistrationService(t, testConfig())
	ctx := context.Background()
	fx.recorder.err = domainerrors.ErrAnalyticsDisabled

	fx.provider.EXPECT().Register(ctx, "sender-1").Return("token-1", nil).Once()
	fx.client.EXPECT().Register(ctx, mock.Anything, "token-1").Return("device-1", nil).Once()

	require.NoError(t, fx.service.Register(ctx, validParams()))
}

func TestRegistrationService_Unregister(t *testing.T) {
	fx := createTestRegistrationService(t, testConfig())
	ctx := context.Background()

	fx.provider.EXPECT().Register(ctx, "sender-1").Return("token-1", nil).Once()
	fx.client.EXPECT().Register(ctx, mock.Anything, "token-1").Return("device-1", nil).Once()
	require.NoError(t, fx.service.Register(ctx, validParams()))

	fx.client.EXPECT().Unregister(ctx, mock.Anything, "device-1").Return(nil).Once()
	fx.provider.EXPECT().Unregister(ctx).Return(nil).Once()
	require.NoError(t, fx.service.Unregister(ctx, nil))

	state, err := fx.service.State(ctx)
	require.NoError(t, err)
	assert.Equal(t, &entity.RegistrationState{}, state)
	assert.Nil(t, fx.service.LastParameters())
}

func TestRegistrationService_Unregister_BackendNotFoundIsSuccess(t *testing.T) {
	fx := createTestRegistrationService(t, testConfig())
	ctx := context.Background()

	fx.provider.EXPECT().Register(ctx, "sender-1").Return("token-1", nil).Once()
	fx.client.EXPECT().Register(ctx, mock.Anything, "token-1").Return("device-1", nil).Once()
	require.NoError(t, fx.service.Register(ctx, validParams()))

	fx.client.EXPECT().Unregister(ctx, mock.Anything, "device-1").
		Return(errors.Wrap(service.ErrDeviceNotRegistered, "unregister device")).Once()
	fx.provider.EXPECT().Unregister(ctx).Return(nil).Once()

	require.NoError(t, fx.service.Unregister(ctx, nil))

	state, err := fx.service.State(ctx)
	require.NoError(t, err)
	assert.True(t, state.IsEmpty())
}

func TestRegistrationService_Unregister_FailureKeepsState(t *testing.T) {
	fx := createTestRegistrationService(t, testConfig())
	ctx := context.Background()

	fx.provider.EXPECT().Register(ctx, "sender-1").Return("token-1", nil).Once()
	fx.client.EXPECT().Register(ctx, mock.Anything, "token-1").Return("device-1", nil).Once()
	require.NoError(t, fx.service.Register(ctx, validParams()))

	fx.client.EXPECT().Unregister(ctx, mock.Anything, "device-1").Return(nil).Once()
	fx.provider.EXPECT().Unregister(ctx).Return(errors.New("provider down")).Once()

	err := fx.service.Unregister(ctx, nil)
	assert.ErrorIs(t, err, domainerrors.ErrProviderFailure)

	state, err := fx.service.State(ctx)
	require.NoError(t, err)
	assert.Equal(t, "device-1", state.BackendDeviceID)
	assert.Equal(t, "token-1", state.MessagingToken)

	fx.client.EXPECT().Unregister(ctx, mock.Anything, "device-1").Return(errors.New("timeout")).Once()
	err = fx.service.Unregister(ctx, nil)
	assert.ErrorIs(t, err, domainerrors.ErrBackendFailure)
}

func TestRegistrationService_Unregister_NothingStored(t *testing.T) {
	fx := createTestRegistrationService(t, testConfig())

	require.NoError(t, fx.service.Unregister(context.Background(), nil))
}

func TestRegistrationService_Unregister_UsesConfiguredDefaults(t *testing.T) {
	cfg := testConfig()
	cfg.Registration = &config.RegistrationConfig{
		PlatformSenderID: "sender-1",
		VariantID:        "variant-1",
		VariantSecret:    "secret-1",
		ServiceBaseURL:   "https://push.example.com/api",
	}
	ctx := context.Background()
	stateRepo := kvstate.NewStateRepository(memory.NewKVStore())
	require.NoError(t, stateRepo.Save(ctx, &entity.RegistrationState{
		MessagingToken:  "token-1",
		BackendDeviceID: "device-1",
		AppVersion:      3,
	}))

	fx := createTestRegistrationServiceWithState(t, cfg, stateRepo)
	fx.client.EXPECT().Unregister(ctx, mock.MatchedBy(func(p *entity.RegistrationParameters) bool {
		return p.VariantID == "variant-1"
	}), "device-1").Return(nil).Once()
	fx.provider.EXPECT().Unregister(ctx).Return(nil).Once()

	require.NoError(t, fx.service.Unregister(ctx, nil))
}

func TestRegistrationService_Unregister_AfterRestart(t *testing.T) {
	ctx := context.Background()
	stateRepo := kvstate.NewStateRepository(memory.NewKVStore())

	params := validParams()
	params.ServiceBaseURL = "https://tenant.example.com/push"
	first := createTestRegistrationServiceWithState(t, testConfig(), stateRepo)
	first.provider.EXPECT().Register(ctx, "sender-1").Return("token-1", nil).Once()
	first.client.EXPECT().Register(ctx, mock.Anything, "token-1").Return("device-1", nil).Once()
	require.NoError(t, first.service.Register(ctx, params))

	// A fresh process knows no parameters until the host supplies the secret.
	restarted := createTestRegistrationServiceWithState(t, testConfig(), stateRepo)
	err := restarted.service.Unregister(ctx, nil)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidParameters)

	state, err := stateRepo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "device-1", state.BackendDeviceID)

	restarted.client.EXPECT().Unregister(ctx, mock.MatchedBy(func(p *entity.RegistrationParameters) bool {
		return p.ServiceBaseURL == "https://tenant.example.com/push" &&
			p.VariantID == "variant-1" &&
			p.VariantSecret == "secret-1"
	}), "device-1").Return(nil).Once()
	restarted.provider.EXPECT().Unregister(ctx).Return(nil).Once()

	require.NoError(t, restarted.service.Unregister(ctx, &entity.RegistrationParameters{VariantSecret: "secret-1"}))

	state, err = stateRepo.Load(ctx)
	require.NoError(t, err)
	assert.True(t, state.IsEmpty())
}

func TestRegistrationService_Unregister_IgnoresCredentialsOfOtherVariant(t *testing.T) {
	ctx := context.Background()
	stateRepo := kvstate.NewStateRepository(memory.NewKVStore())
	require.NoError(t, stateRepo.Save(ctx, &entity.RegistrationState{
		MessagingToken:  "token-1",
		BackendDeviceID: "device-1",
		AppVersion:      3,
		ServiceBaseURL:  "https://push.example.com/api",
		VariantID:       "variant-1",
	}))

	fx := createTestRegistrationServiceWithState(t, testConfig(), stateRepo)
	err := fx.service.Unregister(ctx, &entity.RegistrationParameters{VariantID: "variant-9", VariantSecret: "other"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidParameters)
}

// refreshableProvider is a messaging provider that also accepts host tokens.
type refreshableProvider struct {
	*mockService.MockMessagingProvider
	*mockService.MockTokenReceiver
}

func TestRegistrationService_HandleTokenRefresh(t *testing.T) {
	ctx := context.Background()
	stateRepo := kvstate.NewStateRepository(memory.NewKVStore())
	receiver := mockService.NewMockTokenReceiver(t)
	provider := mockService.NewMockMessagingProvider(t)
	client := mockService.NewMockRegistrationClient(t)

	svc := NewRegistrationService(RegistrationServiceParams{
		Config:    testConfig(),
		Logger:    discardLogger(),
		StateRepo: stateRepo,
		Provider:  refreshableProvider{MockMessagingProvider: provider, MockTokenReceiver: receiver},
		Client:    client,
		Session:   backend.NewSession(nil),
	})

	provider.EXPECT().Register(ctx, "sender-1").Return("token-1", nil).Once()
	client.EXPECT().Register(ctx, mock.Anything, "token-1").Return("device-1", nil).Once()
	require.NoError(t, svc.Register(ctx, validParams()))

	receiver.EXPECT().Accept("token-2").Return().Once()
	require.NoError(t, svc.HandleTokenRefresh(ctx, "token-2"))

	state, err := svc.State(ctx)
	require.NoError(t, err)
	assert.Empty(t, state.BackendDeviceID)
	assert.Empty(t, state.MessagingToken)

	provider.EXPECT().Register(ctx, "sender-1").Return("token-2", nil).Once()
	client.EXPECT().Register(ctx, mock.Anything, "token-2").Return("device-1", nil).Once()
	require.NoError(t, svc.Register(ctx, validParams()))

	assert.ErrorIs(t, svc.HandleTokenRefresh(ctx, ""), domainerrors.ErrInvalidParameters)
}
