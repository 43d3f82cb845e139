package impl

import (
	"context"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"pushkit/config"
	"pushkit/internal/domain/entity"
	domainerrors "pushkit/internal/domain/errors"
	"pushkit/internal/domain/repository"
	"pushkit/internal/domain/resource"
	"pushkit/internal/domain/service"
	"pushkit/internal/errors"
	"pushkit/internal/infra/metrics"
	"pushkit/internal/usecase"
	"pushkit/internal/util"

	"go.uber.org/fx"
)

// RegistrationServiceParams defines the dependencies of the registration engine
type RegistrationServiceParams struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	StateRepo repository.RegistrationStateRepository
	Provider  service.MessagingProvider
	Client    service.RegistrationClient
	Session   service.RegistrationSession
	Recorder  usecase.EventRecorder `optional:"true"`
	Metrics   *metrics.Metrics      `optional:"true"`
}

type registrationService struct {
	logger     *slog.Logger
	stateRepo  repository.RegistrationStateRepository
	provider   service.MessagingProvider
	client     service.RegistrationClient
	recorder   usecase.EventRecorder
	metrics    *metrics.Metrics
	session    service.RegistrationSession
	appVersion int

	// mu serializes register, unregister and token refresh
	mu  sync.Mutex
	now func() time.Time
}

// NewRegistrationService creates a new registration engine instance
func NewRegistrationService(params RegistrationServiceParams) usecase.RegistrationUsecase {
	return &registrationService{
		logger:     params.Logger,
		stateRepo:  params.StateRepo,
		provider:   params.Provider,
		client:     params.Client,
		recorder:   params.Recorder,
		metrics:    params.Metrics,
		session:    params.Session,
		appVersion: params.Config.App.VersionCode,
		now:        time.Now,
	}
}

// attempt traces the phases of one registration attempt.
type attempt struct {
	logger *slog.Logger
	phase  entity.RegistrationPhase
}

func (a *attempt) to(ctx context.Context, next entity.RegistrationPhase) {
	a.logger.DebugContext(ctx, "Registration phase",
		slog.String("from", string(a.phase)),
		slog.String("to", string(next)),
	)
	a.phase = next
}

func (a *attempt) fail(ctx context.Context, err error) {
	a.logger.WarnContext(ctx, "Registration failed",
		slog.String("phase", string(a.phase)),
		slog.Any("error", err),
	)
	a.phase = entity.PhaseFailed
}

// Register runs the registration state machine
func (s *registrationService) Register(ctx context.Context, params *entity.RegistrationParameters) error {
	if params == nil {
		return domainerrors.ErrInvalidParameters.WithDetails("parameters are required")
	}
	if err := util.ValidateStruct(params); err != nil {
		return domainerrors.ErrInvalidParameters.WithDetails(err.Error())
	}
	params = params.Clone()

	s.mu.Lock()
	defer s.mu.Unlock()

	logger := s.logger.With(
		slog.String("variantId", params.VariantID),
		slog.String("deviceAlias", params.DeviceAlias),
	)
	att := &attempt{logger: logger, phase: entity.PhaseInitial}

	state, err := s.stateRepo.Load(ctx)
	if err != nil {
		att.fail(ctx, err)
		s.metrics.Registration("error")

		return domainerrors.NewDatabaseExecuteError(err, "load registration state")
	}

	hash := params.Hash()
	if state.IsRegistered() && state.Matches(s.appVersion, hash) {
		att.to(ctx, entity.PhaseDone)
		s.session.Set(params)
		s.metrics.Registration("unchanged")

		return nil
	}

	// A version or parameter change only voids the stored record for this attempt;
	// storage is rewritten as a whole once the backend accepts the new one.
	if !state.IsEmpty() && !state.Matches(s.appVersion, hash) {
		logger.InfoContext(ctx, "Registration state is stale, re-registering",
			slog.Int("storedVersion", state.AppVersion),
			slog.Int("currentVersion", s.appVersion),
		)
	}

	att.to(ctx, entity.PhaseRequestingToken)
	token, err := s.provider.Register(ctx, params.PlatformSenderID)
	if err == nil && token == "" {
		err = errors.New("provider returned an empty token")
	}
	if err != nil {
		att.fail(ctx, err)
		s.metrics.Registration("provider_failure")

		return domainerrors.ErrProviderFailure.WithDetails(err.Error())
	}

	att.to(ctx, entity.PhaseTokenObtained)
	att.to(ctx, entity.PhaseRegisteringBackend)
	deviceID, err := s.client.Register(ctx, params, token)
	if err == nil && deviceID == "" {
		err = errors.New("backend returned an empty device id")
	}
	if err != nil {
		att.fail(ctx, err)
		s.metrics.Registration("backend_failure")

		return domainerrors.ErrBackendFailure.WithDetails(err.Error())
	}

	att.to(ctx, entity.PhasePersisting)
	next := &entity.RegistrationState{
		MessagingToken:  token,
		BackendDeviceID: deviceID,
		AppVersion:      s.appVersion,
		ParamsHash:      hash,
		RegisteredAt:    s.now().UTC(),
		ServiceBaseURL:  params.ServiceBaseURL,
		VariantID:       params.VariantID,
	}
	if err := s.stateRepo.Save(ctx, next); err != nil {
		att.fail(ctx, err)
		s.metrics.Registration("error")

		return domainerrors.NewDatabaseExecuteError(err, "save registration state")
	}

	att.to(ctx, entity.PhaseDone)
	s.session.Set(params)
	s.metrics.Registration("registered")
	logger.InfoContext(ctx, "Device registered", slog.String("deviceId", deviceID))

	s.recordRegistered(ctx, params, deviceID)

	return nil
}

func (s *registrationService) recordRegistered(ctx context.Context, params *entity.RegistrationParameters, deviceID string) {
	if s.recorder == nil {
		return
	}

	event := entity.NewEvent(resource.KindAnalytics, entity.EventTypeDeviceRegistered, map[string]any{
		"device_id":    deviceID,
		"device_alias": params.DeviceAlias,
		"app_version":  strconv.Itoa(s.appVersion),
	})
	if _, err := s.recorder.Enqueue(ctx, event); err != nil && !errors.Is(err, domainerrors.ErrAnalyticsDisabled) {
		s.logger.WarnContext(ctx, "Failed to record registration event", slog.Any("error", err))
	}
}

// Unregister removes the device from the backend and the messaging provider
func (s *registrationService) Unregister(ctx context.Context, credentials *entity.RegistrationParameters) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.stateRepo.Load(ctx)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "load registration state")
	}
	if state.IsEmpty() {
		return nil
	}

	if state.BackendDeviceID != "" {
		params, err := s.unregisterParameters(state, credentials)
		if err != nil {
			return err
		}

		err = s.client.Unregister(ctx, params, state.BackendDeviceID)
		switch {
		case errors.Is(err, service.ErrDeviceNotRegistered):
			s.logger.InfoContext(ctx, "Device already unknown to backend", slog.String("deviceId", state.BackendDeviceID))
		case err != nil:
			return domainerrors.ErrBackendFailure.WithDetails(err.Error())
		}
	}

	if err := s.provider.Unregister(ctx); err != nil {
		return domainerrors.ErrProviderFailure.WithDetails(err.Error())
	}

	if err := s.stateRepo.Clear(ctx); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "clear registration state")
	}
	s.session.Clear()
	s.logger.InfoContext(ctx, "Device unregistered")

	return nil
}

// unregisterParameters addresses the stored backend record. The base URL and variant
// come from the stored state when present; the secret from explicit credentials, the
// last registration or the configured defaults, whichever names the same variant.
func (s *registrationService) unregisterParameters(
	state *entity.RegistrationState,
	credentials *entity.RegistrationParameters,
) (*entity.RegistrationParameters, error) {
	var params *entity.RegistrationParameters
	for _, candidate := range []*entity.RegistrationParameters{credentials, s.session.Current(), s.session.Resolve()} {
		if candidate == nil || candidate.VariantSecret == "" {
			continue
		}
		if state.VariantID != "" && candidate.VariantID != "" && candidate.VariantID != state.VariantID {
			continue
		}
		params = candidate.Clone()

		break
	}
	if params == nil {
		return nil, domainerrors.ErrInvalidParameters.WithDetails("variant secret required to unregister")
	}

	if state.ServiceBaseURL != "" {
		params.ServiceBaseURL = state.ServiceBaseURL
	}
	if state.VariantID != "" {
		params.VariantID = state.VariantID
	}
	if params.ServiceBaseURL == "" || params.VariantID == "" {
		return nil, domainerrors.ErrInvalidParameters.WithDetails("backend record location unknown")
	}

	return params, nil
}

// HandleTokenRefresh hands a rotated token to the provider and drops the backend record
func (s *registrationService) HandleTokenRefresh(ctx context.Context, token string) error {
	if token == "" {
		return domainerrors.ErrInvalidParameters.WithDetails("token is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if receiver, ok := s.provider.(service.TokenReceiver); ok {
		receiver.Accept(token)
	}

	if err := s.stateRepo.Invalidate(ctx); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "invalidate registration state")
	}
	s.logger.InfoContext(ctx, "Messaging token refreshed", slog.String("token", util.Mask(token)))

	return nil
}

// State returns the persisted registration state
func (s *registrationService) State(ctx context.Context) (*entity.RegistrationState, error) {
	state, err := s.stateRepo.Load(ctx)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "load registration state")
	}

	return state, nil
}

// LastParameters returns a copy of the parameters of the last successful registration
func (s *registrationService) LastParameters() *entity.RegistrationParameters {
	return s.session.Current()
}
