// Package kvstate maps registration state and feature flags onto a key-value store.
package kvstate

import (
	"context"
	"strconv"
	"time"

	"pushkit/internal/domain/entity"
	"pushkit/internal/domain/repository"
	"pushkit/internal/errors"
)

const (
	keyMessagingToken  = "registration.messaging_token"
	keyBackendDeviceID = "registration.backend_device_id"
	keyAppVersion      = "registration.app_version"
	keyParamsHash      = "registration.params_hash"
	keyRegisteredAt    = "registration.registered_at"
	keyServiceBaseURL  = "registration.service_base_url"
	keyVariantID       = "registration.variant_id"

	keyAnalyticsEnabled = "flags.analytics_enabled"
)

var registrationKeys = []string{
	keyMessagingToken,
	keyBackendDeviceID,
	keyAppVersion,
	keyParamsHash,
	keyRegisteredAt,
	keyServiceBaseURL,
	keyVariantID,
}

type stateRepository struct {
	store repository.KeyValueStore
}

// NewStateRepository creates a registration state repository backed by store
func NewStateRepository(store repository.KeyValueStore) repository.RegistrationStateRepository {
	return &stateRepository{store: store}
}

func (r *stateRepository) Load(ctx context.Context) (*entity.RegistrationState, error) {
	state := &entity.RegistrationState{}

	values, err := r.store.GetMany(ctx, registrationKeys...)
	if err != nil {
		return nil, errors.Wrap(err, "load registration state")
	}

	state.MessagingToken = values[keyMessagingToken]
	state.BackendDeviceID = values[keyBackendDeviceID]
	state.ParamsHash = values[keyParamsHash]
	state.ServiceBaseURL = values[keyServiceBaseURL]
	state.VariantID = values[keyVariantID]

	if raw, ok := values[keyAppVersion]; ok && raw != "" {
		version, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "parse %s", keyAppVersion)
		}
		state.AppVersion = version
	}

	if raw, ok := values[keyRegisteredAt]; ok && raw != "" {
		at, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			return nil, errors.Wrapf(err, "parse %s", keyRegisteredAt)
		}
		state.RegisteredAt = at
	}

	return state, nil
}

func (r *stateRepository) Save(ctx context.Context, state *entity.RegistrationState) error {
	values := map[string]string{
		keyMessagingToken:  state.MessagingToken,
		keyBackendDeviceID: state.BackendDeviceID,
		keyAppVersion:      strconv.Itoa(state.AppVersion),
		keyParamsHash:      state.ParamsHash,
		keyRegisteredAt:    state.RegisteredAt.UTC().Format(time.RFC3339Nano),
		keyServiceBaseURL:  state.ServiceBaseURL,
		keyVariantID:       state.VariantID,
	}

	return errors.Wrap(r.store.SetMany(ctx, values), "save registration state")
}

func (r *stateRepository) Clear(ctx context.Context) error {
	return errors.Wrap(r.store.Delete(ctx, registrationKeys...), "clear registration state")
}

func (r *stateRepository) Invalidate(ctx context.Context) error {
	return errors.Wrap(
		r.store.Delete(ctx,
			keyMessagingToken, keyBackendDeviceID, keyParamsHash, keyRegisteredAt,
			keyServiceBaseURL, keyVariantID,
		),
		"invalidate registration state",
	)
}

type flagRepository struct {
	store repository.KeyValueStore
}

// NewFlagRepository creates a feature flag repository backed by store
func NewFlagRepository(store repository.KeyValueStore) repository.FlagRepository {
	return &flagRepository{store: store}
}

func (r *flagRepository) AnalyticsEnabled(ctx context.Context, def bool) (bool, error) {
	raw, ok, err := r.store.Get(ctx, keyAnalyticsEnabled)
	if err != nil {
		return def, errors.Wrapf(err, "get %s", keyAnalyticsEnabled)
	}
	if !ok {
		return def, nil
	}

	enabled, err := strconv.ParseBool(raw)
	if err != nil {
		return def, errors.Wrapf(err, "parse %s", keyAnalyticsEnabled)
	}

	return enabled, nil
}

func (r *flagRepository) SetAnalyticsEnabled(ctx context.Context, enabled bool) error {
	return errors.Wrap(r.store.Set(ctx, keyAnalyticsEnabled, strconv.FormatBool(enabled)), "set analytics flag")
}
