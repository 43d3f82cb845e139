package repository

import (
	"context"

	"pushkit/internal/domain/entity"
)

// KeyValueStore is the small persistent settings store shared by the engines.
type KeyValueStore interface {
	// Get returns the value and whether the key exists.
	Get(ctx context.Context, key string) (string, bool, error)

	// GetMany returns the existing keys among keys, read as one consistent snapshot.
	GetMany(ctx context.Context, keys ...string) (map[string]string, error)

	// Set writes a single key.
	Set(ctx context.Context, key, value string) error

	// SetMany writes all keys atomically; readers never observe a partial write.
	SetMany(ctx context.Context, values map[string]string) error

	// Delete removes the keys atomically. Missing keys are ignored.
	Delete(ctx context.Context, keys ...string) error
}

// RegistrationStateRepository persists the outcome of the registration protocol.
type RegistrationStateRepository interface {
	// Load returns the stored state; an empty state when nothing is stored.
	Load(ctx context.Context) (*entity.RegistrationState, error)

	// Save replaces the whole state in one atomic write.
	Save(ctx context.Context, state *entity.RegistrationState) error

	// Clear removes all registration keys.
	Clear(ctx context.Context) error

	// Invalidate drops the token and the backend device id so the next
	// registration runs the full protocol.
	Invalidate(ctx context.Context) error
}

// FlagRepository stores feature flags.
type FlagRepository interface {
	// AnalyticsEnabled returns the stored flag or def when unset.
	AnalyticsEnabled(ctx context.Context, def bool) (bool, error)

	// SetAnalyticsEnabled stores the flag.
	SetAnalyticsEnabled(ctx context.Context, enabled bool) error
}
