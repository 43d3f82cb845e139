package usecase

import (
	"context"

	"pushkit/internal/domain/entity"
)

// RegistrationUsecase defines the device registration protocol
type RegistrationUsecase interface {
	// Register ensures the device holds a messaging token and a matching backend record.
	// Returns nil without any network call when the stored state is still valid.
	Register(ctx context.Context, params *entity.RegistrationParameters) error

	// Unregister removes the backend record and the platform token, then clears local state.
	// credentials may be nil; when set, its secret authenticates the backend call.
	Unregister(ctx context.Context, credentials *entity.RegistrationParameters) error

	// HandleTokenRefresh accepts a rotated platform token and invalidates the backend record.
	HandleTokenRefresh(ctx context.Context, token string) error

	// State returns the persisted registration state
	State(ctx context.Context) (*entity.RegistrationState, error)

	// LastParameters returns the parameters of the last successful registration in this process
	LastParameters() *entity.RegistrationParameters
}
