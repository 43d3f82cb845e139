package messaging

import (
	"context"
	"log/slog"

	"pushkit/config"
	"pushkit/internal/domain/constants"
	"pushkit/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ProviderParams holds dependencies for MessagingProvider, injected by Fx
type ProviderParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewMessagingProvider creates a MessagingProvider based on configuration
func NewMessagingProvider(params ProviderParams) (service.MessagingProvider, error) {
	cfg := params.Config.Messaging
	logger := params.Logger

	switch cfg.Provider {
	case "", constants.MessagingProviderStatic:
		logger.Info("Using static messaging provider")

		return NewStaticProvider(cfg.Token), nil

	case constants.MessagingProviderFirebase:
		fb := cfg.Firebase
		if fb == nil {
			fb = &config.FirebaseConfig{}
		}
		logger.Info("Using Firebase messaging provider", slog.String("project_id", fb.ProjectID))

		provider, err := NewFirebaseProvider(params.Ctx, fb.ProjectID, fb.CredentialsPath, cfg.Token, logger)
		if err != nil {
			return nil, err
		}

		return provider, nil

	default:
		return nil, errors.Errorf("unknown messaging provider: %s", cfg.Provider)
	}
}
