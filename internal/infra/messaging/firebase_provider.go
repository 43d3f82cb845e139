package messaging

import (
	"context"
	"log/slog"

	"pushkit/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// ErrTokenRejected is returned when FCM reports the token as unregistered or malformed.
var ErrTokenRejected = errors.New("token rejected by FCM")

type dryRunner interface {
	SendDryRun(ctx context.Context, message *messaging.Message) (string, error)
}

// FirebaseProvider validates the host-supplied token with an FCM dry-run send before handing it out.
type FirebaseProvider struct {
	*StaticProvider

	client dryRunner
	logger *slog.Logger
}

// NewFirebaseProvider creates a Firebase-backed provider
func NewFirebaseProvider(ctx context.Context, projectID, credentialsPath, token string, logger *slog.Logger) (*FirebaseProvider, error) {
	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	var fbConfig *firebase.Config
	if projectID != "" {
		fbConfig = &firebase.Config{ProjectID: projectID}
	}

	app, err := firebase.NewApp(ctx, fbConfig, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return newFirebaseProvider(client, token, logger), nil
}

func newFirebaseProvider(client dryRunner, token string, logger *slog.Logger) *FirebaseProvider {
	return &FirebaseProvider{
		StaticProvider: NewStaticProvider(token),
		client:         client,
		logger:         logger,
	}
}

func (p *FirebaseProvider) Register(ctx context.Context, senderID string) (string, error) {
	token, err := p.StaticProvider.Register(ctx, senderID)
	if err != nil {
		return "", err
	}

	_, err = p.client.SendDryRun(ctx, &messaging.Message{
		Token: token,
		Data:  map[string]string{"type": "registration_check"},
	})
	if err != nil {
		if messaging.IsUnregistered(err) || messaging.IsInvalidArgument(err) {
			p.logger.WarnContext(ctx, "FCM rejected platform token", slog.Any("error", err))

			return "", errors.Wrap(ErrTokenRejected, err.Error())
		}

		return "", errors.Wrap(err, "FCM dry-run failed")
	}

	return token, nil
}
