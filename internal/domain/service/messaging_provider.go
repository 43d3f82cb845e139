package service

import (
	"context"
)

// MessagingProvider is the platform push service that issues device tokens.
type MessagingProvider interface {
	// Register returns a messaging token for the sender id.
	Register(ctx context.Context, senderID string) (string, error)

	// Unregister invalidates the token held by this device.
	Unregister(ctx context.Context) error
}

// TokenReceiver is implemented by providers whose token is handed over by the host.
type TokenReceiver interface {
	// Accept stores a token issued or rotated by the platform.
	Accept(token string)
}
