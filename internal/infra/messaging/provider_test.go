package messaging

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"pushkit/internal/domain/service"

	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ service.MessagingProvider = (*StaticProvider)(nil)
	_ service.TokenReceiver     = (*StaticProvider)(nil)
	_ service.MessagingProvider = (*FirebaseProvider)(nil)
	_ service.TokenReceiver     = (*FirebaseProvider)(nil)
)

type fakeDryRunner struct {
	messages []*messaging.Message
	err      error
}

func (f *fakeDryRunner) SendDryRun(_ context.Context, message *messaging.Message) (string, error) {
	f.messages = append(f.messages, message)
	if f.err != nil {
		return "", f.err
	}

	return "projects/p/messages/dry-run", nil
}

func TestStaticProvider(t *testing.T) {
	ctx := context.Background()
	p := NewStaticProvider("")

	_, err := p.Register(ctx, "sender")
	assert.ErrorIs(t, err, ErrNoToken)

	p.Accept("token-1")
	token, err := p.Register(ctx, "sender")
	require.NoError(t, err)
	assert.Equal(t, "token-1", token)

	require.NoError(t, p.Unregister(ctx))
	_, err = p.Register(ctx, "sender")
	assert.ErrorIs(t, err, ErrNoToken)
}

func TestFirebaseProvider_ValidatesToken(t *testing.T) {
	ctx := context.Background()
	runner := &fakeDryRunner{}
	p := newFirebaseProvider(runner, "token-1", slog.New(slog.NewTextHandler(io.Discard, nil)))

	token, err := p.Register(ctx, "sender")
	require.NoError(t, err)
	assert.Equal(t, "token-1", token)
	require.Len(t, runner.messages, 1)
	assert.Equal(t, "token-1", runner.messages[0].Token)
}

func TestFirebaseProvider_TransportFailure(t *testing.T) {
	ctx := context.Background()
	runner := &fakeDryRunner{err: errors.New("connection refused")}
	p := newFirebaseProvider(runner, "token-1", slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := p.Register(ctx, "sender")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestFirebaseProvider_NoTokenSkipsDryRun(t *testing.T) {
	runner := &fakeDryRunner{}
	p := newFirebaseProvider(runner, "", slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := p.Register(context.Background(), "sender")
	assert.ErrorIs(t, err, ErrNoToken)
	assert.Empty(t, runner.messages)
}
