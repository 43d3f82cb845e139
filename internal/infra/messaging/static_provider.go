// Package messaging implements the platform messaging providers that issue device tokens.
package messaging

import (
	"context"
	"sync"

	"pushkit/internal/errors"
)

// ErrNoToken is returned when the host has not handed over a platform token yet.
var ErrNoToken = errors.New("no platform token available")

// StaticProvider returns the token most recently handed over by the host.
type StaticProvider struct {
	mu    sync.RWMutex
	token string
}

// NewStaticProvider creates a provider seeded with an optional token
func NewStaticProvider(token string) *StaticProvider {
	return &StaticProvider{token: token}
}

func (p *StaticProvider) Register(_ context.Context, _ string) (string, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.token == "" {
		return "", ErrNoToken
	}

	return p.token, nil
}

func (p *StaticProvider) Unregister(_ context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.token = ""

	return nil
}

// Accept stores a token issued or rotated by the platform.
func (p *StaticProvider) Accept(token string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.token = token
}
