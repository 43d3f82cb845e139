// Package backend implements the HTTP clients of the backend registration and events APIs.
package backend

import (
	"sync"

	"pushkit/config"
	"pushkit/internal/domain/entity"
	"pushkit/internal/domain/service"
)

type session struct {
	mu       sync.RWMutex
	current  *entity.RegistrationParameters
	defaults *entity.RegistrationParameters
}

// NewSession creates a session that falls back to defaults until a registration succeeds
func NewSession(defaults *entity.RegistrationParameters) service.RegistrationSession {
	return &session{defaults: defaults.Clone()}
}

// NewSessionFromConfig creates a session seeded with the configured registration parameters
func NewSessionFromConfig(cfg *config.Config) service.RegistrationSession {
	return NewSession(cfg.Registration.Parameters())
}

func (s *session) Current() *entity.RegistrationParameters {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.current.Clone()
}

func (s *session) Resolve() *entity.RegistrationParameters {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current != nil {
		return s.current.Clone()
	}

	return s.defaults.Clone()
}

func (s *session) Set(params *entity.RegistrationParameters) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = params.Clone()
}

func (s *session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil
}
