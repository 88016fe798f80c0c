// Package otp provides challenge store implementations backing the phone
// verification flow.
package otp

import (
	"context"
	"sync"
	"time"

	"sprout/internal/domain/entity"
	"sprout/internal/domain/service"

	"github.com/google/uuid"
)

// evictionGrace keeps an expired session readable for a short window so the
// flow can answer "expired" instead of "no challenge" right after the TTL.
const evictionGrace = 10 * time.Minute

// memoryStore is an in-process ChallengeStore used when no Redis is
// configured. Sessions do not survive a restart, which matches the
// in-memory lifetime of the checkout attempts they belong to.
type memoryStore struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*entity.VerificationSession
}

// NewMemoryStore is the constructor for memoryStore.
func NewMemoryStore() service.ChallengeStore {
	return &memoryStore{
		sessions: make(map[uuid.UUID]*entity.VerificationSession),
	}
}

// Put stores (or replaces) the session for an attempt.
func (s *memoryStore) Put(_ context.Context, attemptID uuid.UUID, session *entity.VerificationSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweepLocked(time.Now())
	s.sessions[attemptID] = session

	return nil
}

// Get returns the live session for an attempt.
func (s *memoryStore) Get(_ context.Context, attemptID uuid.UUID) (*entity.VerificationSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[attemptID]
	if !ok {
		return nil, service.ErrSessionNotFound
	}

	if time.Now().After(session.ExpiresAt.Add(evictionGrace)) {
		delete(s.sessions, attemptID)

		return nil, service.ErrSessionNotFound
	}

	return session, nil
}

// Delete removes the session, if any.
func (s *memoryStore) Delete(_ context.Context, attemptID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[attemptID]; !ok {
		return service.ErrSessionNotFound
	}

	delete(s.sessions, attemptID)

	return nil
}

// sweepLocked drops sessions past their eviction window. Callers must hold s.mu.
func (s *memoryStore) sweepLocked(now time.Time) {
	for id, session := range s.sessions {
		if now.After(session.ExpiresAt.Add(evictionGrace)) {
			delete(s.sessions, id)
		}
	}
}
