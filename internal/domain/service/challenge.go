// Package service defines interfaces for domain services implemented by the
// infrastructure layer.
package service

import (
	"context"
	"errors"

	"sprout/internal/domain/entity"

	"github.com/google/uuid"
)

// Dispatch failure classes. The SMS channel must distinguish these so the
// verification flow can present distinct user-facing messages.
var (
	ErrDispatchRateLimited     = errors.New("challenge dispatch rate limited")
	ErrDispatchMalformedNumber = errors.New("challenge dispatch rejected number")
	ErrDispatchUnavailable     = errors.New("challenge dispatch service unavailable")
)

// ChallengeSender delivers a one-time code out of band. Implementations only
// prove phone possession; they never look up or create customers.
type ChallengeSender interface {
	// SendCode dispatches the plaintext code to the given 10-digit number.
	SendCode(ctx context.Context, phoneDigits, code string) error
}

// ErrSessionNotFound is returned by ChallengeStore when no live session
// exists for the attempt (never created, confirmed, or expired out of the store).
var ErrSessionNotFound = errors.New("verification session not found")

// ChallengeStore holds the live verification session of each checkout
// attempt. Entries carry the challenge TTL; expired entries behave as absent.
type ChallengeStore interface {
	// Put stores (or replaces) the session for an attempt.
	Put(ctx context.Context, attemptID uuid.UUID, session *entity.VerificationSession) error

	// Get returns the live session for an attempt.
	Get(ctx context.Context, attemptID uuid.UUID) (*entity.VerificationSession, error)

	// Delete removes the session, if any.
	Delete(ctx context.Context, attemptID uuid.UUID) error
}
