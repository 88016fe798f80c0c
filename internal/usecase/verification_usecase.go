// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// --- Output DTOs ---

// ChallengeInfo describes a dispatched challenge to the caller.
type ChallengeInfo struct {
	PhoneDigits     string    // The number the code was sent to.
	ExpiresAt       time.Time // When the challenge stops being confirmable.
	ResendNotBefore time.Time // When the resend control unlocks.
	AttemptsAllowed int       // Mismatches allowed before the challenge is burned.
}

// VerificationResult is the output of a successful code confirmation.
type VerificationResult struct {
	Phone        string // Canonical E.164 phone number, the proof of possession.
	SessionToken string // Client-held verified-session token for future checkouts.
}

// VerificationUsecase drives the phone verification state machine:
// Idle -> ChallengeSent -> Verified, with resend looping on ChallengeSent
// and Restart returning to Idle ("change number").
type VerificationUsecase interface {
	// RequestChallenge validates the number, dispatches a one-time code, and
	// arms the resend cooldown.
	RequestChallenge(ctx context.Context, attemptID uuid.UUID, phoneDigits string) (*ChallengeInfo, error)

	// SubmitCode confirms the dispatched code. A mismatch keeps the challenge
	// alive with one fewer attempt; expiry requires a fresh RequestChallenge.
	SubmitCode(ctx context.Context, attemptID uuid.UUID, code string) (*VerificationResult, error)

	// Resend re-dispatches a fresh code for the same number once the cooldown
	// has elapsed, and resets the cooldown.
	Resend(ctx context.Context, attemptID uuid.UUID) (*ChallengeInfo, error)

	// Restart discards any live challenge so a different number can be entered.
	Restart(ctx context.Context, attemptID uuid.UUID) error
}
