// Package entity contains the core business objects of the project.
package entity

import "time"

// VerificationState is the phone verification step of a checkout attempt.
type VerificationState string

const (
	VerificationIdle          VerificationState = "idle"
	VerificationChallengeSent VerificationState = "challenge_sent"
	VerificationVerified      VerificationState = "verified"
)

// VerificationSession is the live challenge for one checkout attempt.
// At most one session exists per attempt; it is destroyed on successful
// confirmation or explicit restart. Only the bcrypt hash of the dispatched
// code is kept; the plaintext exists solely on the SMS channel.
type VerificationSession struct {
	PhoneDigits       string    `json:"phoneDigits"`       // The 10-digit number the code was sent to.
	CodeHash          string    `json:"codeHash"`          // bcrypt hash of the dispatched one-time code.
	AttemptsRemaining int       `json:"attemptsRemaining"` // Mismatches allowed before the challenge is burned.
	ExpiresAt         time.Time `json:"expiresAt"`         // After this instant the challenge can no longer be confirmed.
	ResendNotBefore   time.Time `json:"resendNotBefore"`   // Resend is rejected before this instant.
}

// Expired reports whether the challenge can no longer be confirmed.
func (s *VerificationSession) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// CanResend reports whether the resend cooldown has elapsed.
func (s *VerificationSession) CanResend(now time.Time) bool {
	return !now.Before(s.ResendNotBefore)
}
