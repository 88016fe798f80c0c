package service

import "github.com/google/uuid"

// VerifiedSession is the identity a returning visitor presents at checkout
// entry: proof that this phone number was verified, and, once the first
// order reconciled it, which customer it belongs to.
type VerifiedSession struct {
	CustomerID uuid.UUID // Zero until a customer record exists for the phone.
	Phone      string    // Canonical E.164 phone number.
}

// SessionTokenService mints and validates the client-held verified-session
// tokens. The client keeps the token; the server stores nothing.
type SessionTokenService interface {
	// Issue creates a signed token for the given verified identity.
	Issue(session VerifiedSession) (string, error)

	// Parse validates a token and returns the verified identity it carries.
	Parse(token string) (*VerifiedSession, error)
}
