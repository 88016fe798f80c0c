// Package auth provides concrete implementations for verification-related domain services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"sprout/config"
	"sprout/internal/domain/service"
)

// sessionTTL is how long a verified-session token stays valid. Sessions are
// long-lived on purpose: the token replaces re-verifying the same phone on
// every visit.
const sessionTTL = time.Hour * 24 * 90

// jwtService is a concrete implementation of the SessionTokenService interface using the JWT standard.
type jwtService struct {
	secret string
	ttl    time.Duration
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.SessionTokenService, error) {
	if cfg.SecretKey.Session == "" {
		return nil, errors.New("session secret must be provided")
	}

	return &jwtService{
		secret: cfg.SecretKey.Session,
		ttl:    sessionTTL,
	}, nil
}

// Issue creates a signed token for a verified phone identity.
func (s *jwtService) Issue(session service.VerifiedSession) (string, error) {
	claims := jwt.MapClaims{
		"phone": session.Phone,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(s.ttl).Unix(),
	}
	// The customer claim appears once reconciliation has bound the phone to
	// a customer record.
	if session.CustomerID != uuid.Nil {
		claims["cust"] = session.CustomerID.String()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}

// Parse validates a token and returns the verified identity it carries.
func (s *jwtService) Parse(tokenString string) (*service.VerifiedSession, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	phone, ok := claims["phone"].(string)
	if !ok || phone == "" {
		return nil, jwt.ErrTokenInvalidClaims
	}

	session := &service.VerifiedSession{Phone: phone}
	if raw, ok := claims["cust"].(string); ok {
		customerID, parseErr := uuid.Parse(raw)
		if parseErr != nil {
			return nil, jwt.ErrTokenInvalidClaims
		}
		session.CustomerID = customerID
	}

	return session, nil
}
