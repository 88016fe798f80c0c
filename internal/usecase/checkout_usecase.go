package usecase

import (
	"context"
	"time"

	"sprout/internal/domain/entity"
	"sprout/internal/domain/pricing"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// StartCheckoutInput opens a new checkout attempt for the visitor's cart.
// SessionToken, when present and valid, identifies a returning verified
// visitor and skips the phone verification step entirely.
type StartCheckoutInput struct {
	Cart         []entity.CartLine
	SessionToken string
	DeviceToken  string // Optional push target for the confirmation notification.
}

// AddressInput is the raw shipping address form submission.
type AddressInput struct {
	FullName     string `json:"fullName"`
	PhoneDigits  string `json:"phoneDigits"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2"`
	City         string `json:"city"`
	State        string `json:"state"`
	Pincode      string `json:"pincode"`
	Landmark     string `json:"landmark"`
}

// --- Output DTOs ---

// AddressPrefill carries the known-customer fields used to pre-populate the
// address form when verification was skipped.
type AddressPrefill struct {
	Name  string `json:"name"`
	City  string `json:"city"`
	State string `json:"state"`
}

// CheckoutView is the attempt state exposed after every operation.
type CheckoutView struct {
	AttemptID     uuid.UUID            `json:"attemptId"`
	State         entity.CheckoutState `json:"state"`
	Prefill       *AddressPrefill      `json:"prefill,omitempty"`
	Address       *entity.Address      `json:"address,omitempty"`
	Totals        *pricing.Totals      `json:"totals,omitempty"`       // Priced from the live cart; present from Review on.
	PaymentMethod string               `json:"paymentMethod"`          // Fixed: pay on delivery.
	Challenge     *ChallengeInfo       `json:"challenge,omitempty"`    // Present while a challenge is live.
	SessionToken  string               `json:"sessionToken,omitempty"` // Issued on successful verification.
	OrderID       *uuid.UUID           `json:"orderId,omitempty"`      // Present once Placed.
	RedirectDelay time.Duration        `json:"redirectDelay,omitempty"`
}

// CheckoutUsecase is the top-level orchestrator sequencing verification,
// address collection, review, and order placement for one attempt.
type CheckoutUsecase interface {
	// Start opens an attempt. With a valid session token it enters at
	// CollectAddress with prefill; otherwise at VerifyPhone.
	Start(ctx context.Context, input *StartCheckoutInput) (*CheckoutView, error)

	// Get returns the current attempt state.
	Get(ctx context.Context, attemptID uuid.UUID) (*CheckoutView, error)

	// RequestChallenge runs the verification step for an anonymous visitor.
	RequestChallenge(ctx context.Context, attemptID uuid.UUID, phoneDigits string) (*CheckoutView, error)

	// ResendChallenge re-dispatches the code once the cooldown allows.
	ResendChallenge(ctx context.Context, attemptID uuid.UUID) (*CheckoutView, error)

	// SubmitCode confirms the code and advances to CollectAddress.
	SubmitCode(ctx context.Context, attemptID uuid.UUID, code string) (*CheckoutView, error)

	// SubmitAddress validates the form and advances to Review. Field errors
	// are returned as an AppError whose details map field names to messages.
	SubmitAddress(ctx context.Context, attemptID uuid.UUID, input *AddressInput) (*CheckoutView, error)

	// Back returns from Review to CollectAddress.
	Back(ctx context.Context, attemptID uuid.UUID) (*CheckoutView, error)

	// Place runs Review -> Placing -> Placed. Placing is non-re-entrant:
	// a concurrent activation is rejected, not queued.
	Place(ctx context.Context, attemptID uuid.UUID) (*CheckoutView, error)

	// Abandon discards the attempt and all its in-memory state.
	Abandon(ctx context.Context, attemptID uuid.UUID) error
}
