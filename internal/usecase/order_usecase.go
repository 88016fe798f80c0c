package usecase

import (
	"context"

	"sprout/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// PlaceOrderInput carries everything the assembler needs to turn one
// checkout attempt into a persisted order. Totals are always recomputed
// from Cart; a stale total is never accepted from the caller.
type PlaceOrderInput struct {
	Cart          []entity.CartLine
	Address       entity.Address
	VerifiedPhone string           // Canonical E.164, proven by verification.
	Customer      *entity.Customer // Pre-resolved customer, nil to reconcile here.
	DeviceToken   string           // Optional push target for the confirmation notification.
}

// OrderUsecase assembles and persists orders and serves them back.
type OrderUsecase interface {
	// PlaceOrder recomputes totals, reconciles the customer, persists the
	// order snapshot, and applies the customer ledger update.
	PlaceOrder(ctx context.Context, input *PlaceOrderInput) (*entity.Order, error)

	// GetOrder retrieves a persisted order snapshot.
	GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// ListOrders retrieves the order history of one customer, newest first.
	ListOrders(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error)
}
