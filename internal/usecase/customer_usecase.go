package usecase

import (
	"context"

	"sprout/internal/domain/entity"
)

// CustomerReconciler maps a verified phone number to exactly one customer
// record. Lookup is read-only; Reconcile creates the record on first contact.
type CustomerReconciler interface {
	// Lookup finds the customer for a canonical phone number. The boolean
	// result makes the found/not-found branch explicit at call sites.
	Lookup(ctx context.Context, phone string) (*entity.Customer, bool, error)

	// Reconcile returns the customer for the phone, creating one from the
	// fallback profile with a zeroed ledger when none exists. Calling it
	// repeatedly for the same phone yields the same customer identity.
	Reconcile(ctx context.Context, phone string, fallback entity.CustomerProfile) (*entity.Customer, error)
}
