// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Customer is the durable account record keyed by phone number. Identity is
// phone-possession based, so Phone is the unique natural key used for
// reconciliation; it is stored in canonical E.164 form.
type Customer struct {
	ID            uuid.UUID  // The Global Unique Identifier for the customer.
	Name          string     // Display name captured at signup or from the first shipping address.
	Phone         string     // Canonical E.164 phone number; unique across all customers.
	Email         string     // Optional contact email.
	City          string     // Home city, used to prefill the address form.
	State         string     // Home state, used to prefill the address form.
	TotalOrders   int        // Lifetime number of placed orders.
	TotalSpent    int64      // Lifetime spend in whole currency units.
	LoyaltyPoints int64      // Accrued points; one point per 10 currency units spent.
	LastOrderDate *time.Time // When the most recent order was placed, nil before the first order.
	CreatedAt     time.Time  // Timestamp of when this customer record was created.
	UpdatedAt     time.Time  // Timestamp of the last modification.
}

// CustomerProfile carries the fallback identity fields used when a verified
// phone number has no customer record yet. The values come from the shipping
// address collected in the same checkout attempt.
type CustomerProfile struct {
	Name  string
	City  string
	State string
}

// RecordOrder folds a placed order into the customer's aggregate ledger.
// Points accrue at one per 10 currency units, rounded down, and are never
// recomputed retroactively.
func (c *Customer) RecordOrder(total int64, placedAt time.Time) {
	c.TotalOrders++
	c.TotalSpent += total
	c.LoyaltyPoints += total / 10
	c.LastOrderDate = &placedAt
}
