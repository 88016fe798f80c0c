// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus tracks an order through fulfilment.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// IsTerminal reports whether the status admits no further transitions.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// PaymentMethodPayOnDelivery is the only supported payment method; no online
// payment capture occurs at checkout.
const PaymentMethodPayOnDelivery = "pay_on_delivery"

// Order is the durable financial record of a sale. Items, address, and
// totals are snapshots computed at placement time and never recomputed, so
// historical orders stay exact regardless of later catalog price changes.
type Order struct {
	ID            uuid.UUID   // The Global Unique Identifier for the order.
	CustomerID    uuid.UUID   // The customer the order was reconciled to.
	CustomerPhone string      // Canonical E.164 phone at placement time.
	CustomerName  string      // Customer display name at placement time.
	Items         []CartLine  // Immutable snapshot of the cart lines.
	Address       Address     // Embedded snapshot of the shipping address.
	Subtotal      int64       // Sum of unit price times quantity over Items.
	DeliveryFee   int64       // Fee charged at placement; zero above the free threshold.
	Total         int64       // Subtotal plus delivery fee.
	PaymentMethod string      // Always PaymentMethodPayOnDelivery.
	Status        OrderStatus // Fulfilment status, starts at pending.
	CreatedAt     time.Time   // When the order was persisted.
	UpdatedAt     time.Time   // Timestamp of the last modification.
}
