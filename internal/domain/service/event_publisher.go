package service

import (
	"context"
)

// OrderPlacedEvent is emitted after an order snapshot is durably persisted.
// Downstream consumers include the ledger-repair job that reconciles
// customer aggregates when the post-order customer update failed.
type OrderPlacedEvent struct {
	RequestID     string `json:"request_id,omitempty"` // For distributed tracing
	OrderID       string `json:"order_id"`
	CustomerID    string `json:"customer_id"`
	CustomerPhone string `json:"customer_phone"`
	Subtotal      int64  `json:"subtotal"`
	DeliveryFee   int64  `json:"delivery_fee"`
	Total         int64  `json:"total"`
	LedgerApplied bool   `json:"ledger_applied"` // False when the customer aggregate update needs repair.
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderPlaced publishes an order placement event for async processing
	PublishOrderPlaced(ctx context.Context, event *OrderPlacedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
