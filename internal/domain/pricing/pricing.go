// Package pricing turns a cart into a priced breakdown. Everything here is
// pure: no clocks, no stores, safe to call concurrently and repeatedly.
package pricing

import (
	"sprout/internal/domain/entity"
	domainerrors "sprout/internal/domain/errors"
)

// Totals is the priced breakdown of a cart.
type Totals struct {
	Subtotal    int64 `json:"subtotal"`
	DeliveryFee int64 `json:"deliveryFee"`
	Total       int64 `json:"total"`
}

// ComputeTotals prices the given cart lines. The delivery fee is waived when
// the subtotal reaches freeDeliveryThreshold; an empty cart prices to zero
// across the board. A non-positive quantity or negative unit price on any
// line is a validation error.
func ComputeTotals(lines []entity.CartLine, freeDeliveryThreshold, flatDeliveryFee int64) (Totals, error) {
	if len(lines) == 0 {
		return Totals{}, nil
	}

	var subtotal int64
	for _, line := range lines {
		if line.Quantity <= 0 {
			return Totals{}, domainerrors.ErrInvalidCartLine.WrapMessage("quantity must be positive")
		}
		if line.UnitPrice < 0 {
			return Totals{}, domainerrors.ErrInvalidCartLine.WrapMessage("unit price must not be negative")
		}
		subtotal += line.LineTotal()
	}

	var fee int64
	if subtotal < freeDeliveryThreshold {
		fee = flatDeliveryFee
	}

	return Totals{
		Subtotal:    subtotal,
		DeliveryFee: fee,
		Total:       subtotal + fee,
	}, nil
}
