// Package entity contains the core business objects of the project.
package entity

// CartLine is a single purchasable position in the visitor's cart.
// Prices are whole currency units. Lines are mutable while the visitor
// shops and become an immutable snapshot once copied into an Order.
type CartLine struct {
	Name      string `json:"name"`      // Display name of the product.
	UnitPrice int64  `json:"unitPrice"` // Price per unit in whole currency units.
	Quantity  int    `json:"quantity"`  // Number of units; must be positive.
	ImageRef  string `json:"imageRef"`  // Reference to the product image shown in the cart.
}

// LineTotal returns unit price times quantity for this line.
func (l CartLine) LineTotal() int64 {
	return l.UnitPrice * int64(l.Quantity)
}

// CloneLines returns an independent copy of the given cart lines, used when
// snapshotting a cart into an order so later cart edits cannot reach it.
func CloneLines(lines []CartLine) []CartLine {
	if len(lines) == 0 {
		return nil
	}

	snapshot := make([]CartLine, len(lines))
	copy(snapshot, lines)

	return snapshot
}
