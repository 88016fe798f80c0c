// Package entity contains the core business objects of the project.
package entity

// CheckoutState is one step of the checkout attempt's state machine.
type CheckoutState string

const (
	CheckoutVerifyPhone    CheckoutState = "verify_phone"
	CheckoutCollectAddress CheckoutState = "collect_address"
	CheckoutReview         CheckoutState = "review"
	CheckoutPlacing        CheckoutState = "placing"
	CheckoutPlaced         CheckoutState = "placed"
)

// String representation (for logging).
func (s CheckoutState) String() string {
	return string(s)
}

// IsTerminal reports whether the attempt has completed.
func (s CheckoutState) IsTerminal() bool {
	return s == CheckoutPlaced
}

// checkoutTransitions enumerates the legal forward and backward moves.
// Verification is monotonic within an attempt: no edge re-enters
// VerifyPhone once it has been left.
var checkoutTransitions = map[CheckoutState][]CheckoutState{
	CheckoutVerifyPhone:    {CheckoutCollectAddress},
	CheckoutCollectAddress: {CheckoutReview},
	CheckoutReview:         {CheckoutCollectAddress, CheckoutPlacing},
	CheckoutPlacing:        {CheckoutPlaced, CheckoutReview},
}

// CanTransition reports whether moving from one checkout state to another
// is legal. Placing -> Review is the failure path of a placement attempt.
func CanTransition(from, to CheckoutState) bool {
	for _, next := range checkoutTransitions[from] {
		if next == to {
			return true
		}
	}

	return false
}
