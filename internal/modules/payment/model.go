package payment

import "github.com/google/uuid"

// Totals is the price breakdown for a cart.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Discount float64 `json:"discount"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// Receipt is the outcome of a settlement. The ID is a display reference for
// the customer copy; the ledger itself stores only the amounts.
type Receipt struct {
	ID       uuid.UUID `json:"id"`
	Subtotal float64   `json:"subtotal"`
	Discount float64   `json:"discount"`
	Tax      float64   `json:"tax"`
	Total    float64   `json:"total"`
}

// SettleRequest is the payload for settling the cart. When MemberID is set
// the discount rate comes from the member's tier and DiscountRate is ignored.
type SettleRequest struct {
	DiscountRate float64 `json:"discount_rate"`
	MemberID     *int    `json:"member_id,omitempty"`
}
