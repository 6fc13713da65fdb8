package shipping

import "context"

// Quoter defines the interface for shipping fee calculation.
// Implementations: ThresholdQuoter, MockQuoter
type Quoter interface {
	// Quote returns the shipping fee in cents for a cart.
	Quote(ctx context.Context, params QuoteParams) (*QuoteResult, error)
}

// QuoteParams contains the inputs shipping rules may consider.
type QuoteParams struct {
	// SubtotalCents is the cart subtotal before discount. A zero subtotal
	// means an empty cart and always quotes zero.
	SubtotalCents int64

	// DiscountedCents is the subtotal after discount; threshold rules are
	// evaluated against this amount.
	DiscountedCents int64

	// FreeShipping is set when the applied coupon waives shipping.
	FreeShipping bool
}

// QuoteResult contains the quoted fee and whether it was waived.
type QuoteResult struct {
	FeeCents int64
	Waived   bool
}
