package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Coupon is one entry of the coupon registry: a case-insensitive code
// mapping to a percentage discount, a minimum qualifying subtotal, and a
// free-shipping flag. A coupon with a zero discount rate and free shipping
// is valid; the discount amount is simply zero.
type Coupon struct {
	Code                 string
	DiscountRate         decimal.Decimal // fraction in [0,1]
	MinimumSubtotalCents int64
	FreeShipping         bool
	Description          string
}

// AppliedCoupon is the immutable applied-coupon state held by a cart.
// At most one is in effect at a time; applying a new coupon replaces it.
type AppliedCoupon struct {
	Code         string
	DiscountRate decimal.Decimal
	FreeShipping bool
	Description  string
}

// ErrCouponNotFound is returned when a submitted code is not in the registry.
var ErrCouponNotFound = &Error{Code: ENOTFOUND, Message: "Coupon code not found"}

// BelowMinimumError is returned when a coupon exists but the cart subtotal
// does not meet its minimum. It carries the shortfall so the caller can
// present "add X more to qualify".
type BelowMinimumError struct {
	Code                 string
	MinimumSubtotalCents int64
	SubtotalCents        int64
}

// ShortfallCents is the amount the subtotal is short of the minimum.
func (e *BelowMinimumError) ShortfallCents() int64 {
	return e.MinimumSubtotalCents - e.SubtotalCents
}

// Error implements the error interface.
func (e *BelowMinimumError) Error() string {
	return fmt.Sprintf("coupon %s requires a minimum subtotal of %d cents (%d more needed)",
		e.Code, e.MinimumSubtotalCents, e.ShortfallCents())
}
