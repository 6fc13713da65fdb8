package domain

import (
	"context"
	"time"
)

// =============================================================================
// CART DOMAIN ERRORS
// =============================================================================

var (
	ErrCartNotFound    = &Error{Code: ENOTFOUND, Message: "Cart not found"}
	ErrItemNotFound    = &Error{Code: ENOTFOUND, Message: "Cart item not found"}
	ErrSessionNotFound = &Error{Code: ENOTFOUND, Message: "Session not found"}
	ErrInvalidQuantity = &Error{Code: EINVALID, Message: "Quantity must be greater than 0"}
	ErrInvalidPrice    = &Error{Code: EINVALID, Message: "Unit price must not be negative"}
)

// CartService provides business logic for shopping cart operations.
// Mutating operations on the same cart are serialized by the implementation;
// callers never need their own locking.
type CartService interface {
	// GetOrCreateCart retrieves an existing cart or creates a new session and cart.
	// Returns the cart, session ID (new or existing), and any error.
	GetOrCreateCart(ctx context.Context, sessionID string) (*Cart, string, error)

	// GetCart retrieves an existing cart by session ID.
	GetCart(ctx context.Context, sessionID string) (*Cart, error)

	// AddItem adds a product to the cart, or increments quantity if the
	// product is already present. The unit price is captured on first add
	// and immutable afterwards.
	AddItem(ctx context.Context, cartID string, params AddItemParams) (*CartSummary, error)

	// UpdateItemQuantity sets the quantity of a cart item.
	// A quantity below 1 removes the item.
	UpdateItemQuantity(ctx context.Context, cartID string, productID string, quantity int) (*CartSummary, error)

	// RemoveItem removes a product from the cart. Removing an absent
	// product is a no-op, not an error.
	RemoveItem(ctx context.Context, cartID string, productID string) (*CartSummary, error)

	// GetCartSummary retrieves a cart with all items and calculated totals.
	GetCartSummary(ctx context.Context, cartID string) (*CartSummary, error)

	// ClearCart removes all items and any applied coupon from a cart.
	ClearCart(ctx context.Context, cartID string) error

	// ApplyCoupon validates a coupon code against the cart's current
	// subtotal and applies it. A newly applied coupon replaces any
	// previously applied one.
	ApplyCoupon(ctx context.Context, cartID string, code string) (*AppliedCoupon, error)

	// RemoveCoupon clears the applied coupon. Always succeeds, even when
	// no coupon is applied.
	RemoveCoupon(ctx context.Context, cartID string) error

	// SweepIdle drops carts that have not been touched within maxIdle.
	// Returns the number of carts removed.
	SweepIdle(maxIdle time.Duration) int
}

// AddItemParams contains parameters for adding a line item to a cart.
type AddItemParams struct {
	ProductID      string
	UnitPriceCents int64
	Quantity       int
	VariantLabel   string
}

// Cart represents a lightweight cart view model.
type Cart struct {
	ID        string
	SessionID string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CartSummary aggregates cart information with items and calculated totals.
type CartSummary struct {
	Cart          Cart
	Items         []LineItem
	SubtotalCents int64
	ItemCount     int
	Coupon        *AppliedCoupon
}

// LineItem represents one product (plus variant) and its quantity within a
// cart, with its captured unit price and calculated line subtotal.
type LineItem struct {
	ProductID      string
	VariantLabel   string
	UnitPriceCents int64
	Quantity       int
	LineSubtotal   int64
}
