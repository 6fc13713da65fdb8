// Package pricing turns {subtotal, applied coupon} into a full monetary
// breakdown, applying the discount, shipping-threshold, and tax rules in a
// fixed order. The calculator is pure: it takes an immutable snapshot of its
// inputs and performs no I/O, so it needs no locking even when the hosting
// cart is shared.
package pricing

import (
	"context"

	"github.com/dukerupert/vanir/internal/domain"
	"github.com/dukerupert/vanir/internal/shipping"
	"github.com/dukerupert/vanir/internal/tax"
)

// Calculator composes the tax calculator and shipping quoter into the
// canonical order-total computation.
type Calculator struct {
	tax      tax.Calculator
	shipping shipping.Quoter
}

// NewCalculator creates a pricing calculator from its two collaborators.
func NewCalculator(taxCalc tax.Calculator, quoter shipping.Quoter) *Calculator {
	return &Calculator{tax: taxCalc, shipping: quoter}
}

// ComputeOrderTotal produces the pricing snapshot for a subtotal and an
// optional applied coupon:
//
//  1. discount = subtotal x coupon rate (0 without a coupon)
//  2. discounted = subtotal - discount
//  3. shipping = 0 for an empty cart, 0 when waived by coupon or threshold,
//     else the standard fee
//  4. tax on the discounted amount; shipping is not taxed
//  5. grand total = discounted + shipping + tax
//
// The function is total over its documented domain. A negative subtotal or a
// coupon rate outside [0,1] is a contract violation by the caller and aborts
// with an EINTERNAL precondition error.
func (c *Calculator) ComputeOrderTotal(ctx context.Context, subtotalCents int64, coupon *domain.AppliedCoupon) (*domain.PricingSnapshot, error) {
	const op = "pricing.compute_order_total"

	if subtotalCents < 0 {
		return nil, domain.Precondition(op, "negative subtotal: %d", subtotalCents)
	}

	var discountCents int64
	freeShipping := false
	if coupon != nil {
		if !domain.ValidRate(coupon.DiscountRate) {
			return nil, domain.Precondition(op, "coupon %s: discount rate outside [0,1]", coupon.Code)
		}
		discountCents = domain.ApplyRate(subtotalCents, coupon.DiscountRate)
		freeShipping = coupon.FreeShipping
	}

	// Rate is bounded [0,1], so the discount can never exceed the subtotal.
	discountedCents := subtotalCents - discountCents

	quote, err := c.shipping.Quote(ctx, shipping.QuoteParams{
		SubtotalCents:   subtotalCents,
		DiscountedCents: discountedCents,
		FreeShipping:    freeShipping,
	})
	if err != nil {
		return nil, domain.WrapError(err, domain.EINTERNAL, op, "failed to quote shipping")
	}

	taxResult, err := c.tax.CalculateTax(ctx, tax.TaxParams{TaxableCents: discountedCents})
	if err != nil {
		return nil, domain.WrapError(err, domain.EINTERNAL, op, "failed to calculate tax")
	}

	return &domain.PricingSnapshot{
		SubtotalCents:              subtotalCents,
		DiscountCents:              discountCents,
		SubtotalAfterDiscountCents: discountedCents,
		ShippingCents:              quote.FeeCents,
		TaxCents:                   taxResult.TaxCents,
		GrandTotalCents:            discountedCents + quote.FeeCents + taxResult.TaxCents,
	}, nil
}
