package service

import (
	"context"
	"fmt"

	"github.com/dukerupert/vanir/internal/domain"
	"github.com/dukerupert/vanir/internal/pricing"
	"github.com/dukerupert/vanir/internal/telemetry"
)

// CheckoutService produces the pricing breakdown handed off to the
// (external) order-submission service and used for display.
type CheckoutService interface {
	// CalculateOrderTotal computes the complete breakdown for a cart:
	// discount, shipping, tax, and grand total. An empty cart yields an
	// all-zero snapshot; it is not an error.
	CalculateOrderTotal(ctx context.Context, cartID string) (*OrderTotal, error)
}

// OrderTotal is a pricing snapshot together with the line items and coupon
// it was computed from.
type OrderTotal struct {
	Snapshot   domain.PricingSnapshot
	Items      []domain.LineItem
	ItemCount  int
	CouponCode string
}

// checkoutService implements CheckoutService.
type checkoutService struct {
	carts      domain.CartService
	calculator *pricing.Calculator
	metrics    *telemetry.BusinessMetrics
}

// NewCheckoutService creates a CheckoutService. metrics may be nil (tests).
func NewCheckoutService(carts domain.CartService, calculator *pricing.Calculator, metrics *telemetry.BusinessMetrics) CheckoutService {
	return &checkoutService{
		carts:      carts,
		calculator: calculator,
		metrics:    metrics,
	}
}

// CalculateOrderTotal loads the cart summary and runs it through the
// pricing calculator.
func (s *checkoutService) CalculateOrderTotal(ctx context.Context, cartID string) (*OrderTotal, error) {
	summary, err := s.carts.GetCartSummary(ctx, cartID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	snapshot, err := s.calculator.ComputeOrderTotal(ctx, summary.SubtotalCents, summary.Coupon)
	if err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.QuotesComputed.Inc()
		s.metrics.CartValue.Observe(float64(snapshot.SubtotalCents))
		s.metrics.QuoteValue.Observe(float64(snapshot.GrandTotalCents))
	}

	couponCode := ""
	if summary.Coupon != nil {
		couponCode = summary.Coupon.Code
	}

	return &OrderTotal{
		Snapshot:   *snapshot,
		Items:      summary.Items,
		ItemCount:  summary.ItemCount,
		CouponCode: couponCode,
	}, nil
}
