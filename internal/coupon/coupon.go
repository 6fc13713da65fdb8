// Package coupon provides the coupon registry and resolver: validating a
// submitted code against the registry and the current cart subtotal, and
// producing the immutable applied-coupon state or a typed rejection.
package coupon

import (
	"strings"

	"github.com/dukerupert/vanir/internal/domain"
)

// Registry is a read-only lookup from coupon code to its terms. The engine
// treats the registry as an external collaborator; implementations may be
// backed by static configuration (StaticRegistry) or a remote service.
type Registry interface {
	// Lookup returns the coupon for an already-normalized (uppercase) code.
	Lookup(code string) (domain.Coupon, bool)
}

// Resolver validates coupon codes against a registry and a subtotal.
type Resolver struct {
	registry Registry
}

// NewResolver creates a resolver backed by the given registry.
func NewResolver(registry Registry) *Resolver {
	return &Resolver{registry: registry}
}

// Apply validates code against the registry and the current subtotal.
// The code is normalized to uppercase before lookup. Returns
// domain.ErrCouponNotFound for unknown codes and *domain.BelowMinimumError
// (carrying the shortfall) when the subtotal does not qualify.
//
// A coupon with a zero discount rate and free shipping is valid; the
// discount amount is simply zero.
func (r *Resolver) Apply(code string, subtotalCents int64) (*domain.AppliedCoupon, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))

	c, ok := r.registry.Lookup(normalized)
	if !ok {
		return nil, domain.ErrCouponNotFound
	}

	if subtotalCents < c.MinimumSubtotalCents {
		return nil, &domain.BelowMinimumError{
			Code:                 c.Code,
			MinimumSubtotalCents: c.MinimumSubtotalCents,
			SubtotalCents:        subtotalCents,
		}
	}

	return &domain.AppliedCoupon{
		Code:         c.Code,
		DiscountRate: c.DiscountRate,
		FreeShipping: c.FreeShipping,
		Description:  c.Description,
	}, nil
}
