package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukerupert/vanir/internal/coupon"
	"github.com/dukerupert/vanir/internal/domain"
	"github.com/dukerupert/vanir/internal/service"
)

func newCartService(t *testing.T) domain.CartService {
	t.Helper()

	registry, err := coupon.NewStaticRegistry([]domain.Coupon{
		{Code: "WELCOME10", DiscountRate: decimal.NewFromFloat(0.10)},
		{Code: "SAVE20", DiscountRate: decimal.NewFromFloat(0.20), MinimumSubtotalCents: 25000},
		{Code: "FREESHIP", DiscountRate: decimal.Zero, FreeShipping: true},
	})
	require.NoError(t, err)

	return service.NewCartService(coupon.NewResolver(registry), nil)
}

func TestCartService_GetOrCreateCart(t *testing.T) {
	ctx := context.Background()
	svc := newCartService(t)

	// First call with no session creates both.
	created, sessionID, err := svc.GetOrCreateCart(ctx, "")
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.NotEmpty(t, sessionID)
	assert.NotEmpty(t, created.ID)

	// Same session returns the same cart.
	again, sameSession, err := svc.GetOrCreateCart(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, sessionID, sameSession)
	assert.Equal(t, created.ID, again.ID)

	// An unknown session ID is adopted and given a fresh cart.
	other, otherSession, err := svc.GetOrCreateCart(ctx, "visitor-abc")
	require.NoError(t, err)
	assert.Equal(t, "visitor-abc", otherSession)
	assert.NotEqual(t, created.ID, other.ID)
}

func TestCartService_GetCart(t *testing.T) {
	ctx := context.Background()
	svc := newCartService(t)

	_, err := svc.GetCart(ctx, "missing-session")
	assert.ErrorIs(t, err, service.ErrSessionNotFound)

	created, sessionID, err := svc.GetOrCreateCart(ctx, "")
	require.NoError(t, err)

	found, err := svc.GetCart(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
}

func TestCartService_AddItem(t *testing.T) {
	ctx := context.Background()
	svc := newCartService(t)

	created, _, err := svc.GetOrCreateCart(ctx, "")
	require.NoError(t, err)

	summary, err := svc.AddItem(ctx, created.ID, domain.AddItemParams{
		ProductID:      "sku-1",
		UnitPriceCents: 2500,
		Quantity:       2,
		VariantLabel:   "12oz",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5000), summary.SubtotalCents)
	assert.Equal(t, 2, summary.ItemCount)
	require.Len(t, summary.Items, 1)
	assert.Equal(t, "12oz", summary.Items[0].VariantLabel)

	// Missing product ID is rejected before touching the store.
	_, err = svc.AddItem(ctx, created.ID, domain.AddItemParams{
		ProductID:      "  ",
		UnitPriceCents: 100,
		Quantity:       1,
	})
	assert.ErrorIs(t, err, service.ErrMissingProduct)

	// Unknown cart ID.
	_, err = svc.AddItem(ctx, "nope", domain.AddItemParams{
		ProductID:      "sku-1",
		UnitPriceCents: 100,
		Quantity:       1,
	})
	assert.ErrorIs(t, err, service.ErrCartNotFound)
}

func TestCartService_UpdateAndRemove(t *testing.T) {
	ctx := context.Background()
	svc := newCartService(t)

	created, _, err := svc.GetOrCreateCart(ctx, "")
	require.NoError(t, err)

	_, err = svc.AddItem(ctx, created.ID, domain.AddItemParams{
		ProductID: "sku-1", UnitPriceCents: 1000, Quantity: 3,
	})
	require.NoError(t, err)

	summary, err := svc.UpdateItemQuantity(ctx, created.ID, "sku-1", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), summary.SubtotalCents)

	_, err = svc.UpdateItemQuantity(ctx, created.ID, "ghost", 2)
	assert.ErrorIs(t, err, service.ErrItemNotFound)

	// Quantity below 1 removes the line.
	summary, err = svc.UpdateItemQuantity(ctx, created.ID, "sku-1", 0)
	require.NoError(t, err)
	assert.Empty(t, summary.Items)

	// Remove is idempotent.
	summary, err = svc.RemoveItem(ctx, created.ID, "sku-1")
	require.NoError(t, err)
	assert.Empty(t, summary.Items)
}

func TestCartService_ApplyCouponReplacesPrevious(t *testing.T) {
	ctx := context.Background()
	svc := newCartService(t)

	created, _, err := svc.GetOrCreateCart(ctx, "")
	require.NoError(t, err)

	_, err = svc.AddItem(ctx, created.ID, domain.AddItemParams{
		ProductID: "sku-1", UnitPriceCents: 30000, Quantity: 1,
	})
	require.NoError(t, err)

	applied, err := svc.ApplyCoupon(ctx, created.ID, "welcome10")
	require.NoError(t, err)
	assert.Equal(t, "WELCOME10", applied.Code)

	// Applying a second coupon replaces the first; carts hold at most one.
	applied, err = svc.ApplyCoupon(ctx, created.ID, "SAVE20")
	require.NoError(t, err)
	assert.Equal(t, "SAVE20", applied.Code)

	summary, err := svc.GetCartSummary(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, summary.Coupon)
	assert.Equal(t, "SAVE20", summary.Coupon.Code)
}

func TestCartService_ApplyCouponFailureKeepsCurrentCoupon(t *testing.T) {
	ctx := context.Background()
	svc := newCartService(t)

	created, _, err := svc.GetOrCreateCart(ctx, "")
	require.NoError(t, err)

	_, err = svc.AddItem(ctx, created.ID, domain.AddItemParams{
		ProductID: "sku-1", UnitPriceCents: 5000, Quantity: 1,
	})
	require.NoError(t, err)

	_, err = svc.ApplyCoupon(ctx, created.ID, "WELCOME10")
	require.NoError(t, err)

	// SAVE20 requires a 25000 subtotal; the rejection must not disturb
	// the coupon already on the cart.
	_, err = svc.ApplyCoupon(ctx, created.ID, "SAVE20")
	var belowMin *domain.BelowMinimumError
	require.True(t, errors.As(err, &belowMin))
	assert.Equal(t, int64(20000), belowMin.ShortfallCents())

	_, err = svc.ApplyCoupon(ctx, created.ID, "BOGUS")
	assert.ErrorIs(t, err, service.ErrCouponNotFound)

	summary, err := svc.GetCartSummary(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, summary.Coupon)
	assert.Equal(t, "WELCOME10", summary.Coupon.Code)
}

func TestCartService_RemoveCoupon(t *testing.T) {
	ctx := context.Background()
	svc := newCartService(t)

	created, _, err := svc.GetOrCreateCart(ctx, "")
	require.NoError(t, err)

	_, err = svc.AddItem(ctx, created.ID, domain.AddItemParams{
		ProductID: "sku-1", UnitPriceCents: 1000, Quantity: 1,
	})
	require.NoError(t, err)

	_, err = svc.ApplyCoupon(ctx, created.ID, "FREESHIP")
	require.NoError(t, err)

	require.NoError(t, svc.RemoveCoupon(ctx, created.ID))

	summary, err := svc.GetCartSummary(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, summary.Coupon)

	// Removing with nothing applied still succeeds.
	require.NoError(t, svc.RemoveCoupon(ctx, created.ID))
}

func TestCartService_ClearCart(t *testing.T) {
	ctx := context.Background()
	svc := newCartService(t)

	created, _, err := svc.GetOrCreateCart(ctx, "")
	require.NoError(t, err)

	_, err = svc.AddItem(ctx, created.ID, domain.AddItemParams{
		ProductID: "sku-1", UnitPriceCents: 1000, Quantity: 2,
	})
	require.NoError(t, err)
	_, err = svc.ApplyCoupon(ctx, created.ID, "WELCOME10")
	require.NoError(t, err)

	require.NoError(t, svc.ClearCart(ctx, created.ID))

	summary, err := svc.GetCartSummary(ctx, created.ID)
	require.NoError(t, err)
	assert.Empty(t, summary.Items)
	assert.Equal(t, int64(0), summary.SubtotalCents)
	assert.Nil(t, summary.Coupon)
}

func TestCartService_SweepIdle(t *testing.T) {
	ctx := context.Background()
	svc := newCartService(t)

	_, staleSession, err := svc.GetOrCreateCart(ctx, "")
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	// A zero max-idle sweeps everything not touched this instant.
	removed := svc.SweepIdle(0)
	assert.Equal(t, 1, removed)

	_, err = svc.GetCart(ctx, staleSession)
	assert.ErrorIs(t, err, service.ErrSessionNotFound)

	// Fresh carts survive a generous window.
	_, activeSession, err := svc.GetOrCreateCart(ctx, "")
	require.NoError(t, err)

	removed = svc.SweepIdle(time.Hour)
	assert.Equal(t, 0, removed)

	_, err = svc.GetCart(ctx, activeSession)
	assert.NoError(t, err)
}
