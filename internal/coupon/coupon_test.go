package coupon_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukerupert/vanir/internal/coupon"
	"github.com/dukerupert/vanir/internal/domain"
)

func testRegistry(t *testing.T) *coupon.StaticRegistry {
	t.Helper()
	registry, err := coupon.NewStaticRegistry([]domain.Coupon{
		{
			Code:         "WELCOME10",
			DiscountRate: decimal.NewFromFloat(0.10),
			Description:  "10% off your first order",
		},
		{
			Code:                 "SAVE20",
			DiscountRate:         decimal.NewFromFloat(0.20),
			MinimumSubtotalCents: 25000,
			Description:          "20% off orders over $250",
		},
		{
			Code:         "FREESHIP",
			DiscountRate: decimal.Zero,
			FreeShipping: true,
			Description:  "Free shipping on any order",
		},
	})
	require.NoError(t, err)
	return registry
}

func TestResolver_Apply(t *testing.T) {
	resolver := coupon.NewResolver(testRegistry(t))

	tests := []struct {
		name          string
		code          string
		subtotalCents int64
		wantCode      string
		wantRate      decimal.Decimal
		wantFreeShip  bool
	}{
		{
			name:          "known code at qualifying subtotal",
			code:          "WELCOME10",
			subtotalCents: 1000,
			wantCode:      "WELCOME10",
			wantRate:      decimal.NewFromFloat(0.10),
		},
		{
			name:          "code is case-insensitive",
			code:          "welcome10",
			subtotalCents: 1000,
			wantCode:      "WELCOME10",
			wantRate:      decimal.NewFromFloat(0.10),
		},
		{
			name:          "surrounding whitespace is ignored",
			code:          "  Save20  ",
			subtotalCents: 25000,
			wantCode:      "SAVE20",
			wantRate:      decimal.NewFromFloat(0.20),
		},
		{
			name:          "zero-rate free-shipping coupon is valid",
			code:          "FREESHIP",
			subtotalCents: 100,
			wantCode:      "FREESHIP",
			wantRate:      decimal.Zero,
			wantFreeShip:  true,
		},
		{
			name:          "minimum subtotal boundary is inclusive",
			code:          "SAVE20",
			subtotalCents: 25000,
			wantCode:      "SAVE20",
			wantRate:      decimal.NewFromFloat(0.20),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			applied, err := resolver.Apply(tt.code, tt.subtotalCents)
			require.NoError(t, err)
			require.NotNil(t, applied)

			assert.Equal(t, tt.wantCode, applied.Code)
			assert.True(t, tt.wantRate.Equal(applied.DiscountRate),
				"rate: want %s, got %s", tt.wantRate, applied.DiscountRate)
			assert.Equal(t, tt.wantFreeShip, applied.FreeShipping)
		})
	}
}

func TestResolver_ApplyUnknownCode(t *testing.T) {
	resolver := coupon.NewResolver(testRegistry(t))

	applied, err := resolver.Apply("NOSUCHCODE", 100000)
	assert.Nil(t, applied)
	assert.ErrorIs(t, err, domain.ErrCouponNotFound)
}

func TestResolver_ApplyBelowMinimum(t *testing.T) {
	resolver := coupon.NewResolver(testRegistry(t))

	applied, err := resolver.Apply("SAVE20", 5000)
	assert.Nil(t, applied)

	var belowMin *domain.BelowMinimumError
	require.True(t, errors.As(err, &belowMin))
	assert.Equal(t, "SAVE20", belowMin.Code)
	assert.Equal(t, int64(25000), belowMin.MinimumSubtotalCents)
	assert.Equal(t, int64(5000), belowMin.SubtotalCents)
	assert.Equal(t, int64(20000), belowMin.ShortfallCents())
}

func TestNewStaticRegistry_Validation(t *testing.T) {
	tests := []struct {
		name     string
		coupons  []domain.Coupon
		wantCode string
	}{
		{
			name:     "empty code",
			coupons:  []domain.Coupon{{Code: "  ", DiscountRate: decimal.Zero}},
			wantCode: domain.EINVALID,
		},
		{
			name:     "rate above one",
			coupons:  []domain.Coupon{{Code: "BIG", DiscountRate: decimal.NewFromFloat(1.5)}},
			wantCode: domain.EINVALID,
		},
		{
			name:     "negative rate",
			coupons:  []domain.Coupon{{Code: "NEG", DiscountRate: decimal.NewFromFloat(-0.1)}},
			wantCode: domain.EINVALID,
		},
		{
			name: "negative minimum",
			coupons: []domain.Coupon{
				{Code: "MIN", DiscountRate: decimal.Zero, MinimumSubtotalCents: -1},
			},
			wantCode: domain.EINVALID,
		},
		{
			name: "duplicate code after normalization",
			coupons: []domain.Coupon{
				{Code: "DUP", DiscountRate: decimal.Zero},
				{Code: "dup", DiscountRate: decimal.Zero},
			},
			wantCode: domain.ECONFLICT,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry, err := coupon.NewStaticRegistry(tt.coupons)
			assert.Nil(t, registry)
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, domain.ErrorCode(err))
		})
	}
}

func TestNewStaticRegistry_NormalizesCodes(t *testing.T) {
	registry, err := coupon.NewStaticRegistry([]domain.Coupon{
		{Code: " spring24 ", DiscountRate: decimal.NewFromFloat(0.05)},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, registry.Len())

	c, ok := registry.Lookup("SPRING24")
	require.True(t, ok)
	assert.Equal(t, "SPRING24", c.Code)
}
