package internal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, uint16(3000), cfg.Port)
	assert.Equal(t, 0.14, cfg.Pricing.TaxRate)
	assert.Equal(t, int64(50000), cfg.Pricing.FreeShippingThresholdCents)
	assert.Equal(t, int64(100), cfg.Pricing.StandardShippingFeeCents)
	assert.Equal(t, 30*24*time.Hour, cfg.Session.IdleTTL)
	assert.Equal(t, time.Hour, cfg.Session.SweepInterval)
}

func TestNewConfig_Overrides(t *testing.T) {
	t.Setenv("ENV", "prod")
	t.Setenv("PORT", "8080")
	t.Setenv("TAX_RATE", "0.08")
	t.Setenv("FREE_SHIPPING_THRESHOLD_CENTS", "75000")
	t.Setenv("STANDARD_SHIPPING_FEE_CENTS", "250")
	t.Setenv("CART_IDLE_TTL", "24h")
	t.Setenv("COUPON_FILE", "/etc/vanir/coupons.json")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, uint16(8080), cfg.Port)
	assert.Equal(t, 0.08, cfg.Pricing.TaxRate)
	assert.Equal(t, int64(75000), cfg.Pricing.FreeShippingThresholdCents)
	assert.Equal(t, int64(250), cfg.Pricing.StandardShippingFeeCents)
	assert.Equal(t, 24*time.Hour, cfg.Session.IdleTTL)
	assert.Equal(t, "/etc/vanir/coupons.json", cfg.Coupons.File)
}

func TestNewConfig_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("ENV", "staging")
	t.Setenv("LOG_LEVEL", "verbose")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestNewConfig_RejectsBadPricing(t *testing.T) {
	t.Setenv("TAX_RATE", "1.5")
	_, err := NewConfig()
	assert.Error(t, err)
}

func TestNewConfig_RejectsNegativeThreshold(t *testing.T) {
	t.Setenv("FREE_SHIPPING_THRESHOLD_CENTS", "-1")
	_, err := NewConfig()
	assert.Error(t, err)
}
