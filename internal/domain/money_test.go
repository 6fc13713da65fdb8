package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/dukerupert/vanir/internal/domain"
)

func TestApplyRate(t *testing.T) {
	tests := []struct {
		name     string
		amount   int64
		rate     float64
		expected int64
	}{
		{name: "even product", amount: 25000, rate: 0.14, expected: 3500},
		{name: "half rounds up", amount: 25, rate: 0.14, expected: 4},      // 3.5
		{name: "below half rounds down", amount: 24, rate: 0.14, expected: 3}, // 3.36
		{name: "zero rate", amount: 99999, rate: 0, expected: 0},
		{name: "zero amount", amount: 0, rate: 0.5, expected: 0},
		{name: "full rate", amount: 777, rate: 1, expected: 777},
		{name: "ten percent", amount: 25000, rate: 0.10, expected: 2500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate := domain.RateFromFloat(tt.rate)
			assert.Equal(t, tt.expected, domain.ApplyRate(tt.amount, rate))
		})
	}
}

func TestValidRate(t *testing.T) {
	assert.True(t, domain.ValidRate(decimal.Zero))
	assert.True(t, domain.ValidRate(decimal.NewFromFloat(0.14)))
	assert.True(t, domain.ValidRate(decimal.NewFromInt(1)))
	assert.False(t, domain.ValidRate(decimal.NewFromFloat(-0.01)))
	assert.False(t, domain.ValidRate(decimal.NewFromFloat(1.01)))
}
