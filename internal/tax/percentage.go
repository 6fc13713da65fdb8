package tax

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/dukerupert/vanir/internal/domain"
)

// PercentageCalculator calculates tax using a single flat percentage rate,
// rounded half-up to the minor unit.
type PercentageCalculator struct {
	rate decimal.Decimal
}

// NewPercentageCalculator creates a percentage-based tax calculator.
// The rate is a fraction, e.g. 0.14 for 14%.
func NewPercentageCalculator(rate float64) (Calculator, error) {
	d := domain.RateFromFloat(rate)
	if !domain.ValidRate(d) {
		return nil, ErrInvalidRate
	}
	return &PercentageCalculator{rate: d}, nil
}

// CalculateTax computes tax on the taxable amount using the configured rate.
func (c *PercentageCalculator) CalculateTax(ctx context.Context, params TaxParams) (*TaxResult, error) {
	if params.TaxableCents < 0 {
		return nil, ErrNegativeAmount
	}

	return &TaxResult{
		TaxCents: domain.ApplyRate(params.TaxableCents, c.rate),
		Rate:     c.rate,
	}, nil
}
