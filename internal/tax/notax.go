package tax

import (
	"context"

	"github.com/shopspring/decimal"
)

// NoTaxCalculator returns zero tax for all calculations.
// Used for deployments in jurisdictions without sales tax.
type NoTaxCalculator struct{}

// NewNoTaxCalculator creates a new no-tax calculator.
func NewNoTaxCalculator() Calculator {
	return &NoTaxCalculator{}
}

// CalculateTax always returns zero tax.
func (c *NoTaxCalculator) CalculateTax(ctx context.Context, params TaxParams) (*TaxResult, error) {
	if params.TaxableCents < 0 {
		return nil, ErrNegativeAmount
	}
	return &TaxResult{TaxCents: 0, Rate: decimal.Zero}, nil
}
