package tax

import (
	"context"

	"github.com/shopspring/decimal"
)

// Calculator defines the interface for tax calculation.
// Implementations: PercentageCalculator, NoTaxCalculator
type Calculator interface {
	// CalculateTax computes tax for the post-discount, pre-shipping amount.
	// Shipping is never taxed. Returns the tax amount in cents.
	CalculateTax(ctx context.Context, params TaxParams) (*TaxResult, error)
}

// TaxParams contains all information needed for tax calculation.
type TaxParams struct {
	// TaxableCents is the subtotal after discount. Shipping is excluded.
	TaxableCents int64
}

// TaxResult contains the calculated tax amount and the rate applied.
type TaxResult struct {
	TaxCents int64
	Rate     decimal.Decimal
}
