package shipping

import "context"

// ThresholdQuoter charges a fixed standard fee below a free-shipping
// threshold and nothing at or above it. The threshold is inclusive: a
// discounted subtotal exactly at the threshold ships free.
type ThresholdQuoter struct {
	freeThresholdCents int64
	standardFeeCents   int64
}

// NewThresholdQuoter creates a flat-fee quoter with a free-shipping threshold.
func NewThresholdQuoter(freeThresholdCents, standardFeeCents int64) (Quoter, error) {
	if freeThresholdCents < 0 || standardFeeCents < 0 {
		return nil, ErrInvalidFee
	}
	return &ThresholdQuoter{
		freeThresholdCents: freeThresholdCents,
		standardFeeCents:   standardFeeCents,
	}, nil
}

// Quote applies the threshold rule. An empty cart ships nothing and costs
// nothing; a free-shipping coupon waives the fee regardless of amount.
func (q *ThresholdQuoter) Quote(ctx context.Context, params QuoteParams) (*QuoteResult, error) {
	if params.SubtotalCents < 0 || params.DiscountedCents < 0 {
		return nil, ErrNegativeAmount
	}

	if params.SubtotalCents == 0 {
		return &QuoteResult{FeeCents: 0, Waived: false}, nil
	}
	if params.FreeShipping || params.DiscountedCents >= q.freeThresholdCents {
		return &QuoteResult{FeeCents: 0, Waived: true}, nil
	}

	return &QuoteResult{FeeCents: q.standardFeeCents, Waived: false}, nil
}
