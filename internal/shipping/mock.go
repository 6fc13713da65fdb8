package shipping

import "context"

// MockQuoter is a test implementation of Quoter.
type MockQuoter struct {
	QuoteFunc func(ctx context.Context, params QuoteParams) (*QuoteResult, error)
}

// Quote delegates to the configured function or quotes zero.
func (m *MockQuoter) Quote(ctx context.Context, params QuoteParams) (*QuoteResult, error) {
	if m.QuoteFunc != nil {
		return m.QuoteFunc(ctx, params)
	}
	return &QuoteResult{}, nil
}
