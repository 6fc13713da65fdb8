package coupon

import "github.com/dukerupert/vanir/internal/domain"

// MockRegistry is a test implementation of Registry.
type MockRegistry struct {
	LookupFunc func(code string) (domain.Coupon, bool)
}

// Lookup delegates to the configured function, or reports a miss.
func (m *MockRegistry) Lookup(code string) (domain.Coupon, bool) {
	if m.LookupFunc != nil {
		return m.LookupFunc(code)
	}
	return domain.Coupon{}, false
}
