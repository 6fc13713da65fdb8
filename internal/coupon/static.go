package coupon

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/dukerupert/vanir/internal/domain"
)

// StaticRegistry is a fixed in-memory lookup table, keyed by uppercase code.
type StaticRegistry struct {
	coupons map[string]domain.Coupon
}

// NewStaticRegistry builds a registry from a list of coupons. Codes are
// normalized to uppercase; discount rates outside [0,1] and negative
// minimums are rejected so the resolver can rely on coupon invariants.
func NewStaticRegistry(coupons []domain.Coupon) (*StaticRegistry, error) {
	table := make(map[string]domain.Coupon, len(coupons))

	for _, c := range coupons {
		code := strings.ToUpper(strings.TrimSpace(c.Code))
		if code == "" {
			return nil, domain.Invalid("coupon.registry", "coupon code must not be empty")
		}
		if !domain.ValidRate(c.DiscountRate) {
			return nil, domain.Errorf(domain.EINVALID, "coupon.registry",
				"coupon %s: discount rate must be a fraction in [0,1]", code)
		}
		if c.MinimumSubtotalCents < 0 {
			return nil, domain.Errorf(domain.EINVALID, "coupon.registry",
				"coupon %s: minimum subtotal must not be negative", code)
		}
		if _, exists := table[code]; exists {
			return nil, domain.Errorf(domain.ECONFLICT, "coupon.registry",
				"duplicate coupon code: %s", code)
		}
		c.Code = code
		table[code] = c
	}

	return &StaticRegistry{coupons: table}, nil
}

// Lookup implements Registry.
func (r *StaticRegistry) Lookup(code string) (domain.Coupon, bool) {
	c, ok := r.coupons[code]
	return c, ok
}

// Len returns the number of registered coupons.
func (r *StaticRegistry) Len() int {
	return len(r.coupons)
}

// couponFileEntry is the JSON shape of one registry entry on disk.
type couponFileEntry struct {
	Code                 string  `json:"code"`
	DiscountRate         float64 `json:"discount_rate"`
	MinimumSubtotalCents int64   `json:"minimum_subtotal_cents"`
	FreeShipping         bool    `json:"free_shipping"`
	Description          string  `json:"description"`
}

// LoadFile reads a JSON coupon file (an array of entries) into a registry.
func LoadFile(path string) (*StaticRegistry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read coupon file: %w", err)
	}

	var entries []couponFileEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse coupon file %s: %w", path, err)
	}

	coupons := make([]domain.Coupon, 0, len(entries))
	for _, e := range entries {
		coupons = append(coupons, domain.Coupon{
			Code:                 e.Code,
			DiscountRate:         domain.RateFromFloat(e.DiscountRate),
			MinimumSubtotalCents: e.MinimumSubtotalCents,
			FreeShipping:         e.FreeShipping,
			Description:          e.Description,
		})
	}

	return NewStaticRegistry(coupons)
}
