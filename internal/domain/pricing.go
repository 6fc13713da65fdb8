package domain

// PricingSnapshot is the immutable monetary breakdown of a cart, recomputed
// on every relevant change. All components are non-negative and
// GrandTotalCents = SubtotalAfterDiscountCents + ShippingCents + TaxCents.
type PricingSnapshot struct {
	SubtotalCents              int64
	DiscountCents              int64
	SubtotalAfterDiscountCents int64
	ShippingCents              int64
	TaxCents                   int64
	GrandTotalCents            int64
}
