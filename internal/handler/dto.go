package handler

import (
	"github.com/dukerupert/vanir/internal/domain"
	"github.com/dukerupert/vanir/internal/service"
)

// Wire representations of the engine's view models. All monetary fields are
// integer minor units; rates are decimal strings to avoid float formatting.

type lineItemView struct {
	ProductID         string `json:"product_id"`
	VariantLabel      string `json:"variant_label,omitempty"`
	UnitPriceCents    int64  `json:"unit_price_cents"`
	Quantity          int    `json:"quantity"`
	LineSubtotalCents int64  `json:"line_subtotal_cents"`
}

type couponView struct {
	Code         string `json:"code"`
	DiscountRate string `json:"discount_rate"`
	FreeShipping bool   `json:"free_shipping"`
	Description  string `json:"description,omitempty"`
}

type cartSummaryView struct {
	CartID        string         `json:"cart_id"`
	Items         []lineItemView `json:"items"`
	SubtotalCents int64          `json:"subtotal_cents"`
	ItemCount     int            `json:"item_count"`
	Coupon        *couponView    `json:"coupon,omitempty"`
}

type snapshotView struct {
	SubtotalCents              int64 `json:"subtotal_cents"`
	DiscountCents              int64 `json:"discount_cents"`
	SubtotalAfterDiscountCents int64 `json:"subtotal_after_discount_cents"`
	ShippingCents              int64 `json:"shipping_cents"`
	TaxCents                   int64 `json:"tax_cents"`
	GrandTotalCents            int64 `json:"grand_total_cents"`
}

type quoteView struct {
	Snapshot   snapshotView   `json:"snapshot"`
	Items      []lineItemView `json:"items"`
	ItemCount  int            `json:"item_count"`
	CouponCode string         `json:"coupon_code,omitempty"`
}

func toLineItemViews(items []domain.LineItem) []lineItemView {
	views := make([]lineItemView, 0, len(items))
	for _, item := range items {
		views = append(views, lineItemView{
			ProductID:         item.ProductID,
			VariantLabel:      item.VariantLabel,
			UnitPriceCents:    item.UnitPriceCents,
			Quantity:          item.Quantity,
			LineSubtotalCents: item.LineSubtotal,
		})
	}
	return views
}

func toCouponView(c *domain.AppliedCoupon) *couponView {
	if c == nil {
		return nil
	}
	return &couponView{
		Code:         c.Code,
		DiscountRate: c.DiscountRate.String(),
		FreeShipping: c.FreeShipping,
		Description:  c.Description,
	}
}

func toCartSummaryView(summary *domain.CartSummary) cartSummaryView {
	return cartSummaryView{
		CartID:        summary.Cart.ID,
		Items:         toLineItemViews(summary.Items),
		SubtotalCents: summary.SubtotalCents,
		ItemCount:     summary.ItemCount,
		Coupon:        toCouponView(summary.Coupon),
	}
}

func toQuoteView(total *service.OrderTotal) quoteView {
	return quoteView{
		Snapshot: snapshotView{
			SubtotalCents:              total.Snapshot.SubtotalCents,
			DiscountCents:              total.Snapshot.DiscountCents,
			SubtotalAfterDiscountCents: total.Snapshot.SubtotalAfterDiscountCents,
			ShippingCents:              total.Snapshot.ShippingCents,
			TaxCents:                   total.Snapshot.TaxCents,
			GrandTotalCents:            total.Snapshot.GrandTotalCents,
		},
		Items:      toLineItemViews(total.Items),
		ItemCount:  total.ItemCount,
		CouponCode: total.CouponCode,
	}
}
