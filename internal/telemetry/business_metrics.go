package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// BusinessMetrics holds Prometheus metrics for business-level observability
// of the pricing engine.
type BusinessMetrics struct {
	// Cart
	CartsCreated *prometheus.CounterVec
	CartUpdates  *prometheus.CounterVec
	CartsSwept   prometheus.Counter
	CartValue    prometheus.Histogram

	// Coupons
	CouponsApplied  *prometheus.CounterVec
	CouponsRejected *prometheus.CounterVec
	CouponsRemoved  prometheus.Counter

	// Quotes
	QuotesComputed prometheus.Counter
	QuoteValue     prometheus.Histogram
}

// NewBusinessMetrics creates and registers the engine's business metrics.
func NewBusinessMetrics(namespace string) *BusinessMetrics {
	if namespace == "" {
		namespace = "vanir"
	}

	return &BusinessMetrics{
		CartsCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "carts_created_total",
				Help:      "Total number of carts created",
			},
			[]string{"source"},
		),
		CartUpdates: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cart_updates_total",
				Help:      "Total number of cart mutations",
			},
			[]string{"operation"},
		),
		CartsSwept: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "carts_swept_total",
				Help:      "Total number of idle carts removed by the sweeper",
			},
		),
		CartValue: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "cart_value_cents",
				Help:      "Cart subtotal at quote time, in cents",
				Buckets:   prometheus.ExponentialBuckets(100, 4, 10),
			},
		),
		CouponsApplied: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "coupons_applied_total",
				Help:      "Total number of successful coupon applications",
			},
			[]string{"code"},
		),
		CouponsRejected: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "coupons_rejected_total",
				Help:      "Total number of rejected coupon applications",
			},
			[]string{"reason"},
		),
		CouponsRemoved: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "coupons_removed_total",
				Help:      "Total number of coupon removals",
			},
		),
		QuotesComputed: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "quotes_computed_total",
				Help:      "Total number of pricing snapshots computed",
			},
		),
		QuoteValue: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "quote_grand_total_cents",
				Help:      "Grand total of computed pricing snapshots, in cents",
				Buckets:   prometheus.ExponentialBuckets(100, 4, 10),
			},
		),
	}
}
