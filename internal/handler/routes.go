package handler

import (
	"net/http"

	"github.com/dukerupert/vanir/internal/router"
)

// RegisterRoutes wires all engine routes onto the router. The metrics
// handler is registered here too so the scrape endpoint shares the server.
func RegisterRoutes(r *router.Router, carts *CartHandler, checkout *CheckoutHandler, metricsHandler http.Handler) {
	r.Get("/healthz", Healthz)
	if metricsHandler != nil {
		r.Handle(http.MethodGet, "/metrics", metricsHandler)
	}

	r.Get("/cart", carts.View)
	r.Delete("/cart", carts.Clear)

	r.Post("/cart/items", carts.AddItem)
	r.Patch("/cart/items/{productID}", carts.UpdateItem)
	r.Delete("/cart/items/{productID}", carts.RemoveItem)

	r.Post("/cart/coupon", carts.ApplyCoupon)
	r.Delete("/cart/coupon", carts.RemoveCoupon)

	r.Get("/cart/quote", checkout.Quote)
}
