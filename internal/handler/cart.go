package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dukerupert/vanir/internal/domain"
)

// CartHandler handles all cart-related routes.
type CartHandler struct {
	cartService domain.CartService
	secure      bool
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(cartService domain.CartService, secure bool) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		secure:      secure,
	}
}

// View handles GET /cart. A missing session or cart responds with an empty
// summary rather than an error, so the storefront can always render.
func (h *CartHandler) View(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sessionID := GetSessionIDFromCookie(r)
	if sessionID == "" {
		RespondJSON(w, http.StatusOK, cartSummaryView{Items: []lineItemView{}})
		return
	}

	cart, err := h.cartService.GetCart(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) || errors.Is(err, domain.ErrCartNotFound) {
			RespondJSON(w, http.StatusOK, cartSummaryView{Items: []lineItemView{}})
			return
		}
		RespondError(w, r, err)
		return
	}

	summary, err := h.cartService.GetCartSummary(ctx, cart.ID)
	if err != nil {
		RespondError(w, r, err)
		return
	}

	RespondJSON(w, http.StatusOK, toCartSummaryView(summary))
}

// addItemRequest is the JSON body for POST /cart/items.
type addItemRequest struct {
	ProductID      string `json:"product_id"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	Quantity       int    `json:"quantity"`
	VariantLabel   string `json:"variant_label"`
}

// AddItem handles POST /cart/items, creating the session and cart on first use.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondError(w, r, domain.Invalid("cart.add_item", "invalid JSON body"))
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	sessionID := GetSessionIDFromCookie(r)
	cart, newSessionID, err := h.cartService.GetOrCreateCart(ctx, sessionID)
	if err != nil {
		RespondError(w, r, err)
		return
	}
	if newSessionID != sessionID {
		SetSessionCookie(w, newSessionID, h.secure)
	}

	summary, err := h.cartService.AddItem(ctx, cart.ID, domain.AddItemParams{
		ProductID:      req.ProductID,
		UnitPriceCents: req.UnitPriceCents,
		Quantity:       req.Quantity,
		VariantLabel:   req.VariantLabel,
	})
	if err != nil {
		RespondError(w, r, err)
		return
	}

	RespondJSON(w, http.StatusOK, toCartSummaryView(summary))
}

// updateItemRequest is the JSON body for PATCH /cart/items/{productID}.
type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

// UpdateItem handles PATCH /cart/items/{productID}.
// A quantity below 1 removes the item.
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	cart, ok := h.requireCart(w, r)
	if !ok {
		return
	}

	var req updateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondError(w, r, domain.Invalid("cart.update_item", "invalid JSON body"))
		return
	}

	summary, err := h.cartService.UpdateItemQuantity(ctx, cart.ID, r.PathValue("productID"), req.Quantity)
	if err != nil {
		RespondError(w, r, err)
		return
	}

	RespondJSON(w, http.StatusOK, toCartSummaryView(summary))
}

// RemoveItem handles DELETE /cart/items/{productID}.
// Removing an absent item succeeds.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	cart, ok := h.requireCart(w, r)
	if !ok {
		return
	}

	summary, err := h.cartService.RemoveItem(ctx, cart.ID, r.PathValue("productID"))
	if err != nil {
		RespondError(w, r, err)
		return
	}

	RespondJSON(w, http.StatusOK, toCartSummaryView(summary))
}

// Clear handles DELETE /cart.
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	cart, ok := h.requireCart(w, r)
	if !ok {
		return
	}

	if err := h.cartService.ClearCart(ctx, cart.ID); err != nil {
		RespondError(w, r, err)
		return
	}

	RespondJSON(w, http.StatusOK, cartSummaryView{CartID: cart.ID, Items: []lineItemView{}})
}

// applyCouponRequest is the JSON body for POST /cart/coupon.
type applyCouponRequest struct {
	Code string `json:"code"`
}

// ApplyCoupon handles POST /cart/coupon. A newly applied coupon replaces
// any previously applied one.
func (h *CartHandler) ApplyCoupon(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	cart, ok := h.requireCart(w, r)
	if !ok {
		return
	}

	var req applyCouponRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondError(w, r, domain.Invalid("coupon.apply", "invalid JSON body"))
		return
	}

	applied, err := h.cartService.ApplyCoupon(ctx, cart.ID, req.Code)
	if err != nil {
		RespondError(w, r, err)
		return
	}

	RespondJSON(w, http.StatusOK, toCouponView(applied))
}

// RemoveCoupon handles DELETE /cart/coupon. Always succeeds for an
// existing cart, even when no coupon is applied.
func (h *CartHandler) RemoveCoupon(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	cart, ok := h.requireCart(w, r)
	if !ok {
		return
	}

	if err := h.cartService.RemoveCoupon(ctx, cart.ID); err != nil {
		RespondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// requireCart resolves the session cookie to an existing cart, responding
// with 404 when there is none.
func (h *CartHandler) requireCart(w http.ResponseWriter, r *http.Request) (*domain.Cart, bool) {
	sessionID := GetSessionIDFromCookie(r)
	if sessionID == "" {
		RespondError(w, r, domain.ErrCartNotFound)
		return nil, false
	}

	cart, err := h.cartService.GetCart(r.Context(), sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			RespondError(w, r, domain.ErrCartNotFound)
			return nil, false
		}
		RespondError(w, r, err)
		return nil, false
	}

	return cart, true
}
