package handler

import (
	"net/http"

	"github.com/dukerupert/vanir/internal/domain"
	"github.com/dukerupert/vanir/internal/service"
)

// CheckoutHandler serves the pricing quote used for display and for handoff
// to the external order-submission service.
type CheckoutHandler struct {
	cartService     domain.CartService
	checkoutService service.CheckoutService
}

// NewCheckoutHandler creates a new checkout handler.
func NewCheckoutHandler(cartService domain.CartService, checkoutService service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{
		cartService:     cartService,
		checkoutService: checkoutService,
	}
}

// Quote handles GET /cart/quote. An empty or missing cart yields an
// all-zero snapshot.
func (h *CheckoutHandler) Quote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sessionID := GetSessionIDFromCookie(r)
	if sessionID == "" {
		RespondJSON(w, http.StatusOK, quoteView{Items: []lineItemView{}})
		return
	}

	cart, err := h.cartService.GetCart(ctx, sessionID)
	if err != nil {
		RespondJSON(w, http.StatusOK, quoteView{Items: []lineItemView{}})
		return
	}

	total, err := h.checkoutService.CalculateOrderTotal(ctx, cart.ID)
	if err != nil {
		RespondError(w, r, err)
		return
	}

	RespondJSON(w, http.StatusOK, toQuoteView(total))
}
