package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dukerupert/vanir/internal/cart"
	"github.com/dukerupert/vanir/internal/coupon"
	"github.com/dukerupert/vanir/internal/domain"
	"github.com/dukerupert/vanir/internal/telemetry"
)

// cartEntry binds one cart store to its owning session.
type cartEntry struct {
	id        string
	sessionID string
	store     *cart.Store
}

// cartService implements domain.CartService on top of in-memory, session
// scoped cart stores. The outer map is guarded by its own lock; mutations of
// a single cart are serialized by that cart's store.
type cartService struct {
	mu       sync.RWMutex
	carts    map[string]*cartEntry // cart ID -> entry
	sessions map[string]string     // session ID -> cart ID

	resolver *coupon.Resolver
	metrics  *telemetry.BusinessMetrics
}

// NewCartService creates a CartService. metrics may be nil (tests).
func NewCartService(resolver *coupon.Resolver, metrics *telemetry.BusinessMetrics) domain.CartService {
	return &cartService{
		carts:    make(map[string]*cartEntry),
		sessions: make(map[string]string),
		resolver: resolver,
		metrics:  metrics,
	}
}

// GetOrCreateCart retrieves the cart for a session, creating the session
// and cart when needed. Returns the cart, the session ID (new or existing),
// and any error.
func (s *cartService) GetOrCreateCart(ctx context.Context, sessionID string) (*domain.Cart, string, error) {
	if sessionID != "" {
		s.mu.RLock()
		cartID, ok := s.sessions[sessionID]
		if ok {
			entry := s.carts[cartID]
			s.mu.RUnlock()
			return entryToCart(entry), sessionID, nil
		}
		s.mu.RUnlock()
	}

	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Re-check under the write lock; another request may have won the race.
	if cartID, ok := s.sessions[sessionID]; ok {
		return entryToCart(s.carts[cartID]), sessionID, nil
	}

	entry := &cartEntry{
		id:        uuid.NewString(),
		sessionID: sessionID,
		store:     cart.NewStore(),
	}
	s.carts[entry.id] = entry
	s.sessions[sessionID] = entry.id

	if s.metrics != nil {
		s.metrics.CartsCreated.WithLabelValues("session").Inc()
	}

	return entryToCart(entry), sessionID, nil
}

// GetCart retrieves an existing cart by session ID.
func (s *cartService) GetCart(ctx context.Context, sessionID string) (*domain.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cartID, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return entryToCart(s.carts[cartID]), nil
}

// AddItem adds a product to the cart or increments quantity if present.
func (s *cartService) AddItem(ctx context.Context, cartID string, params domain.AddItemParams) (*domain.CartSummary, error) {
	if strings.TrimSpace(params.ProductID) == "" {
		return nil, ErrMissingProduct
	}

	entry, err := s.entry(cartID)
	if err != nil {
		return nil, err
	}

	if err := entry.store.AddItem(params); err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.CartUpdates.WithLabelValues("add_item").Inc()
	}

	return s.summarize(entry), nil
}

// UpdateItemQuantity sets the quantity of a cart item.
// A quantity below 1 removes the item.
func (s *cartService) UpdateItemQuantity(ctx context.Context, cartID string, productID string, quantity int) (*domain.CartSummary, error) {
	entry, err := s.entry(cartID)
	if err != nil {
		return nil, err
	}

	if err := entry.store.UpdateQuantity(productID, quantity); err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.CartUpdates.WithLabelValues("update_quantity").Inc()
	}

	return s.summarize(entry), nil
}

// RemoveItem removes a product from the cart. A no-op when absent.
func (s *cartService) RemoveItem(ctx context.Context, cartID string, productID string) (*domain.CartSummary, error) {
	entry, err := s.entry(cartID)
	if err != nil {
		return nil, err
	}

	entry.store.RemoveItem(productID)

	if s.metrics != nil {
		s.metrics.CartUpdates.WithLabelValues("remove_item").Inc()
	}

	return s.summarize(entry), nil
}

// GetCartSummary retrieves a cart with all items and calculated totals.
func (s *cartService) GetCartSummary(ctx context.Context, cartID string) (*domain.CartSummary, error) {
	entry, err := s.entry(cartID)
	if err != nil {
		return nil, err
	}
	return s.summarize(entry), nil
}

// ClearCart removes all items and any applied coupon from a cart.
func (s *cartService) ClearCart(ctx context.Context, cartID string) error {
	entry, err := s.entry(cartID)
	if err != nil {
		return err
	}

	entry.store.Clear()

	if s.metrics != nil {
		s.metrics.CartUpdates.WithLabelValues("clear").Inc()
	}

	return nil
}

// ApplyCoupon validates a code against the cart's current subtotal and
// applies it, replacing any previously applied coupon.
func (s *cartService) ApplyCoupon(ctx context.Context, cartID string, code string) (*domain.AppliedCoupon, error) {
	entry, err := s.entry(cartID)
	if err != nil {
		return nil, err
	}

	applied, err := s.resolver.Apply(code, entry.store.SubtotalCents())
	if err != nil {
		if s.metrics != nil {
			s.metrics.CouponsRejected.WithLabelValues(rejectionReason(err)).Inc()
		}
		return nil, err
	}

	entry.store.SetCoupon(applied)

	if s.metrics != nil {
		s.metrics.CouponsApplied.WithLabelValues(applied.Code).Inc()
	}

	return applied, nil
}

// RemoveCoupon clears the applied coupon unconditionally.
func (s *cartService) RemoveCoupon(ctx context.Context, cartID string) error {
	entry, err := s.entry(cartID)
	if err != nil {
		return err
	}

	entry.store.ClearCoupon()

	if s.metrics != nil {
		s.metrics.CouponsRemoved.Inc()
	}

	return nil
}

// SweepIdle drops carts not touched within maxIdle and returns how many
// were removed.
func (s *cartService) SweepIdle(maxIdle time.Duration) int {
	cutoff := time.Now().Add(-maxIdle)

	s.mu.Lock()
	defer s.mu.Unlock()

	var removed int
	for id, entry := range s.carts {
		if entry.store.UpdatedAt().Before(cutoff) {
			delete(s.carts, id)
			delete(s.sessions, entry.sessionID)
			removed++
		}
	}

	if removed > 0 && s.metrics != nil {
		s.metrics.CartsSwept.Add(float64(removed))
	}

	return removed
}

// entry looks up a cart by ID.
func (s *cartService) entry(cartID string) (*cartEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.carts[cartID]
	if !ok {
		return nil, ErrCartNotFound
	}
	return entry, nil
}

// summarize builds the cart view model with calculated totals.
func (s *cartService) summarize(entry *cartEntry) *domain.CartSummary {
	items := entry.store.Items()

	var subtotal int64
	var itemCount int
	for _, item := range items {
		subtotal += item.LineSubtotal
		itemCount += item.Quantity
	}

	return &domain.CartSummary{
		Cart:          *entryToCart(entry),
		Items:         items,
		SubtotalCents: subtotal,
		ItemCount:     itemCount,
		Coupon:        entry.store.Coupon(),
	}
}

func entryToCart(entry *cartEntry) *domain.Cart {
	return &domain.Cart{
		ID:        entry.id,
		SessionID: entry.sessionID,
		CreatedAt: entry.store.CreatedAt(),
		UpdatedAt: entry.store.UpdatedAt(),
	}
}

// rejectionReason maps coupon resolver errors to a metrics label.
func rejectionReason(err error) string {
	var belowMin *domain.BelowMinimumError
	switch {
	case errors.Is(err, domain.ErrCouponNotFound):
		return "not_found"
	case errors.As(err, &belowMin):
		return "below_minimum"
	default:
		return "other"
	}
}
