// Package cart implements the in-memory cart store: the authoritative set of
// line items for one cart, plus the single applied-coupon slot. The store is
// the leaf of the pricing engine; it knows nothing about coupons' validity or
// shipping and tax rules.
package cart

import (
	"sync"
	"time"

	"github.com/dukerupert/vanir/internal/domain"
)

// Store holds the line items of a single cart, keyed by product ID and
// preserving insertion order. All methods are safe for concurrent use; a
// single mutex serializes the read-modify-write sequences on quantity state
// as well as coupon replacement.
type Store struct {
	mu        sync.Mutex
	items     map[string]*domain.LineItem
	order     []string // product IDs in insertion order
	coupon    *domain.AppliedCoupon
	createdAt time.Time
	updatedAt time.Time
}

// NewStore creates an empty cart store.
func NewStore() *Store {
	now := time.Now()
	return &Store{
		items:     make(map[string]*domain.LineItem),
		createdAt: now,
		updatedAt: now,
	}
}

// AddItem inserts a new line item or, when the product is already present,
// increments its quantity by the given amount. The unit price is captured on
// first add and immutable afterwards; a later add with a different price does
// not reprice the line.
func (s *Store) AddItem(params domain.AddItemParams) error {
	if params.Quantity < 1 {
		return domain.ErrInvalidQuantity
	}
	if params.UnitPriceCents < 0 {
		return domain.ErrInvalidPrice
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if item, ok := s.items[params.ProductID]; ok {
		item.Quantity += params.Quantity
		item.LineSubtotal = item.UnitPriceCents * int64(item.Quantity)
		s.touch()
		return nil
	}

	s.items[params.ProductID] = &domain.LineItem{
		ProductID:      params.ProductID,
		VariantLabel:   params.VariantLabel,
		UnitPriceCents: params.UnitPriceCents,
		Quantity:       params.Quantity,
		LineSubtotal:   params.UnitPriceCents * int64(params.Quantity),
	}
	s.order = append(s.order, params.ProductID)
	s.touch()
	return nil
}

// UpdateQuantity sets the quantity of an existing line item. A quantity
// below 1 removes the item instead. Returns ErrItemNotFound when the product
// is not in the cart.
func (s *Store) UpdateQuantity(productID string, quantity int) error {
	if quantity < 1 {
		s.RemoveItem(productID)
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[productID]
	if !ok {
		return domain.ErrItemNotFound
	}

	item.Quantity = quantity
	item.LineSubtotal = item.UnitPriceCents * int64(quantity)
	s.touch()
	return nil
}

// RemoveItem deletes the line item for a product. Removing an absent product
// is a no-op.
func (s *Store) RemoveItem(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[productID]; !ok {
		return
	}

	delete(s.items, productID)
	for i, id := range s.order {
		if id == productID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	s.touch()
}

// Clear empties the cart unconditionally, dropping any applied coupon with it.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = make(map[string]*domain.LineItem)
	s.order = nil
	s.coupon = nil
	s.touch()
}

// SubtotalCents returns the sum of line subtotals, 0 for an empty cart.
func (s *Store) SubtotalCents() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var subtotal int64
	for _, item := range s.items {
		subtotal += item.LineSubtotal
	}
	return subtotal
}

// Items returns a copy of the line items in insertion order.
func (s *Store) Items() []domain.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]domain.LineItem, 0, len(s.order))
	for _, id := range s.order {
		items = append(items, *s.items[id])
	}
	return items
}

// ItemCount returns the total quantity across all line items.
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

// SetCoupon replaces the applied coupon. Exactly one coupon may be held;
// the previous one, if any, is discarded.
func (s *Store) SetCoupon(c *domain.AppliedCoupon) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.coupon = c
	s.touch()
}

// ClearCoupon removes the applied coupon. Always succeeds.
func (s *Store) ClearCoupon() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.coupon = nil
	s.touch()
}

// Coupon returns the currently applied coupon, or nil.
func (s *Store) Coupon() *domain.AppliedCoupon {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.coupon
}

// CreatedAt returns when the cart was created.
func (s *Store) CreatedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.createdAt
}

// UpdatedAt returns when the cart was last mutated.
func (s *Store) UpdatedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.updatedAt
}

// touch records a mutation. Caller must hold s.mu.
func (s *Store) touch() {
	s.updatedAt = time.Now()
}
