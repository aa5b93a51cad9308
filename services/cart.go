package services

import (
	"sync"

	"github.com/tastetrack/ordering/models"
)

// ErrDifferentRestaurant is returned when an add would mix restaurants in
// one cart. Callers check for it to offer a cart replacement instead of a
// plain rejection.
var ErrDifferentRestaurant = models.NewValidationError("cart already holds items from another restaurant")

// CartEntry pairs a menu item snapshot with a quantity. The snapshot keeps
// the price that was current when the item was first added.
type CartEntry struct {
	Item     models.MenuItem `json:"item"`
	Quantity int             `json:"quantity"`
}

// Cart is the pre-submission collection of chosen items for one prospective
// order. Entries keep insertion order for display; at most one entry exists
// per menu item id. A Cart is not safe for concurrent use on its own; go
// through a CartStore for that.
type Cart struct {
	entries []CartEntry
}

// AddItem merges quantity into an existing entry for the same item id, or
// appends a new entry. Adding an item from a different restaurant than the
// cart's current one is rejected; callers offer the user a cart replacement
// instead.
func (c *Cart) AddItem(item models.MenuItem, quantity int) error {
	if quantity < 1 {
		return models.NewValidationError("quantity must be at least 1")
	}
	if len(c.entries) > 0 && c.entries[0].Item.RestaurantID != item.RestaurantID {
		return ErrDifferentRestaurant
	}
	for i := range c.entries {
		if c.entries[i].Item.ID == item.ID {
			c.entries[i].Quantity += quantity
			return nil
		}
	}
	c.entries = append(c.entries, CartEntry{Item: item, Quantity: quantity})
	return nil
}

// RemoveItem deletes the entry for itemID. Removing an absent item is a
// no-op, not an error.
func (c *Cart) RemoveItem(itemID string) {
	for i := range c.entries {
		if c.entries[i].Item.ID == itemID {
			c.entries = append(c.entries[:i], c.entries[i+1:]...)
			return
		}
	}
}

// SetQuantity sets the entry's quantity exactly. A quantity of zero or less
// removes the entry. Absent items are a no-op.
func (c *Cart) SetQuantity(itemID string, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(itemID)
		return
	}
	for i := range c.entries {
		if c.entries[i].Item.ID == itemID {
			c.entries[i].Quantity = quantity
			return
		}
	}
}

// Clear empties the cart unconditionally.
func (c *Cart) Clear() {
	c.entries = nil
}

// Entries returns a copy of the cart contents in insertion order.
func (c *Cart) Entries() []CartEntry {
	out := make([]CartEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

func (c *Cart) IsEmpty() bool {
	return len(c.entries) == 0
}

// TotalItems is the sum of all entry quantities.
func (c *Cart) TotalItems() int {
	total := 0
	for _, e := range c.entries {
		total += e.Quantity
	}
	return total
}

// TotalPrice is the sum of price times quantity over all entries, using the
// prices captured at add time.
func (c *Cart) TotalPrice() float64 {
	total := 0.0
	for _, e := range c.entries {
		total += e.Item.Price * float64(e.Quantity)
	}
	return total
}

// RestaurantID is the restaurant of the cart's first entry, empty for an
// empty cart.
func (c *Cart) RestaurantID() string {
	if len(c.entries) == 0 {
		return ""
	}
	return c.entries[0].Item.RestaurantID
}

// CartStore owns every live cart, keyed by session. It is handed to the
// controllers and the checkout service explicitly; there is no package-level
// instance. All mutations go through the store's lock because carts are
// driven by HTTP handlers, not a single UI thread.
type CartStore struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

func NewCartStore() *CartStore {
	return &CartStore{carts: make(map[string]*Cart)}
}

func (s *CartStore) cart(sessionKey string) *Cart {
	c, ok := s.carts[sessionKey]
	if !ok {
		c = &Cart{}
		s.carts[sessionKey] = c
	}
	return c
}

func (s *CartStore) AddItem(sessionKey string, item models.MenuItem, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart(sessionKey).AddItem(item, quantity)
}

func (s *CartStore) RemoveItem(sessionKey, itemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart(sessionKey).RemoveItem(itemID)
}

func (s *CartStore) SetQuantity(sessionKey, itemID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart(sessionKey).SetQuantity(itemID, quantity)
}

func (s *CartStore) Clear(sessionKey string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart(sessionKey).Clear()
}

// Replace throws away the session's cart and starts a fresh one holding only
// the given item. Used when the user confirms switching restaurants.
func (s *CartStore) Replace(sessionKey string, item models.MenuItem, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.cart(sessionKey)
	c.Clear()
	return c.AddItem(item, quantity)
}

// Snapshot returns a value copy of the session's cart. Checkout builds its
// draft from a snapshot so a submission always reflects the cart as it was
// at the moment of submission.
func (s *CartStore) Snapshot(sessionKey string) *Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return &Cart{entries: s.cart(sessionKey).Entries()}
}

func (s *CartStore) TotalItems(sessionKey string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart(sessionKey).TotalItems()
}

func (s *CartStore) TotalPrice(sessionKey string) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart(sessionKey).TotalPrice()
}
