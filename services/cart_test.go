package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tastetrack/ordering/models"
)

func menuItem(id, restaurantID string, price float64) models.MenuItem {
	return models.MenuItem{
		ID:           id,
		Name:         "Item " + id,
		Price:        price,
		RestaurantID: restaurantID,
	}
}

func TestCartAddMergesByItemID(t *testing.T) {
	cart := &Cart{}

	assert.NoError(t, cart.AddItem(menuItem("1", "1", 12.99), 2))
	assert.NoError(t, cart.AddItem(menuItem("2", "1", 9.99), 1))
	assert.NoError(t, cart.AddItem(menuItem("1", "1", 12.99), 3))

	entries := cart.Entries()
	assert.Len(t, entries, 2)
	assert.Equal(t, "1", entries[0].Item.ID)
	assert.Equal(t, 5, entries[0].Quantity)
	assert.Equal(t, "2", entries[1].Item.ID)
	assert.Equal(t, 1, entries[1].Quantity)
}

func TestCartNeverHoldsDuplicateIDs(t *testing.T) {
	cart := &Cart{}
	ops := []func(){
		func() { _ = cart.AddItem(menuItem("1", "1", 5), 1) },
		func() { _ = cart.AddItem(menuItem("2", "1", 5), 2) },
		func() { cart.SetQuantity("1", 4) },
		func() { _ = cart.AddItem(menuItem("1", "1", 5), 1) },
		func() { cart.RemoveItem("2") },
		func() { _ = cart.AddItem(menuItem("2", "1", 5), 1) },
		func() { _ = cart.AddItem(menuItem("2", "1", 5), 1) },
	}

	for _, op := range ops {
		op()
		seen := map[string]bool{}
		for _, e := range cart.Entries() {
			assert.False(t, seen[e.Item.ID], "duplicate entry for item %s", e.Item.ID)
			seen[e.Item.ID] = true
		}
	}
}

func TestCartTotals(t *testing.T) {
	cart := &Cart{}
	assert.Equal(t, 0, cart.TotalItems())
	assert.Equal(t, 0.0, cart.TotalPrice())

	assert.NoError(t, cart.AddItem(menuItem("1", "1", 12.99), 2))
	assert.NoError(t, cart.AddItem(menuItem("2", "1", 9.99), 1))

	assert.Equal(t, 3, cart.TotalItems())
	assert.InDelta(t, 35.97, cart.TotalPrice(), 1e-9)
}

func TestCartSetQuantity(t *testing.T) {
	cart := &Cart{}
	assert.NoError(t, cart.AddItem(menuItem("1", "1", 5), 2))

	cart.SetQuantity("1", 3)
	assert.Equal(t, 3, cart.Entries()[0].Quantity, "quantity is set, not added")

	cart.SetQuantity("1", 0)
	assert.True(t, cart.IsEmpty())

	assert.NoError(t, cart.AddItem(menuItem("1", "1", 5), 2))
	cart.SetQuantity("1", -5)
	assert.True(t, cart.IsEmpty())

	// Absent item is a no-op.
	cart.SetQuantity("404", 3)
	assert.True(t, cart.IsEmpty())
}

func TestCartRemoveAbsentIsNoop(t *testing.T) {
	cart := &Cart{}
	assert.NoError(t, cart.AddItem(menuItem("1", "1", 5), 1))
	cart.RemoveItem("404")
	assert.Equal(t, 1, cart.TotalItems())
}

func TestCartRejectsSecondRestaurant(t *testing.T) {
	cart := &Cart{}
	assert.NoError(t, cart.AddItem(menuItem("1", "1", 5), 1))

	err := cart.AddItem(menuItem("9", "2", 5), 1)
	assert.ErrorIs(t, err, ErrDifferentRestaurant)
	assert.Equal(t, 1, cart.TotalItems(), "rejected add must not change the cart")
	assert.Equal(t, "1", cart.RestaurantID())
}

func TestCartAddRejectsNonPositiveQuantity(t *testing.T) {
	cart := &Cart{}
	var validationErr *models.ValidationError
	assert.ErrorAs(t, cart.AddItem(menuItem("1", "1", 5), 0), &validationErr)
	assert.True(t, cart.IsEmpty())
}

func TestCartStoreSessionsAreIndependent(t *testing.T) {
	store := NewCartStore()

	assert.NoError(t, store.AddItem("a", menuItem("1", "1", 5), 1))
	assert.NoError(t, store.AddItem("b", menuItem("2", "2", 7), 2))

	assert.Equal(t, 1, store.TotalItems("a"))
	assert.Equal(t, 2, store.TotalItems("b"))

	store.Clear("a")
	assert.Equal(t, 0, store.TotalItems("a"))
	assert.Equal(t, 2, store.TotalItems("b"))
}

func TestCartStoreReplaceSwitchesRestaurant(t *testing.T) {
	store := NewCartStore()
	assert.NoError(t, store.AddItem("a", menuItem("1", "1", 5), 1))

	assert.ErrorIs(t, store.AddItem("a", menuItem("9", "2", 5), 1), ErrDifferentRestaurant)
	assert.NoError(t, store.Replace("a", menuItem("9", "2", 5), 1))

	snapshot := store.Snapshot("a")
	assert.Equal(t, "2", snapshot.RestaurantID())
	assert.Equal(t, 1, snapshot.TotalItems())
}

func TestCartStoreSnapshotIsDetached(t *testing.T) {
	store := NewCartStore()
	assert.NoError(t, store.AddItem("a", menuItem("1", "1", 5), 1))

	snapshot := store.Snapshot("a")
	store.Clear("a")

	assert.Equal(t, 1, snapshot.TotalItems(), "snapshot must not see later mutations")
}
