package services

import (
	"strconv"

	"github.com/tastetrack/ordering/models"
)

// Checkout pricing. The 10% rate is the single authoritative tax rate; after
// submission every displayed total comes from the server-confirmed order,
// never from a client-side recompute.
const (
	DeliveryFee = 3.99
	TaxRate     = 0.10
)

// CheckoutTotals are the display figures shown on the checkout page.
type CheckoutTotals struct {
	Subtotal    float64 `json:"subtotal"`
	DeliveryFee float64 `json:"deliveryFee"`
	Tax         float64 `json:"tax"`
	Total       float64 `json:"total"`
}

// Totals derives the checkout figures from a subtotal.
func Totals(subtotal float64) CheckoutTotals {
	tax := subtotal * TaxRate
	return CheckoutTotals{
		Subtotal:    subtotal,
		DeliveryFee: DeliveryFee,
		Tax:         tax,
		Total:       subtotal + DeliveryFee + tax,
	}
}

// BuildOrderDraft turns a cart snapshot plus the checkout form into the
// submission payload and its display totals. It is a pure transform: nothing
// is sent, nothing is mutated. The restaurant id is taken from the first
// entry, which AddItem's single-restaurant check makes representative of the
// whole cart.
func BuildOrderDraft(cart *Cart, delivery models.DeliveryInfo, payment models.PaymentInfo) (*models.OrderDraft, CheckoutTotals, error) {
	totals := Totals(cart.TotalPrice())

	if cart.IsEmpty() {
		return nil, totals, models.NewValidationError("empty cart")
	}
	if err := delivery.Validate(); err != nil {
		return nil, totals, err
	}
	if err := payment.Validate(); err != nil {
		return nil, totals, err
	}
	payment.Normalize()

	restaurantID, err := strconv.ParseInt(cart.RestaurantID(), 10, 64)
	if err != nil {
		return nil, totals, models.NewValidationError("restaurant id %q is not numeric", cart.RestaurantID())
	}

	entries := cart.Entries()
	items := make([]models.DraftItem, 0, len(entries))
	for _, e := range entries {
		menuItemID, err := strconv.ParseInt(e.Item.ID, 10, 64)
		if err != nil {
			return nil, totals, models.NewValidationError("menu item id %q is not numeric", e.Item.ID)
		}
		items = append(items, models.DraftItem{
			MenuItemID: menuItemID,
			Quantity:   e.Quantity,
		})
	}

	draft := &models.OrderDraft{
		RestaurantID: restaurantID,
		Items:        items,
		Delivery:     delivery,
		Payment:      payment,
	}
	return draft, totals, nil
}
