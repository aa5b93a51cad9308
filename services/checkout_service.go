package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/tastetrack/ordering/models"
	"github.com/tastetrack/ordering/utils"
)

// CheckoutService ties the cart store and the order client together for the
// one sequenced operation in the system: place an order. The draft is a
// value snapshot taken before any network I/O, so a submission that succeeds
// is guaranteed to reflect the cart as it stood at submission time.
type CheckoutService struct {
	carts  *CartStore
	orders *OrderServiceClient
	db     *gorm.DB
}

func NewCheckoutService(carts *CartStore, orders *OrderServiceClient, db *gorm.DB) *CheckoutService {
	return &CheckoutService{carts: carts, orders: orders, db: db}
}

// Preview returns the display totals for the session's current cart without
// building a draft.
func (s *CheckoutService) Preview(sessionKey string) CheckoutTotals {
	return Totals(s.carts.TotalPrice(sessionKey))
}

// PlaceOrder builds the draft, submits it, and clears the cart on success.
// On any failure the cart is left exactly as it was so the user can correct
// input and resubmit; nothing is retried automatically and no partial order
// state is ever created locally.
func (s *CheckoutService) PlaceOrder(ctx context.Context, sessionKey, bearer string, delivery models.DeliveryInfo, payment models.PaymentInfo) (*models.Order, error) {
	snapshot := s.carts.Snapshot(sessionKey)

	draft, _, err := BuildOrderDraft(snapshot, delivery, payment)
	if err != nil {
		return nil, err
	}

	order, err := s.orders.Submit(ctx, draft, bearer)
	if err != nil {
		return nil, err
	}

	s.carts.Clear(sessionKey)
	s.record(order, sessionKey, bearer != "")
	return order, nil
}

// record mirrors a confirmed order locally for the orders list and the
// status monitor. A mirror failure is logged and swallowed: the order exists
// on the server either way. Authenticated marks orders the monitor cannot
// poll without the owner's credential.
func (s *CheckoutService) record(order *models.Order, sessionKey string, authenticated bool) {
	if s.db == nil {
		return
	}
	order.SessionKey = sessionKey
	order.Authenticated = authenticated
	if err := s.db.Save(order).Error; err != nil {
		utils.ErrorLogger.Printf("Failed to mirror order %s locally: %v", order.OrderNumber, err)
	}
}
