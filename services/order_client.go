package services

import (
	"context"
	"net/http"

	"github.com/tastetrack/ordering/models"
)

// OrderServiceClient talks to the remote TasteTrack order service. The
// service owns every Order; this client submits drafts, fetches, and
// requests status transitions, nothing more. Failures are reported once to
// the caller; there is no retry or backoff here.
type OrderServiceClient struct {
	apiTransport
}

func NewOrderServiceClient(baseURL string) *OrderServiceClient {
	return &OrderServiceClient{apiTransport: newAPITransport(baseURL)}
}

// Submit sends a checkout draft. The bearer credential is attached when
// present; anonymous submission is permitted by the transport and left to
// the service to accept or reject.
func (c *OrderServiceClient) Submit(ctx context.Context, draft *models.OrderDraft, bearer string) (*models.Order, error) {
	var order models.Order
	if err := c.do(ctx, http.MethodPost, "/orders", bearer, draft, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *OrderServiceClient) GetOrder(ctx context.Context, id string, bearer string) (*models.Order, error) {
	var order models.Order
	if err := c.do(ctx, http.MethodGet, "/orders/"+id, bearer, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *OrderServiceClient) GetOrderByNumber(ctx context.Context, orderNumber string, bearer string) (*models.Order, error) {
	var order models.Order
	if err := c.do(ctx, http.MethodGet, "/orders/order-number/"+orderNumber, bearer, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// ListUserOrders returns the caller's orders, newest first, as the service
// stores them.
func (c *OrderServiceClient) ListUserOrders(ctx context.Context, bearer string) ([]models.Order, error) {
	var orders []models.Order
	if err := c.do(ctx, http.MethodGet, "/orders/user", bearer, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateStatus asks the service to move an order to the given status. The
// service remains the authority on whether the transition happens.
func (c *OrderServiceClient) UpdateStatus(ctx context.Context, id string, status models.OrderStatus, bearer string) (*models.Order, error) {
	var order models.Order
	if err := c.do(ctx, http.MethodPut, "/orders/"+id+"/status/"+string(status), bearer, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *OrderServiceClient) CancelOrder(ctx context.Context, id string, bearer string) error {
	return c.do(ctx, http.MethodPut, "/orders/"+id+"/cancel", bearer, nil, nil)
}
