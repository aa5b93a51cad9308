package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tastetrack/ordering/models"
)

func sampleDraft() *models.OrderDraft {
	return &models.OrderDraft{
		RestaurantID: 3,
		Items: []models.DraftItem{
			{MenuItemID: 7, Quantity: 2},
		},
		Delivery: validDelivery(),
		Payment:  models.PaymentInfo{Method: models.PaymentCashOnDelivery},
	}
}

func TestSubmitSuccess(t *testing.T) {
	var gotAuth string
	var gotDraft models.OrderDraft

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/orders", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotDraft))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.Order{
			ID:          42,
			OrderNumber: "ORD-42",
			Status:      models.StatusPending,
			Total:       43.557,
		})
	}))
	defer server.Close()

	client := NewOrderServiceClient(server.URL)
	order, err := client.Submit(context.Background(), sampleDraft(), "tok123")

	assert.NoError(t, err)
	assert.Equal(t, "Bearer tok123", gotAuth)
	assert.Equal(t, int64(3), gotDraft.RestaurantID)
	assert.Equal(t, uint(42), order.ID)
	assert.Equal(t, "ORD-42", order.OrderNumber)
	assert.Equal(t, models.StatusPending, order.Status)
	assert.InDelta(t, 43.557, order.Total, 1e-9)
}

func TestSubmitAnonymousOmitsAuthHeader(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(models.Order{ID: 1, Status: models.StatusPending})
	}))
	defer server.Close()

	client := NewOrderServiceClient(server.URL)
	_, err := client.Submit(context.Background(), sampleDraft(), "")
	assert.NoError(t, err)
}

func TestSubmitServiceRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "restaurant is closed"})
	}))
	defer server.Close()

	client := NewOrderServiceClient(server.URL)
	_, err := client.Submit(context.Background(), sampleDraft(), "")

	var transportErr *models.TransportError
	assert.ErrorAs(t, err, &transportErr)
	assert.Equal(t, http.StatusUnprocessableEntity, transportErr.StatusCode)
	assert.Equal(t, "restaurant is closed", transportErr.Message)
}

func TestSubmitRejectionWithoutMessageFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewOrderServiceClient(server.URL)
	_, err := client.Submit(context.Background(), sampleDraft(), "")

	var transportErr *models.TransportError
	assert.ErrorAs(t, err, &transportErr)
	assert.Equal(t, "order service request failed", transportErr.Message)
}

func TestSubmitMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	client := NewOrderServiceClient(server.URL)
	_, err := client.Submit(context.Background(), sampleDraft(), "")

	var malformedErr *models.MalformedResponseError
	assert.ErrorAs(t, err, &malformedErr)
}

func TestSubmitNetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections

	client := NewOrderServiceClient(server.URL)
	_, err := client.Submit(context.Background(), sampleDraft(), "")

	var transportErr *models.TransportError
	assert.ErrorAs(t, err, &transportErr)
	assert.Zero(t, transportErr.StatusCode)
}

func TestGetOrderAndUpdateStatusPaths(t *testing.T) {
	var paths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.Method+" "+r.URL.Path)
		_ = json.NewEncoder(w).Encode(models.Order{ID: 9, Status: models.StatusConfirmed})
	}))
	defer server.Close()

	client := NewOrderServiceClient(server.URL)
	ctx := context.Background()

	_, err := client.GetOrder(ctx, "9", "tok")
	assert.NoError(t, err)
	_, err = client.GetOrderByNumber(ctx, "ORD-9", "tok")
	assert.NoError(t, err)
	_, err = client.UpdateStatus(ctx, "9", models.StatusPreparing, "tok")
	assert.NoError(t, err)
	assert.NoError(t, client.CancelOrder(ctx, "9", "tok"))

	assert.Equal(t, []string{
		"GET /orders/9",
		"GET /orders/order-number/ORD-9",
		"PUT /orders/9/status/preparing",
		"PUT /orders/9/cancel",
	}, paths)
}

func TestListUserOrders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/orders/user", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]models.Order{
			{ID: 1, Status: models.StatusDelivered},
			{ID: 2, Status: models.StatusPending},
		})
	}))
	defer server.Close()

	client := NewOrderServiceClient(server.URL)
	orders, err := client.ListUserOrders(context.Background(), "tok")

	assert.NoError(t, err)
	assert.Len(t, orders, 2)
}
