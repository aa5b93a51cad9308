package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"gorm.io/gorm"

	"github.com/tastetrack/ordering/hub"
	"github.com/tastetrack/ordering/middlewares"
	"github.com/tastetrack/ordering/models"
	"github.com/tastetrack/ordering/services"
	"github.com/tastetrack/ordering/utils"
)

// OrderController serves the orders list and tracking views. Reads prefer
// the order service; the local mirror answers when the service cannot be
// reached and is refreshed on every successful fetch.
type OrderController struct {
	DB     *gorm.DB
	Orders *services.OrderServiceClient
	Hub    *hub.StatusHub
}

func NewOrderController(db *gorm.DB, orders *services.OrderServiceClient, statusHub *hub.StatusHub) *OrderController {
	return &OrderController{DB: db, Orders: orders, Hub: statusHub}
}

// ListOrders -> the caller's orders, newest first. Authenticated callers get
// the service's list; anonymous sessions see their locally mirrored orders.
func (oc *OrderController) ListOrders(c *gin.Context) {
	bearer := middlewares.Bearer(c)
	if bearer != "" {
		orders, err := oc.Orders.ListUserOrders(c.Request.Context(), bearer)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
		return
	}

	var orders []models.Order
	if err := oc.DB.Preload("Items").
		Where("session_key = ?", middlewares.SessionKey(c)).
		Order("order_date DESC").
		Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}

// fetchOrder resolves an order by id, upstream first with a mirror
// fallback for transport failures.
func (oc *OrderController) fetchOrder(c *gin.Context, id string) (*models.Order, error) {
	order, err := oc.Orders.GetOrder(c.Request.Context(), id, middlewares.Bearer(c))
	if err == nil {
		oc.refreshMirror(order)
		return order, nil
	}

	var transportErr *models.TransportError
	if errors.As(err, &transportErr) && transportErr.StatusCode == 0 {
		var local models.Order
		if dbErr := oc.DB.Preload("Items").First(&local, "id = ?", id).Error; dbErr == nil {
			utils.InfoLogger.Printf("Order service unreachable, serving mirrored order %s", local.OrderNumber)
			return &local, nil
		}
	}
	return nil, err
}

// refreshMirror records the latest fetched state of an order we already
// track. Orders never seen by this instance are not adopted here; they enter
// the mirror at placement time.
func (oc *OrderController) refreshMirror(order *models.Order) {
	var local models.Order
	if err := oc.DB.First(&local, "id = ?", order.ID).Error; err != nil {
		return
	}
	order.SessionKey = local.SessionKey
	order.Authenticated = local.Authenticated
	if err := oc.DB.Save(order).Error; err != nil {
		utils.ErrorLogger.Printf("Failed to refresh mirrored order %s: %v", order.OrderNumber, err)
	}
}

// GetOrder -> one order by id.
func (oc *OrderController) GetOrder(c *gin.Context) {
	order, err := oc.fetchOrder(c, c.Param("order_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

// GetOrderByNumber -> one order by its human-facing order number.
func (oc *OrderController) GetOrderByNumber(c *gin.Context) {
	order, err := oc.Orders.GetOrderByNumber(c.Request.Context(), c.Param("order_number"), middlewares.Bearer(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	oc.refreshMirror(order)
	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

// TrackOrder -> the tracking timeline for an order's last-fetched status.
func (oc *OrderController) TrackOrder(c *gin.Context) {
	order, err := oc.fetchOrder(c, c.Param("order_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	timeline, ok := services.Timeline(order)
	if !ok {
		utils.RespondError(c, http.StatusBadGateway, errors.New("order has an unknown status"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order timeline", timeline)
}

// CancelOrder -> request cancellation. Orders past confirmation cannot be
// cancelled, so that case fails fast without a network call.
func (oc *OrderController) CancelOrder(c *gin.Context) {
	id := c.Param("order_id")
	order, err := oc.fetchOrder(c, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if !models.CanTransition(order.Status, models.StatusCancelled) {
		utils.RespondError(c, http.StatusBadRequest,
			models.NewValidationError("a %s order can no longer be cancelled", string(order.Status)))
		return
	}

	if err := oc.Orders.CancelOrder(c.Request.Context(), id, middlewares.Bearer(c)); err != nil {
		respondServiceError(c, err)
		return
	}

	order.Status = models.StatusCancelled
	oc.refreshMirror(order)
	if oc.Hub != nil {
		oc.Hub.BroadcastStatusChange(order)
	}
	utils.RespondJSON(c, http.StatusOK, "Order cancelled", order)
}

// UpdateStatus -> administrative passthrough for moving an order along the
// pipeline. Illegal transitions fail fast; the service still has the final
// word.
func (oc *OrderController) UpdateStatus(c *gin.Context) {
	id := c.Param("order_id")
	next := models.OrderStatus(c.Param("status"))
	if !next.IsValid() {
		utils.RespondError(c, http.StatusBadRequest,
			models.NewValidationError("unknown status %q", string(next)))
		return
	}

	order, err := oc.fetchOrder(c, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !models.CanTransition(order.Status, next) {
		utils.RespondError(c, http.StatusBadRequest,
			models.NewValidationError("cannot move a %s order to %s", string(order.Status), string(next)))
		return
	}

	updated, err := oc.Orders.UpdateStatus(c.Request.Context(), id, next, middlewares.Bearer(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	oc.refreshMirror(updated)
	if oc.Hub != nil {
		oc.Hub.BroadcastStatusChange(updated)
	}
	utils.RespondJSON(c, http.StatusOK, "Order status updated", updated)
}

var trackerUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Subscribe -> websocket feed of status changes for the caller's session.
func (oc *OrderController) Subscribe(c *gin.Context) {
	conn, err := trackerUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.ErrorLogger.Printf("Websocket upgrade failed: %v", err)
		return
	}

	oc.Hub.Register(conn, middlewares.SessionKey(c))
	go func() {
		defer oc.Hub.Unregister(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
