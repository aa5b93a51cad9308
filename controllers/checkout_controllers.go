package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tastetrack/ordering/hub"
	"github.com/tastetrack/ordering/middlewares"
	"github.com/tastetrack/ordering/models"
	"github.com/tastetrack/ordering/services"
	"github.com/tastetrack/ordering/utils"
)

type CheckoutController struct {
	Service *services.CheckoutService
	Hub     *hub.StatusHub
}

func NewCheckoutController(service *services.CheckoutService, statusHub *hub.StatusHub) *CheckoutController {
	return &CheckoutController{Service: service, Hub: statusHub}
}

// GetTotals -> the checkout page's display figures for the current cart.
func (cc *CheckoutController) GetTotals(c *gin.Context) {
	totals := cc.Service.Preview(middlewares.SessionKey(c))
	utils.RespondJSON(c, http.StatusOK, "Checkout totals", totals)
}

// PlaceOrder -> build the draft from the cart snapshot and submit it. On
// success the cart is gone and the confirmed order comes back; on failure
// the cart is untouched and the user can resubmit.
func (cc *CheckoutController) PlaceOrder(c *gin.Context) {
	type reqBody struct {
		Delivery models.DeliveryInfo `json:"delivery"`
		Payment  models.PaymentInfo  `json:"payment"`
	}

	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := cc.Service.PlaceOrder(
		c.Request.Context(),
		middlewares.SessionKey(c),
		middlewares.Bearer(c),
		body.Delivery,
		body.Payment,
	)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.InfoLogger.Printf("Order %s placed for %.2f", order.OrderNumber, order.Total)
	if cc.Hub != nil {
		cc.Hub.BroadcastOrderPlaced(order)
	}
	utils.RespondJSON(c, http.StatusCreated, "Order placed", order)
}
