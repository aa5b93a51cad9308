package controllers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tastetrack/ordering/middlewares"
	"github.com/tastetrack/ordering/models"
	"github.com/tastetrack/ordering/services"
	"github.com/tastetrack/ordering/utils"
)

// MenuItemResolver is the slice of the catalog the cart flow needs: the add
// endpoint takes an item id and captures the catalog's price, never one from
// the request body.
type MenuItemResolver interface {
	GetMenuItem(ctx context.Context, id string) (*models.MenuItem, error)
}

type CartController struct {
	Carts   *services.CartStore
	Catalog MenuItemResolver
}

func NewCartController(carts *services.CartStore, catalog MenuItemResolver) *CartController {
	return &CartController{Carts: carts, Catalog: catalog}
}

type cartView struct {
	Entries    []services.CartEntry `json:"entries"`
	TotalItems int                  `json:"totalItems"`
	TotalPrice float64              `json:"totalPrice"`
}

func (cc *CartController) view(sessionKey string) cartView {
	cart := cc.Carts.Snapshot(sessionKey)
	return cartView{
		Entries:    cart.Entries(),
		TotalItems: cart.TotalItems(),
		TotalPrice: cart.TotalPrice(),
	}
}

// GetCart -> current cart contents and totals.
func (cc *CartController) GetCart(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Cart contents", cc.view(middlewares.SessionKey(c)))
}

// AddItem -> put a menu item in the cart, merging quantity when it is
// already there. With replace=true the cart is discarded first, which is how
// the frontend resolves the switching-restaurants conflict.
func (cc *CartController) AddItem(c *gin.Context) {
	type reqBody struct {
		MenuItemID string `json:"menuItemId" binding:"required"`
		Quantity   int    `json:"quantity"`
		Replace    bool   `json:"replace"`
	}

	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if body.Quantity == 0 {
		body.Quantity = 1
	}

	item, err := cc.Catalog.GetMenuItem(c.Request.Context(), body.MenuItemID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	sessionKey := middlewares.SessionKey(c)
	if body.Replace {
		err = cc.Carts.Replace(sessionKey, *item, body.Quantity)
	} else {
		err = cc.Carts.AddItem(sessionKey, *item, body.Quantity)
	}
	if errors.Is(err, services.ErrDifferentRestaurant) {
		utils.RespondError(c, http.StatusConflict, err)
		return
	}
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Item added to cart", cc.view(sessionKey))
}

// UpdateItem -> set an entry's quantity exactly; zero or less removes it.
func (cc *CartController) UpdateItem(c *gin.Context) {
	type reqBody struct {
		Quantity int `json:"quantity"`
	}

	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	sessionKey := middlewares.SessionKey(c)
	cc.Carts.SetQuantity(sessionKey, c.Param("item_id"), body.Quantity)
	utils.RespondJSON(c, http.StatusOK, "Cart updated", cc.view(sessionKey))
}

// RemoveItem -> drop an entry; removing an absent item succeeds quietly.
func (cc *CartController) RemoveItem(c *gin.Context) {
	sessionKey := middlewares.SessionKey(c)
	cc.Carts.RemoveItem(sessionKey, c.Param("item_id"))
	utils.RespondJSON(c, http.StatusOK, "Item removed", cc.view(sessionKey))
}

// ClearCart -> empty the cart unconditionally.
func (cc *CartController) ClearCart(c *gin.Context) {
	sessionKey := middlewares.SessionKey(c)
	cc.Carts.Clear(sessionKey)
	utils.RespondJSON(c, http.StatusOK, "Cart cleared", cc.view(sessionKey))
}
