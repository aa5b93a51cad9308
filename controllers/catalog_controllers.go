package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tastetrack/ordering/services"
	"github.com/tastetrack/ordering/utils"
)

// CatalogController proxies restaurant and menu browsing to the upstream
// catalog. Pure passthrough; filtering and search live on the service side.
type CatalogController struct {
	Catalog *services.CatalogClient
}

func NewCatalogController(catalog *services.CatalogClient) *CatalogController {
	return &CatalogController{Catalog: catalog}
}

func (cc *CatalogController) GetRestaurants(c *gin.Context) {
	restaurants, err := cc.Catalog.GetRestaurants(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of restaurants", restaurants)
}

func (cc *CatalogController) GetRestaurantByID(c *gin.Context) {
	restaurant, err := cc.Catalog.GetRestaurant(c.Request.Context(), c.Param("restaurant_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Restaurant detail", restaurant)
}

func (cc *CatalogController) SearchRestaurants(c *gin.Context) {
	restaurants, err := cc.Catalog.SearchRestaurants(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Search results", restaurants)
}

func (cc *CatalogController) GetOpenRestaurants(c *gin.Context) {
	restaurants, err := cc.Catalog.GetOpenRestaurants(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Open restaurants", restaurants)
}

func (cc *CatalogController) GetMenuByRestaurant(c *gin.Context) {
	items, err := cc.Catalog.GetMenuItems(c.Request.Context(), c.Param("restaurant_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu items", items)
}

func (cc *CatalogController) GetMenuItemByID(c *gin.Context) {
	item, err := cc.Catalog.GetMenuItem(c.Request.Context(), c.Param("item_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu item detail", item)
}
