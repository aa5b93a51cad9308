package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tastetrack/ordering/config"
	"github.com/tastetrack/ordering/controllers"
	"github.com/tastetrack/ordering/hub"
	"github.com/tastetrack/ordering/middlewares"
	"github.com/tastetrack/ordering/services"
)

// SetupRouter wires every controller behind the session, CORS, and logging
// middlewares. All state the handlers touch is passed in here; nothing is
// ambient.
func SetupRouter(cfg config.Config, db *gorm.DB, carts *services.CartStore, orderClient *services.OrderServiceClient, catalogClient *services.CatalogClient, statusHub *hub.StatusHub) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.CORSMiddlewares(cfg.AllowedOrigin))
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.NewRateLimiter(50, 1).RateLimit())
	r.Use(middlewares.SessionMiddleware())

	checkoutService := services.NewCheckoutService(carts, orderClient, db)

	catalogCtrl := controllers.NewCatalogController(catalogClient)
	cartCtrl := controllers.NewCartController(carts, catalogClient)
	checkoutCtrl := controllers.NewCheckoutController(checkoutService, statusHub)
	orderCtrl := controllers.NewOrderController(db, orderClient, statusHub)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	api := r.Group("/api")
	{
		api.GET("/restaurants", catalogCtrl.GetRestaurants)
		api.GET("/restaurants/search", catalogCtrl.SearchRestaurants)
		api.GET("/restaurants/open", catalogCtrl.GetOpenRestaurants)
		api.GET("/restaurants/:restaurant_id", catalogCtrl.GetRestaurantByID)
		api.GET("/menu-items/restaurant/:restaurant_id", catalogCtrl.GetMenuByRestaurant)
		api.GET("/menu-items/:item_id", catalogCtrl.GetMenuItemByID)

		api.GET("/cart", cartCtrl.GetCart)
		api.POST("/cart/items", cartCtrl.AddItem)
		api.PATCH("/cart/items/:item_id", cartCtrl.UpdateItem)
		api.DELETE("/cart/items/:item_id", cartCtrl.RemoveItem)
		api.DELETE("/cart", cartCtrl.ClearCart)

		api.GET("/checkout", checkoutCtrl.GetTotals)
		api.POST("/checkout", middlewares.NewStrictRateLimiter(), checkoutCtrl.PlaceOrder)

		api.GET("/orders", orderCtrl.ListOrders)
		api.GET("/orders/:order_id", orderCtrl.GetOrder)
		api.GET("/orders/:order_id/track", orderCtrl.TrackOrder)
		api.GET("/orders/number/:order_number", orderCtrl.GetOrderByNumber)
		api.PUT("/orders/:order_id/cancel", orderCtrl.CancelOrder)
		api.PUT("/orders/:order_id/status/:status", middlewares.RequireAuth(), orderCtrl.UpdateStatus)
	}

	r.GET("/ws/orders", orderCtrl.Subscribe)

	return r
}
