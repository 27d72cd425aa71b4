package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/storefront-demo/storefront-api/controllers/order"
	"github.com/storefront-demo/storefront-api/middleware"
)

// SetupOrderRoutes registers checkout and order history. The websocket feed
// of newly placed orders stays public so the storefront UI can subscribe
// before login.
func SetupOrderRoutes(api *gin.RouterGroup, deps Deps) {
	api.GET("/orders/ws", deps.OrderHub.Handler)

	orders := api.Group("/orders")
	orders.Use(middleware.ValidateToken(deps.Config.JWTSecret))
	{
		orders.POST("", orderControllers.PlaceOrder(deps.Orders, deps.OrderHub))
		orders.GET("", orderControllers.GetUserOrders(deps.Orders))
		orders.GET("/:id", orderControllers.GetOrder(deps.Orders))
	}
}
