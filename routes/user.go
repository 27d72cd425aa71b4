package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/storefront-demo/storefront-api/controllers/cart"
	productControllers "github.com/storefront-demo/storefront-api/controllers/product"
	userControllers "github.com/storefront-demo/storefront-api/controllers/user"
	"github.com/storefront-demo/storefront-api/middleware"
)

// SetupCatalogRoutes registers the public, read-only catalog endpoints.
func SetupCatalogRoutes(api *gin.RouterGroup, deps Deps) {
	api.GET("/categories", productControllers.GetCategories(deps.Products))
	api.GET("/products", productControllers.GetProducts(deps.Products))
	api.GET("/products/:id", productControllers.GetProductByID(deps.Products, deps.Metrics))
}

// SetupUserRoutes registers the JWT-protected profile and cart endpoints.
// Every cart operation requires an authenticated user; there is no demo
// default user.
func SetupUserRoutes(api *gin.RouterGroup, deps Deps) {
	authed := api.Group("")
	authed.Use(middleware.ValidateToken(deps.Config.JWTSecret))
	{
		authed.GET("/me", userControllers.GetUser(deps.Users))

		cartGroup := authed.Group("/cart")
		{
			cartGroup.GET("", cartControllers.GetCart(deps.Carts))
			cartGroup.POST("/add", cartControllers.AddToCart(deps.Carts, deps.Metrics))
			cartGroup.PUT("/:id", cartControllers.UpdateCartItem(deps.Carts))
			cartGroup.DELETE("/:id", cartControllers.DeleteCartItem(deps.Carts))
			cartGroup.DELETE("", cartControllers.ClearCart(deps.Carts))
		}
	}
}
