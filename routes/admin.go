package routes

import (
	"github.com/gin-gonic/gin"

	productControllers "github.com/storefront-demo/storefront-api/controllers/product"
	"github.com/storefront-demo/storefront-api/middleware"
)

// SetupAdminRoutes registers the API-key-protected admin endpoints.
func SetupAdminRoutes(api *gin.RouterGroup, deps Deps) {
	admin := api.Group("/admin")
	admin.Use(middleware.ValidateAPIKey(deps.Config.AdminAPIKey))
	{
		admin.GET("/products/export", productControllers.ExportProductsToExcel(deps.Products))
	}
}
