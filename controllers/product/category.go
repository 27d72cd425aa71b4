package productControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/storefront-demo/storefront-api/services"
)

// GET /categories
func GetCategories(products *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := products.Categories()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}
