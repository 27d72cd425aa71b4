package productControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/storefront-demo/storefront-api/metrics"
	"github.com/storefront-demo/storefront-api/services"
)

// GET /products/:id
func GetProductByID(products *services.ProductService, m *metrics.AppMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
			return
		}

		product, err := products.Product(uint(id))
		if err != nil {
			if errors.Is(err, services.ErrProductNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			return
		}

		m.RecordProductViewed(c.Request.Context(), product.ID)
		c.JSON(http.StatusOK, product)
	}
}
