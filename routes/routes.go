package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/storefront-demo/storefront-api/config"
	orderControllers "github.com/storefront-demo/storefront-api/controllers/order"
	"github.com/storefront-demo/storefront-api/metrics"
	"github.com/storefront-demo/storefront-api/services"
)

// Deps carries everything the route groups need.
type Deps struct {
	Config   *config.Config
	Users    *services.UserService
	Products *services.ProductService
	Carts    *services.CartService
	Orders   *services.OrderService
	Metrics  *metrics.AppMetrics
	OrderHub *orderControllers.Hub
}

var startedAt = time.Now()

// SetupRoutes is the single entry point that wires up all route groups under
// the configured API prefix.
func SetupRoutes(r *gin.Engine, deps Deps) {
	api := r.Group(deps.Config.APIPrefix)

	api.GET("/health", healthHandler(deps.Config))

	SetupAuthRoutes(api, deps)
	SetupCatalogRoutes(api, deps)
	SetupUserRoutes(api, deps)
	SetupOrderRoutes(api, deps)
	SetupAdminRoutes(api, deps)
}

func healthHandler(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":         "healthy",
			"service":        cfg.OTELServiceName,
			"uptime_seconds": int(time.Since(startedAt).Seconds()),
		})
	}
}
