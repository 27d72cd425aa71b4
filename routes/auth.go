package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	userControllers "github.com/storefront-demo/storefront-api/controllers/user"
)

// SetupAuthRoutes registers the public "/auth/*" endpoints.
func SetupAuthRoutes(api *gin.RouterGroup, deps Deps) {
	tokenTTL := time.Duration(deps.Config.TokenTTLMinutes) * time.Minute

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", userControllers.Register(deps.Users))
		authGroup.POST("/login", userControllers.Login(deps.Users, deps.Config.JWTSecret, tokenTTL))
	}
}
