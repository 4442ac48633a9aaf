package routes

import (
	"github.com/SatpalInfilogix/kular-fashion-web/controllers/auth_controller"
	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes sets up all authentication routes
func SetupAuthRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		// Google OAuth routes
		auth.GET("/google/login", auth_controller.GoogleLogin)
		auth.GET("/google/callback", auth_controller.GoogleCallback)
		auth.POST("/google/one-tap", auth_controller.GoogleOneTap)

		auth.POST("/logout", auth_controller.Logout)
	}
}
