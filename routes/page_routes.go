package routes

import (
	"github.com/SatpalInfilogix/kular-fashion-web/controllers/account_controller"
	"github.com/gin-gonic/gin"
)

// SetupPageRoutes wires the server-rendered pages. These live off the API
// prefix because shoppers hit them directly from emails and bookmarks.
func SetupPageRoutes(router *gin.Engine) {
	router.GET("/account", account_controller.ShowAccount)
	router.POST("/account", account_controller.UpdateAccount)

	router.GET("/track-orders", account_controller.ShowTrackOrder)
	router.POST("/track-orders", account_controller.TrackOrder)
}
