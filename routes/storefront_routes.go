package routes

import (
	"time"

	"github.com/SatpalInfilogix/kular-fashion-web/controllers/cart_controller"
	"github.com/SatpalInfilogix/kular-fashion-web/controllers/content_controller"
	"github.com/SatpalInfilogix/kular-fashion-web/controllers/filter_controller"
	"github.com/SatpalInfilogix/kular-fashion-web/controllers/newsletter_controller"
	"github.com/SatpalInfilogix/kular-fashion-web/middleware"
	"github.com/gin-gonic/gin"
)

// SetupStorefrontRoutes wires the public storefront surface: marketing
// content, the cart, the filter sidebar and the newsletter.
func SetupStorefrontRoutes(router *gin.RouterGroup) {
	content := router.Group("/content")
	{
		content.GET("/home", content_controller.GetHomeContent)
	}

	cart := router.Group("/cart")
	{
		cart.GET("", cart_controller.GetCart)
		cart.POST("/items", middleware.RateLimiter(60, time.Minute), cart_controller.AddCartItem)
		cart.DELETE("/items/:id", cart_controller.RemoveCartItem)
	}

	store := router.Group("/store")
	{
		store.GET("/filters", filter_controller.GetFilterMetadata)
		store.POST("/filters/toggle", filter_controller.ToggleFilter)
		store.PUT("/filters/price", filter_controller.SetPriceFilter)
		store.POST("/filters/reset", filter_controller.ResetFilters)
	}

	newsletter := router.Group("/newsletter")
	{
		newsletter.POST("/subscribe", middleware.RateLimiter(5, time.Minute), newsletter_controller.Subscribe)
	}
}
