package routes

import (
	"time"

	"github.com/SatpalInfilogix/kular-fashion-web/controllers/checkout_controller"
	"github.com/SatpalInfilogix/kular-fashion-web/middleware"
	"github.com/gin-gonic/gin"
)

// SetupCheckoutRoutes wires the order summary flow and the order
// confirmation pages.
func SetupCheckoutRoutes(router *gin.RouterGroup) {
	checkout := router.Group("/checkout")
	{
		checkout.GET("/summary", checkout_controller.GetOrderSummary)
		checkout.POST("/place-order", middleware.RateLimiter(10, time.Minute), checkout_controller.PlaceOrder)
		checkout.POST("/apply-coupon", middleware.RateLimiter(10, time.Minute), checkout_controller.ApplyCoupon)
		checkout.PUT("/address", checkout_controller.SelectAddress)
		checkout.PUT("/payment-method", checkout_controller.SelectPaymentMethod)
	}

	orders := router.Group("/orders")
	{
		orders.GET("/:id", checkout_controller.GetOrderConfirmation)
		orders.GET("/:id/receipt", checkout_controller.DownloadReceipt)
	}
}
