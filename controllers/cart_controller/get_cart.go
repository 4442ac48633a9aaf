package cart_controller

import (
	"net/http"

	"github.com/SatpalInfilogix/kular-fashion-web/cart"
	"github.com/SatpalInfilogix/kular-fashion-web/middleware"
	"github.com/SatpalInfilogix/kular-fashion-web/models"
	"github.com/gin-gonic/gin"
)

// GetCart godoc
// @Summary Get the shopper's cart
// @Description Returns the normalized cart items regardless of whether they live on the commerce backend or in the guest session.
// @Tags Cart
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /cart [get]
func GetCart(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	items := hydrator.Hydrate(c.Request.Context(), sessionID)
	subtotal := cart.Subtotal(items)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart fetched successfully", gin.H{
		"items":            items,
		"subtotal":         subtotal,
		"subtotal_display": cart.FormatGBP(subtotal),
	}))
}
