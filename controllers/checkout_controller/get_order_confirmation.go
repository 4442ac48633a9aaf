package checkout_controller

import (
	"log"
	"net/http"
	"strconv"

	"github.com/SatpalInfilogix/kular-fashion-web/middleware"
	"github.com/SatpalInfilogix/kular-fashion-web/models"
	"github.com/gin-gonic/gin"
)

// GetOrderConfirmation godoc
// @Summary Get the order confirmation view
// @Description The page a shopper lands on after the post-success redirect to /orders/{order_id}.
// @Tags Checkout
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid order ID"
// @Failure 404 {object} models.ApiResponse "Order not found"
// @Router /orders/{id} [get]
func GetOrderConfirmation(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid order ID"))
		return
	}

	sessionID := middleware.GetSessionID(c)
	ctx := c.Request.Context()

	token, _ := store.Get(ctx, sessionID, models.SessionKeyAuthToken)

	order, err := client.ShowOrder(ctx, token, orderID)
	if err != nil {
		log.Printf("[checkout.confirmation] order %d lookup failed: %v", orderID, err)
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order fetched successfully", order))
}
