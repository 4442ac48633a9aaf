package checkout_controller

import (
	"net/http"

	"github.com/SatpalInfilogix/kular-fashion-web/checkout"
	"github.com/SatpalInfilogix/kular-fashion-web/middleware"
	"github.com/SatpalInfilogix/kular-fashion-web/models"
	"github.com/gin-gonic/gin"
)

// PlaceOrder godoc
// @Summary Place the order
// @Description Validates checkout preconditions, assembles the order payload from the shopper session and submits it to the commerce API. On success the cart and coupon keys are cleared and the response carries the confirmation redirect.
// @Tags Checkout
// @Accept json
// @Produce json
// @Success 200 {object} models.ApiResponse "Order placed"
// @Failure 400 {object} models.ApiResponse "Precondition failed (warning, no network call made)"
// @Failure 502 {object} models.ApiResponse "Commerce API rejected the order"
// @Router /checkout/place-order [post]
func PlaceOrder(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)
	ctx := c.Request.Context()

	flow := checkout.NewFlow(store, client, hydrator, sessionID, nil)
	outcome := flow.PlaceOrder(ctx)

	switch {
	case outcome.Warning != "":
		c.JSON(http.StatusBadRequest, models.WarningResponse(c, outcome.Warning))
	case outcome.ErrMessage != "":
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, outcome.ErrMessage))
	default:
		c.JSON(http.StatusOK, models.SuccessResponse(c, checkout.MsgOrderPlaced, gin.H{
			"order_id": outcome.OrderID,
			"redirect": gin.H{
				"to":       outcome.RedirectTo,
				"after_ms": outcome.RedirectAfter.Milliseconds(),
			},
		}))
	}
}
