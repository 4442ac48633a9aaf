package checkout_controller

import (
	"net/http"

	"github.com/SatpalInfilogix/kular-fashion-web/cart"
	"github.com/SatpalInfilogix/kular-fashion-web/checkout"
	"github.com/SatpalInfilogix/kular-fashion-web/middleware"
	"github.com/SatpalInfilogix/kular-fashion-web/models"
	"github.com/gin-gonic/gin"
)

// GetOrderSummary godoc
// @Summary Get the checkout order summary
// @Description Hydrates the shopper's cart (server-held for signed-in shoppers, session-held for guests) and returns items, subtotal and applied promotion. Hydration failures degrade to an empty cart.
// @Tags Checkout
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /checkout/summary [get]
func GetOrderSummary(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)
	ctx := c.Request.Context()

	flow := checkout.NewFlow(store, client, hydrator, sessionID, nil)
	flow.Hydrate(ctx)

	items := flow.Items()
	subtotal := flow.Subtotal()

	summary := gin.H{
		"items":            items,
		"subtotal":         subtotal,
		"subtotal_display": cart.FormatGBP(subtotal),
		"state":            flow.State().String(),
	}

	if code, err := store.Get(ctx, sessionID, models.SessionKeyCouponCode); err == nil && code != "" {
		promo := gin.H{"coupon_code": code}
		if discount, err := store.Get(ctx, sessionID, models.SessionKeyCouponDiscount); err == nil {
			promo["discount"] = discount
		}
		if final, err := store.Get(ctx, sessionID, models.SessionKeyFinalAfterCoupon); err == nil {
			promo["final_amount"] = final
		}
		summary["promo"] = promo
	}

	if addressID, err := store.Get(ctx, sessionID, models.SessionKeyAddressID); err == nil {
		summary["selected_address_id"] = addressID
	}
	if paymentMode, err := store.Get(ctx, sessionID, models.SessionKeyPaymentMethod); err == nil {
		summary["selected_payment_method"] = paymentMode
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order summary fetched successfully", summary))
}
