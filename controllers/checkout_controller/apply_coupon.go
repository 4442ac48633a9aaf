package checkout_controller

import (
	"errors"
	"net/http"

	"github.com/SatpalInfilogix/kular-fashion-web/checkout"
	"github.com/SatpalInfilogix/kular-fashion-web/commerce"
	"github.com/SatpalInfilogix/kular-fashion-web/middleware"
	"github.com/SatpalInfilogix/kular-fashion-web/models"
	"github.com/gin-gonic/gin"
)

type applyCouponRequest struct {
	CouponCode string `json:"coupon_code" binding:"required"`
}

// ApplyCoupon godoc
// @Summary Apply a coupon to the current cart
// @Description Validates the coupon against the commerce API and stores the code, discount and post-discount total in the shopper session.
// @Tags Checkout
// @Accept json
// @Produce json
// @Param coupon body applyCouponRequest true "Coupon code"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /checkout/apply-coupon [post]
func ApplyCoupon(c *gin.Context) {
	var req applyCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	sessionID := middleware.GetSessionID(c)
	ctx := c.Request.Context()

	// The promotion engine lives behind the commerce API; the storefront
	// only forwards the code with the current subtotal.
	flow := checkout.NewFlow(store, client, hydrator, sessionID, nil)
	flow.Hydrate(ctx)
	subtotal := flow.Subtotal()

	token, _ := store.Get(ctx, sessionID, models.SessionKeyAuthToken)
	result, err := client.ApplyCoupon(ctx, token, req.CouponCode, subtotal.String())
	if err != nil {
		msg := "Could not apply this coupon."
		var apiErr *commerce.APIError
		if errors.As(err, &apiErr) && apiErr.Message != "" {
			msg = apiErr.Message
		}
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, msg))
		return
	}

	if err := store.Set(ctx, sessionID, models.SessionKeyCouponCode, result.CouponCode); err == nil {
		store.Set(ctx, sessionID, models.SessionKeyCouponDiscount, result.Discount.String())
		store.Set(ctx, sessionID, models.SessionKeyFinalAfterCoupon, result.FinalAmount.String())
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Coupon applied successfully", result))
}
