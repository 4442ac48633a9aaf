package checkout_controller

import (
	"net/http"

	"github.com/SatpalInfilogix/kular-fashion-web/middleware"
	"github.com/SatpalInfilogix/kular-fashion-web/models"
	"github.com/gin-gonic/gin"
)

type selectAddressRequest struct {
	AddressID string `json:"address_id" binding:"required"`
}

type selectPaymentRequest struct {
	PaymentMode string `json:"payment_mode" binding:"required"`
}

// SelectAddress godoc
// @Summary Select the delivery address
// @Tags Checkout
// @Accept json
// @Produce json
// @Param address body selectAddressRequest true "Delivery address id"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /checkout/address [put]
func SelectAddress(c *gin.Context) {
	var req selectAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	sessionID := middleware.GetSessionID(c)
	if err := store.Set(c.Request.Context(), sessionID, models.SessionKeyAddressID, req.AddressID); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save address selection"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Delivery address selected", gin.H{
		"selected_address_id": req.AddressID,
	}))
}

// SelectPaymentMethod godoc
// @Summary Select the payment method
// @Tags Checkout
// @Accept json
// @Produce json
// @Param payment body selectPaymentRequest true "Payment mode"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /checkout/payment-method [put]
func SelectPaymentMethod(c *gin.Context) {
	var req selectPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	sessionID := middleware.GetSessionID(c)
	if err := store.Set(c.Request.Context(), sessionID, models.SessionKeyPaymentMethod, req.PaymentMode); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save payment selection"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Payment method selected", gin.H{
		"selected_payment_method": req.PaymentMode,
	}))
}
