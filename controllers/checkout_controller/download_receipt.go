package checkout_controller

import (
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/SatpalInfilogix/kular-fashion-web/middleware"
	"github.com/SatpalInfilogix/kular-fashion-web/models"
	"github.com/SatpalInfilogix/kular-fashion-web/services"
	"github.com/gin-gonic/gin"
)

// DownloadReceipt godoc
// @Summary Download an order receipt PDF
// @Description Fetches the placed order from the commerce API and renders it as a PDF receipt.
// @Tags Checkout
// @Produce application/pdf
// @Param id path int true "Order ID"
// @Success 200 {file} binary
// @Failure 400 {object} models.ApiResponse "Invalid order ID"
// @Failure 404 {object} models.ApiResponse "Order not found"
// @Router /orders/{id}/receipt [get]
func DownloadReceipt(c *gin.Context) {
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
		log.Printf("[checkout.receipt] order %d lookup failed: %v", orderID, err)
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
		return
	}

	buf, err := services.GenerateOrderReceiptPDF(order)
	if err != nil {
		log.Printf("[checkout.receipt] PDF render failed for order %d: %v", orderID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to generate receipt"))
		return
	}

	filename := fmt.Sprintf("kular-receipt-%d.pdf", orderID)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
