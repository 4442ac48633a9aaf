package account_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/SatpalInfilogix/kular-fashion-web/cart"
	"github.com/SatpalInfilogix/kular-fashion-web/commerce"
	"github.com/gin-gonic/gin"
)

// ShowTrackOrder godoc
// @Summary Render the order tracking page
// @Tags Account
// @Produce html
// @Success 200 "Tracking form"
// @Router /track-orders [get]
func ShowTrackOrder(c *gin.Context) {
	c.HTML(http.StatusOK, "track-orders.html", gin.H{
		"Title": "Track Your Order",
	})
}

// TrackOrder godoc
// @Summary Look up an order by id and billing email
// @Description Guests track orders without signing in. The commerce API matches the id against the billing email; a miss re-renders the form with an error.
// @Tags Account
// @Accept x-www-form-urlencoded
// @Produce html
// @Success 200 "Tracking result or form with error"
// @Router /track-orders [post]
func TrackOrder(c *gin.Context) {
	orderID := c.PostForm("order_id")
	billingEmail := c.PostForm("billing_email")

	if orderID == "" || billingEmail == "" {
		c.HTML(http.StatusOK, "track-orders.html", gin.H{
			"Title":        "Track Your Order",
			"Error":        "Please enter your order ID and billing email.",
			"OrderID":      orderID,
			"BillingEmail": billingEmail,
		})
		return
	}

	order, err := client.TrackOrder(c.Request.Context(), orderID, billingEmail)
	if err != nil {
		log.Printf("⚠️ [account] order lookup failed for %s: %v", orderID, err)
		msg := "We could not look up that order right now. Please try again."
		var apiErr *commerce.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			msg = "No order matches that ID and billing email."
		}
		c.HTML(http.StatusOK, "track-orders.html", gin.H{
			"Title":        "Track Your Order",
			"Error":        msg,
			"OrderID":      orderID,
			"BillingEmail": billingEmail,
		})
		return
	}

	c.HTML(http.StatusOK, "track-orders.html", gin.H{
		"Title": "Track Your Order",
		"Order": order,
		"Total": cart.FormatGBP(order.Total),
	})
}
