package newsletter_controller

import (
	"log"
	"net/http"

	"github.com/SatpalInfilogix/kular-fashion-web/config"
	"github.com/SatpalInfilogix/kular-fashion-web/models"
	"github.com/SatpalInfilogix/kular-fashion-web/services"
	"github.com/gin-gonic/gin"
)

var resendClient *services.ResendClient

// Init wires the email client used for welcome mails.
func Init(client *services.ResendClient) {
	resendClient = client
}

// Subscribe godoc
// @Summary Subscribe to the newsletter
// @Description Records the address and sends a welcome email. Resubscribing an existing address is a no-op.
// @Tags Newsletter
// @Accept json
// @Produce json
// @Param subscription body models.NewsletterRequest true "Subscriber email"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /newsletter/subscribe [post]
func Subscribe(c *gin.Context) {
	var req models.NewsletterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "A valid email address is required"))
		return
	}

	tag, err := config.ContentDB.Exec(c.Request.Context(),
		`INSERT INTO newsletter_subscribers (email, subscribed_at)
		 VALUES ($1, now())
		 ON CONFLICT (email) DO NOTHING`, req.Email)
	if err != nil {
		log.Printf("❌ [newsletter] insert failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to subscribe"))
		return
	}

	// Only first-time subscribers get the welcome mail. Sending happens off
	// the request path; a mail failure never fails the subscription.
	if tag.RowsAffected() > 0 && resendClient != nil {
		go func(email string) {
			if err := resendClient.SendNewsletterWelcome(email); err != nil {
				log.Printf("⚠️ [newsletter] welcome email failed for %s: %v", email, err)
			}
		}(req.Email)
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Subscribed to the newsletter", gin.H{
		"email": req.Email,
	}))
}
