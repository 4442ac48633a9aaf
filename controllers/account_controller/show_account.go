package account_controller

import (
	"net/http"

	"github.com/SatpalInfilogix/kular-fashion-web/middleware"
	"github.com/SatpalInfilogix/kular-fashion-web/models"
	"github.com/SatpalInfilogix/kular-fashion-web/session"
	"github.com/gin-gonic/gin"
)

// ShowAccount godoc
// @Summary Render the account page
// @Description Shows the signed-in shopper's details with the edit form. Guests are sent to sign in first.
// @Tags Account
// @Produce html
// @Success 200 "Account page"
// @Success 307 "Redirect to sign-in for guests"
// @Router /account [get]
func ShowAccount(c *gin.Context) {
	if !middleware.IsAuthenticated(c) {
		c.Redirect(http.StatusTemporaryRedirect, "/api/v1/auth/google/login")
		return
	}

	sessionID := middleware.GetSessionID(c)

	var user models.UserDetails
	if err := session.GetJSON(c.Request.Context(), store, sessionID, models.SessionKeyUserDetails, &user); err != nil {
		c.Redirect(http.StatusTemporaryRedirect, "/api/v1/auth/google/login")
		return
	}

	c.HTML(http.StatusOK, "account.html", gin.H{
		"Title":   "My Account",
		"User":    user,
		"Updated": c.Query("updated") == "1",
		"Error":   c.Query("error"),
	})
}
