package account_controller

import (
	"errors"
	"log"
	"net/http"
	"net/url"

	"github.com/SatpalInfilogix/kular-fashion-web/commerce"
	"github.com/SatpalInfilogix/kular-fashion-web/middleware"
	"github.com/SatpalInfilogix/kular-fashion-web/models"
	"github.com/SatpalInfilogix/kular-fashion-web/session"
	"github.com/gin-gonic/gin"
)

// UpdateAccount godoc
// @Summary Update account details
// @Description Forwards the submitted form to the commerce API. Validation and password hashing live there; this handler only relays the outcome back to the account page.
// @Tags Account
// @Accept x-www-form-urlencoded
// @Produce html
// @Success 303 "Redirect back to the account page"
// @Router /account [post]
func UpdateAccount(c *gin.Context) {
	token, _ := c.Get("authToken")
	authToken, ok := token.(string)
	if !ok || authToken == "" {
		c.Redirect(http.StatusTemporaryRedirect, "/api/v1/auth/google/login")
		return
	}

	if err := c.Request.ParseForm(); err != nil {
		c.Redirect(http.StatusSeeOther, "/account?error="+url.QueryEscape("Invalid form submission"))
		return
	}

	fields := url.Values{}
	for _, key := range []string{"name", "phone", "dname", "email", "password", "npassword", "cpassword"} {
		if v := c.PostForm(key); v != "" {
			fields.Set(key, v)
		}
	}

	if err := client.UpdateAccount(c.Request.Context(), authToken, fields); err != nil {
		log.Printf("❌ [account] update failed: %v", err)
		msg := "Failed to update account"
		var apiErr *commerce.APIError
		if errors.As(err, &apiErr) && apiErr.Message != "" {
			msg = apiErr.Message
		}
		c.Redirect(http.StatusSeeOther, "/account?error="+url.QueryEscape(msg))
		return
	}

	refreshSessionIdentity(c, fields)
	c.Redirect(http.StatusSeeOther, "/account?updated=1")
}

// refreshSessionIdentity keeps the session identity blob in step with an
// accepted update, so the account page reflects it without a re-login.
func refreshSessionIdentity(c *gin.Context, fields url.Values) {
	sessionID := middleware.GetSessionID(c)
	ctx := c.Request.Context()

	var user models.UserDetails
	if err := session.GetJSON(ctx, store, sessionID, models.SessionKeyUserDetails, &user); err != nil {
		return
	}
	if v := fields.Get("name"); v != "" {
		user.Name = v
	}
	if v := fields.Get("email"); v != "" {
		user.Email = v
	}
	if err := session.SetJSON(ctx, store, sessionID, models.SessionKeyUserDetails, user); err != nil {
		log.Printf("⚠️ [account] failed to refresh session identity: %v", err)
	}
}
