package auth_controller

import (
	"log"
	"net/http"

	"github.com/SatpalInfilogix/kular-fashion-web/middleware"
	"github.com/SatpalInfilogix/kular-fashion-web/models"
	"github.com/gin-gonic/gin"
)

// Logout godoc
// @Summary Sign the shopper out
// @Description Drops the identity keys from the shopper session. The cart and other session state survive sign-out.
// @Tags Auth - Google OAuth
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /auth/logout [post]
func Logout(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	err := store.Delete(c.Request.Context(), sessionID,
		models.SessionKeyUserDetails,
		models.SessionKeyAuthToken,
	)
	if err != nil {
		log.Printf("❌ [auth] logout failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to sign out"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Signed out", nil))
}
