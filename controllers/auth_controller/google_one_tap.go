package auth_controller

import (
	"log"
	"net/http"

	"github.com/SatpalInfilogix/kular-fashion-web/config"
	"github.com/SatpalInfilogix/kular-fashion-web/middleware"
	"github.com/SatpalInfilogix/kular-fashion-web/models"
	"github.com/SatpalInfilogix/kular-fashion-web/session"
	"github.com/gin-gonic/gin"
)

type oneTapRequest struct {
	Credential string `json:"credential" binding:"required"`
}

// GoogleOneTap godoc
// @Summary Sign in with a Google One Tap credential
// @Description Verifies the ID token against Google's OIDC keys, signs the shopper in against the commerce API and stores the identity in the shopper session. Unlike the redirect flow, this responds with JSON for the One Tap prompt.
// @Tags Auth - Google OAuth
// @Accept json
// @Produce json
// @Param credential body oneTapRequest true "Google ID token"
// @Success 200 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse "Invalid or expired ID token"
// @Router /auth/google/one-tap [post]
func GoogleOneTap(c *gin.Context) {
	var req oneTapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "A Google credential is required"))
		return
	}

	ctx := c.Request.Context()

	idToken, err := config.OIDCVerifier.Verify(ctx, req.Credential)
	if err != nil {
		log.Printf("❌ [auth] One Tap token rejected: %v", err)
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid Google credential"))
		return
	}

	var claims struct {
		Sub           string `json:"sub"`
		Email         string `json:"email"`
		EmailVerified bool   `json:"email_verified"`
		Name          string `json:"name"`
		Picture       string `json:"picture"`
	}
	if err := idToken.Claims(&claims); err != nil {
		log.Printf("❌ [auth] One Tap claims decode failed: %v", err)
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid Google credential"))
		return
	}

	result, err := client.SocialLogin(ctx, models.SocialLoginRequest{
		Provider:   "google",
		ProviderID: claims.Sub,
		Email:      claims.Email,
		Name:       claims.Name,
		Avatar:     claims.Picture,
	})
	if err != nil {
		log.Printf("❌ [auth] commerce sign-in failed: %v", err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Sign-in failed"))
		return
	}

	sessionID := middleware.GetSessionID(c)
	if err := session.SetJSON(ctx, store, sessionID, models.SessionKeyUserDetails, result.User); err != nil {
		log.Printf("❌ [auth] failed to store user details: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Sign-in failed"))
		return
	}
	if err := store.Set(ctx, sessionID, models.SessionKeyAuthToken, result.Token); err != nil {
		log.Printf("❌ [auth] failed to store auth token: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Sign-in failed"))
		return
	}

	log.Printf("✅ [auth] One Tap sign-in: %s", result.User.Email)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Signed in", result.User))
}
