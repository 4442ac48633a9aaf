package auth_controller

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/SatpalInfilogix/kular-fashion-web/config"
	"github.com/SatpalInfilogix/kular-fashion-web/middleware"
	"github.com/SatpalInfilogix/kular-fashion-web/models"
	"github.com/SatpalInfilogix/kular-fashion-web/session"
	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"
)

// GoogleCallback godoc
// @Summary Google OAuth callback
// @Description Verifies the state token, exchanges the authorization code, fetches the Google profile, signs the shopper in against the commerce API and stores the identity in the shopper session before redirecting back to the storefront.
// @Tags Auth - Google OAuth
// @Produce json
// @Success 307 "Redirect to the storefront after sign-in"
// @Failure 400 {object} models.ApiResponse "Invalid state or missing authorization code"
// @Router /auth/google/callback [get]
func GoogleCallback(c *gin.Context) {
	state := c.Query("state")
	savedState, err := c.Cookie("oauth_state")
	if err != nil || state != savedState {
		log.Printf("❌ [auth] state mismatch")
		redirectToStorefrontWithError(c, "Invalid state token")
		return
	}

	// Clear state cookie
	c.SetCookie("oauth_state", "", -1, "/", "", false, true)

	code := c.Query("code")
	if code == "" {
		log.Printf("❌ [auth] no authorization code")
		redirectToStorefrontWithError(c, "No authorization code")
		return
	}

	token, err := config.GoogleOAuthConfig.Exchange(context.Background(), code)
	if err != nil {
		log.Printf("❌ [auth] code exchange failed: %v", err)
		redirectToStorefrontWithError(c, "Failed to exchange token")
		return
	}

	googleUser, err := fetchGoogleProfile(token)
	if err != nil {
		log.Printf("❌ [auth] %v", err)
		redirectToStorefrontWithError(c, "Failed to get user info")
		return
	}

	googleID := googleUser.Sub
	if googleID == "" {
		googleID = googleUser.ID
	}
	if googleID == "" {
		log.Printf("❌ [auth] no Google ID in profile")
		redirectToStorefrontWithError(c, "Google ID not found")
		return
	}

	// The commerce API owns shopper accounts; first sign-in creates one.
	result, err := client.SocialLogin(c.Request.Context(), models.SocialLoginRequest{
		Provider:   "google",
		ProviderID: googleID,
		Email:      googleUser.Email,
		Name:       googleUser.Name,
		Avatar:     googleUser.Picture,
	})
	if err != nil {
		log.Printf("❌ [auth] commerce sign-in failed: %v", err)
		redirectToStorefrontWithError(c, "Sign-in failed")
		return
	}

	sessionID := middleware.GetSessionID(c)
	ctx := c.Request.Context()

	if err := session.SetJSON(ctx, store, sessionID, models.SessionKeyUserDetails, result.User); err != nil {
		log.Printf("❌ [auth] failed to store user details: %v", err)
		redirectToStorefrontWithError(c, "Sign-in failed")
		return
	}
	if err := store.Set(ctx, sessionID, models.SessionKeyAuthToken, result.Token); err != nil {
		log.Printf("❌ [auth] failed to store auth token: %v", err)
		redirectToStorefrontWithError(c, "Sign-in failed")
		return
	}

	log.Printf("✅ [auth] signed in: %s", result.User.Email)
	c.Redirect(http.StatusTemporaryRedirect, config.GetStorefrontURL())
}

func fetchGoogleProfile(token *oauth2.Token) (*models.GoogleUserInfo, error) {
	httpClient := config.GoogleOAuthConfig.Client(context.Background(), token)
	resp, err := httpClient.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		return nil, fmt.Errorf("userinfo request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("userinfo read failed: %w", err)
	}

	var googleUser models.GoogleUserInfo
	if err := json.Unmarshal(body, &googleUser); err != nil {
		return nil, fmt.Errorf("userinfo decode failed: %w", err)
	}
	return &googleUser, nil
}

func redirectToStorefrontWithError(c *gin.Context, errorMsg string) {
	redirectURL := fmt.Sprintf("%s/auth/error?message=%s", config.GetStorefrontURL(), errorMsg)
	c.Redirect(http.StatusTemporaryRedirect, redirectURL)
}
