package middleware

import (
	"log"

	"github.com/SatpalInfilogix/kular-fashion-web/models"
	"github.com/SatpalInfilogix/kular-fashion-web/session"
	"github.com/SatpalInfilogix/kular-fashion-web/utils"
	"github.com/gin-gonic/gin"
)

// Identity classifies the request as authenticated or guest from the
// session-held commerce token. An expired token is evicted together with
// the stale identity blob, so downstream code never sees a truthy
// userDetails next to a dead token.
func Identity(store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := GetSessionID(c)
		if sessionID == "" {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		token, err := store.Get(ctx, sessionID, models.SessionKeyAuthToken)
		if err != nil || token == "" {
			c.Next()
			return
		}

		if !utils.TokenUsable(token) {
			log.Printf("[identity] expired commerce token, clearing session identity")
			if err := store.Delete(ctx, sessionID, models.SessionKeyAuthToken, models.SessionKeyUserDetails); err != nil {
				log.Printf("[identity] failed to clear identity keys: %v", err)
			}
			c.Next()
			return
		}

		var user models.UserDetails
		if err := session.GetJSON(ctx, store, sessionID, models.SessionKeyUserDetails, &user); err == nil && user.ID != 0 {
			c.Set("authenticated", true)
			c.Set("userID", user.ID)
			c.Set("authToken", token)
		}
		c.Next()
	}
}

// IsAuthenticated reports whether Identity resolved a signed-in shopper.
func IsAuthenticated(c *gin.Context) bool {
	v, exists := c.Get("authenticated")
	if !exists {
		return false
	}
	b, ok := v.(bool)
	return ok && b
}
