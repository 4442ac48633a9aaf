package middleware

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"
)

const (
	sessionCookieName = "kular_session"
	sessionIDKey      = "sid"
)

var cookieStore *sessions.CookieStore

// InitSessionCookies configures the signed cookie that carries the shopper
// session ID. The session state itself lives in the session store, not in
// the cookie.
func InitSessionCookies() {
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		log.Fatal("❌ SESSION_SECRET environment variable not set")
	}

	cookieStore = sessions.NewCookieStore([]byte(secret))
	cookieStore.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   30 * 24 * 60 * 60,
		HttpOnly: true,
		Secure:   os.Getenv("APP_ENV") == "production",
		SameSite: http.SameSiteLaxMode,
	}
	log.Println("✅ Session cookies initialized")
}

// ShopperSession ensures every request carries a shopper session ID,
// minting one for first-time visitors.
func ShopperSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, err := cookieStore.Get(c.Request, sessionCookieName)
		if err != nil {
			// Tampered or stale cookie: fall through with a fresh session.
			log.Printf("[session] dropping unreadable cookie: %v", err)
			sess, _ = cookieStore.New(c.Request, sessionCookieName)
		}

		id, ok := sess.Values[sessionIDKey].(string)
		if !ok || id == "" {
			id = uuid.NewString()
			sess.Values[sessionIDKey] = id
			if err := sess.Save(c.Request, c.Writer); err != nil {
				log.Printf("[session] failed to save cookie: %v", err)
			}
		}

		c.Set("sessionID", id)
		c.Next()
	}
}

// GetSessionID returns the shopper session ID set by ShopperSession.
func GetSessionID(c *gin.Context) string {
	if id, exists := c.Get("sessionID"); exists {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return ""
}
