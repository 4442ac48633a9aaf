package account_controller_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/SatpalInfilogix/kular-fashion-web/commerce"
	"github.com/SatpalInfilogix/kular-fashion-web/controllers/account_controller"
	"github.com/SatpalInfilogix/kular-fashion-web/session"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateAccountForwardsEveryProfileField(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var forwarded map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/account/update", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&forwarded))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"ok"}`))
	}))
	defer srv.Close()

	store := session.NewMemoryStore()
	account_controller.Init(store, commerce.NewClient(srv.URL+"/"))

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("sessionID", "s1")
		c.Set("authToken", "tok")
		c.Next()
	})
	r.POST("/account", account_controller.UpdateAccount)

	form := url.Values{
		"name":      {"Jas Kular"},
		"phone":     {"07700900000"},
		"dname":     {"Jas"},
		"email":     {"jas@example.com"},
		"password":  {"old-secret"},
		"npassword": {"new-secret"},
		"cpassword": {"new-secret"},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/account", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/account?updated=1", w.Header().Get("Location"))

	for key, want := range form {
		assert.Equal(t, want[0], forwarded[key], "field %q must reach the commerce API", key)
	}
}

func TestUpdateAccountWithoutTokenRedirectsToLogin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	store := session.NewMemoryStore()
	account_controller.Init(store, commerce.NewClient("http://commerce.invalid/"))

	r := gin.New()
	r.POST("/account", account_controller.UpdateAccount)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/account", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusTemporaryRedirect, w.Code)
	assert.Equal(t, "/api/v1/auth/google/login", w.Header().Get("Location"))
}
