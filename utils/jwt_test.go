package utils_test

import (
	"testing"
	"time"

	"github.com/SatpalInfilogix/kular-fashion-web/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims utils.CommerceClaims) string {
	t.Helper()
	// Any key works; the storefront never verifies signatures.
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("not-the-real-secret"))
	require.NoError(t, err)
	return token
}

func TestInspectTokenReadsClaims(t *testing.T) {
	token := signedToken(t, utils.CommerceClaims{
		UserID: "12",
		Email:  "shopper@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	claims, err := utils.InspectToken(token)
	require.NoError(t, err)
	assert.Equal(t, "12", claims.UserID)
	assert.Equal(t, "shopper@example.com", claims.Email)
}

func TestTokenUsable(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{
			name: "valid and unexpired",
			token: signedToken(t, utils.CommerceClaims{
				RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
			}),
			want: true,
		},
		{
			name: "expired",
			token: signedToken(t, utils.CommerceClaims{
				RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute))},
			}),
			want: false,
		},
		{
			name:  "no expiry claim is sent as-is",
			token: signedToken(t, utils.CommerceClaims{UserID: "12"}),
			want:  true,
		},
		{
			name:  "garbage is unusable",
			token: "not.a.jwt",
			want:  false,
		},
		{
			name:  "empty is unusable",
			token: "",
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.TokenUsable(tt.token))
		})
	}
}

func TestExtractTokenFromHeader(t *testing.T) {
	token, err := utils.ExtractTokenFromHeader("Bearer abc123")
	require.NoError(t, err)
	assert.Equal(t, "abc123", token)

	_, err = utils.ExtractTokenFromHeader("")
	assert.Error(t, err)

	_, err = utils.ExtractTokenFromHeader("Basic abc123")
	assert.Error(t, err)

	_, err = utils.ExtractTokenFromHeader("Bearer ")
	assert.Error(t, err)
}
