package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CommerceClaims is the payload of the token the commerce API issues at
// sign-in. The storefront never verifies the signature (the secret belongs
// to the commerce API); it only inspects claims to pick the guest or
// authenticated path before spending a round trip.
type CommerceClaims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	jwt.RegisteredClaims
}

// InspectToken parses the commerce token without signature verification.
func InspectToken(tokenString string) (*CommerceClaims, error) {
	claims := &CommerceClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, err
	}
	return claims, nil
}

// TokenUsable reports whether the token is worth sending to the commerce
// API: parseable and not past its expiry claim. Tokens without an expiry
// are sent as-is; the API is the authority either way.
func TokenUsable(tokenString string) bool {
	claims, err := InspectToken(tokenString)
	if err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return true
	}
	return claims.ExpiresAt.After(time.Now())
}

// ExtractTokenFromHeader extracts a bearer token from an Authorization
// header. Format: "Bearer <token>"
func ExtractTokenFromHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", errors.New("authorization header is empty")
	}

	const bearerPrefix = "Bearer "
	if len(authHeader) < len(bearerPrefix) || authHeader[:len(bearerPrefix)] != bearerPrefix {
		return "", errors.New("authorization header must start with 'Bearer '")
	}

	token := authHeader[len(bearerPrefix):]
	if token == "" {
		return "", errors.New("token is empty")
	}

	return token, nil
}
