package models

// GoogleUserInfo is the profile Google returns from the userinfo endpoint.
// Sub vs ID and EmailVerified vs VerifiedEmail differ between the v2 and
// v3 endpoints; both shapes are accepted.
type GoogleUserInfo struct {
	Sub           string `json:"sub"`
	ID            string `json:"id"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

// SocialLoginRequest is forwarded to the commerce API after the Google
// identity has been verified here.
type SocialLoginRequest struct {
	Provider   string `json:"provider"`
	ProviderID string `json:"provider_id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	Avatar     string `json:"avatar,omitempty"`
}

// SocialLoginResult is the commerce API's answer: its own bearer token
// plus the shopper's account record.
type SocialLoginResult struct {
	Token string      `json:"token"`
	User  UserDetails `json:"user"`
}
