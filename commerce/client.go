// Package commerce is the HTTP client for the external commerce API. The
// storefront owns no commerce data; every cart, order, coupon and filter
// operation round-trips through here.
package commerce

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/SatpalInfilogix/kular-fashion-web/models"
)

// APIError carries the commerce backend's own message so callers can show
// it verbatim to the shopper.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("commerce: %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("commerce: unexpected status %d", e.StatusCode)
}

// Client issues authenticated and anonymous requests against the commerce
// API base URL.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// do runs one request and decodes the JSON body into out (when non-nil).
// Non-2xx responses become an *APIError with the backend "message" field
// extracted if present.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("commerce: marshal payload: %w", err)
		}
		reqBody = bytes.NewBuffer(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("commerce: create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("commerce: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("commerce: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var envelope struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(raw, &envelope) == nil {
			apiErr.Message = envelope.Message
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("commerce: decode response: %w", err)
	}
	return nil
}

// ShowCart fetches the server-held cart of an authenticated shopper.
func (c *Client) ShowCart(ctx context.Context, token string) (*models.ServerCartResponse, error) {
	var out models.ServerCartResponse
	if err := c.do(ctx, http.MethodGet, "cart/show", token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PlaceOrder submits the assembled order payload.
func (c *Client) PlaceOrder(ctx context.Context, payload models.OrderPayload) (*models.PlaceOrderResult, error) {
	var out models.PlaceOrderResult
	if err := c.do(ctx, http.MethodPost, "place-order", "", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ApplyCoupon validates a coupon against the current cart total.
func (c *Client) ApplyCoupon(ctx context.Context, token, code string, cartTotal string) (*models.CouponResult, error) {
	body := map[string]string{
		"coupon_code": code,
		"cart_total":  cartTotal,
	}
	var out models.CouponResult
	if err := c.do(ctx, http.MethodPost, "apply-coupon", token, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ShowOrder fetches a placed order for the confirmation page and receipt.
func (c *Client) ShowOrder(ctx context.Context, token string, orderID int64) (*models.OrderDetails, error) {
	var out models.OrderDetails
	path := fmt.Sprintf("orders/%d", orderID)
	if err := c.do(ctx, http.MethodGet, path, token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FilterMetadata fetches the facet universe for the product listing.
func (c *Client) FilterMetadata(ctx context.Context) (*models.FacetDefinition, error) {
	var out models.FacetDefinition
	if err := c.do(ctx, http.MethodGet, "store/filters", "", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SocialLogin exchanges a verified Google identity for a commerce API
// bearer token and the shopper's account record. The commerce backend
// creates the account on first sign-in.
func (c *Client) SocialLogin(ctx context.Context, req models.SocialLoginRequest) (*models.SocialLoginResult, error) {
	var out models.SocialLoginResult
	if err := c.do(ctx, http.MethodPost, "auth/social-login", "", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateAccount passes the account form through. The commerce API owns
// validation and password hashing.
func (c *Client) UpdateAccount(ctx context.Context, token string, fields url.Values) error {
	body := map[string]string{}
	for k := range fields {
		body[k] = fields.Get(k)
	}
	return c.do(ctx, http.MethodPost, "account/update", token, body, nil)
}

// TrackOrder resolves an order by id + billing email for guests.
func (c *Client) TrackOrder(ctx context.Context, orderID, billingEmail string) (*models.OrderDetails, error) {
	body := map[string]string{
		"order_id":      orderID,
		"billing_email": billingEmail,
	}
	var out models.OrderDetails
	if err := c.do(ctx, http.MethodPost, "track-order", "", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
