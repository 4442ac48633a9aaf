package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// CartItem is the single view-model every cart source resolves into. The
// checkout screen renders these regardless of whether the cart lives on the
// commerce backend or in the shopper session.
type CartItem struct {
	ID            int             `json:"id"`
	Name          string          `json:"name"`
	Color         string          `json:"color"`
	Size          string          `json:"size"`
	Price         decimal.Decimal `json:"price"`
	VariantID     int             `json:"variant_id"`
	Quantity      int             `json:"quantity"`
	TotalQuantity int             `json:"total_quantity"`
	Image         string          `json:"image"`
	Brand         string          `json:"brand"`
}

// ── Server cart graph (commerce API cart/show) ───────────────────────────────

type ServerCartResponse struct {
	Cart *ServerCart `json:"cart"`
}

type ServerCart struct {
	ID        int              `json:"id"`
	CartItems []ServerCartItem `json:"cart_items"`
}

type ServerCartItem struct {
	ID       int                `json:"id"`
	Quantity int                `json:"quantity"`
	Variant  *ServerCartVariant `json:"variant"`
}

type ServerCartVariant struct {
	ID            int                `json:"id"`
	TotalQuantity int                `json:"total_quantity"`
	Product       *ServerCartProduct `json:"product"`
	Colors        *ServerCartColors  `json:"colors"`
	Sizes         *ServerCartSizes   `json:"sizes"`
}

type ServerCartProduct struct {
	Name     string            `json:"name"`
	Price    decimal.Decimal   `json:"price"`
	Brand    *ServerCartBrand  `json:"brand"`
	WebImage []ServerCartImage `json:"web_image"`
}

type ServerCartBrand struct {
	Name string `json:"name"`
}

type ServerCartImage struct {
	Path string `json:"path"`
}

type ServerCartColors struct {
	ColorDetail *ColorDetail `json:"color_detail"`
}

type ColorDetail struct {
	Name string `json:"name"`
}

type ServerCartSizes struct {
	SizeDetail *SizeDetail `json:"size_detail"`
}

type SizeDetail struct {
	Size string `json:"size"`
}

// ── Guest cart (shopper session) ─────────────────────────────────────────────

// GuestCart is the shape persisted under the session "cart" key. Entries
// already carry flattened product fields and a relative image path.
type GuestCart struct {
	CartItems []GuestCartItem `json:"cart_items"`
}

type GuestCartItem struct {
	ID            int             `json:"id"`
	Name          string          `json:"name"`
	Color         string          `json:"color"`
	Size          string          `json:"size"`
	Price         decimal.Decimal `json:"price"`
	VariantID     int             `json:"variant_id"`
	Quantity      int             `json:"quantity"`
	TotalQuantity int             `json:"total_quantity"`
	Image         string          `json:"image"`
	Brand         string          `json:"brand"`
}

// ── Order placement ──────────────────────────────────────────────────────────

// OrderPayload is the place-order request body. UserID is nil for guests.
// Cart is nil for authenticated shoppers with no explicit payload cart; the
// commerce API then resolves the server-held cart itself.
type OrderPayload struct {
	UserID            *int            `json:"user_id"`
	Cart              json.RawMessage `json:"cart"`
	CouponCode        *string         `json:"coupon_code"`
	DeliveryAddressID string          `json:"delivery_address_id"`
	PaymentMode       string          `json:"payment_mode"`
}

type PlaceOrderResult struct {
	OrderID int64  `json:"order_id"`
	Message string `json:"message,omitempty"`
}

// CouponResult is the commerce API response to a coupon application.
type CouponResult struct {
	CouponCode  string          `json:"coupon_code"`
	Discount    decimal.Decimal `json:"discount"`
	FinalAmount decimal.Decimal `json:"final_amount"`
	Message     string          `json:"message,omitempty"`
}

// OrderDetails is the subset of the commerce order-show response the
// storefront renders on the confirmation page and the receipt PDF.
type OrderDetails struct {
	OrderID     int64           `json:"order_id"`
	Status      string          `json:"status"`
	PaymentMode string          `json:"payment_mode"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	Discount    decimal.Decimal `json:"discount"`
	Total       decimal.Decimal `json:"total"`
	PlacedAt    string          `json:"placed_at"`
	Items       []CartItem      `json:"items"`
}
