package models

// Session keys. Names match the storage keys the web client has always
// used, so the session blob stays interchangeable with it.
const (
	SessionKeyUserDetails      = "userDetails"
	SessionKeyCart             = "cart"
	SessionKeyCouponCode       = "coupon_code"
	SessionKeyCouponDiscount   = "coupon_discount"
	SessionKeyFinalAfterCoupon = "final_after_coupon_code"
	SessionKeyAddressID        = "selectedAddressId"
	SessionKeyPaymentMethod    = "selectedPaymentMethod"
	SessionKeyAuthToken        = "authToken"
)

// CheckoutKeys are the keys cleared after a successful order placement.
var CheckoutKeys = []string{
	SessionKeyCart,
	SessionKeyCouponCode,
	SessionKeyCouponDiscount,
	SessionKeyFinalAfterCoupon,
}

// UserDetails is the identity blob stored under "userDetails" after sign-in.
type UserDetails struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar,omitempty"`
}
