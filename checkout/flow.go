// Package checkout drives the order-summary screen: hydrate the cart,
// compute totals, validate preconditions, place the order, clean up the
// session and hand the shopper over to the confirmation page.
package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/SatpalInfilogix/kular-fashion-web/cart"
	"github.com/SatpalInfilogix/kular-fashion-web/commerce"
	"github.com/SatpalInfilogix/kular-fashion-web/models"
	"github.com/SatpalInfilogix/kular-fashion-web/session"
	"github.com/shopspring/decimal"
)

// State of the order-summary screen.
type State int

const (
	StateLoading State = iota
	StateReady
	StateSubmitting
	StatePlaced
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateSubmitting:
		return "submitting"
	case StatePlaced:
		return "placed"
	}
	return "unknown"
}

// Shopper-facing messages.
const (
	WarnCartEmpty         = "Your cart is empty."
	WarnSelectAddrPayment = "Please select a delivery address and payment method."
	MsgOrderPlaced        = "Order placed successfully!"
	MsgPlaceOrderFailed   = "Something went wrong while placing the order."
)

// NavigationDelay lets the success message render before the shopper is
// moved to the confirmation page. Not a correctness requirement.
const NavigationDelay = 1 * time.Second

// OrderPlacer is the slice of the commerce client the flow needs.
type OrderPlacer interface {
	PlaceOrder(ctx context.Context, payload models.OrderPayload) (*models.PlaceOrderResult, error)
}

// NavigateFunc moves the shopper to a new path once an order is placed.
type NavigateFunc func(path string)

// Outcome is the result of one place-order attempt. Exactly one of
// Warning, ErrMessage or OrderID is meaningful.
type Outcome struct {
	// Warning is a precondition failure. No network call was made and the
	// screen state did not change.
	Warning string
	// ErrMessage is a commerce API failure, verbatim from the backend when
	// it sent one.
	ErrMessage string

	OrderID       int64
	RedirectTo    string
	RedirectAfter time.Duration
}

// Flow is the order-summary state machine. One instance serves one screen
// for one shopper; it is not safe for concurrent use, matching the
// single-shopper-single-tab assumption.
type Flow struct {
	store     session.Store
	api       OrderPlacer
	hydrator  *cart.Hydrator
	sessionID string

	navigate NavigateFunc
	delay    time.Duration

	state State
	items []models.CartItem
}

// NewFlow builds a flow in the Loading state. navigate may be nil when the
// caller handles redirects itself.
func NewFlow(store session.Store, api OrderPlacer, hydrator *cart.Hydrator, sessionID string, navigate NavigateFunc) *Flow {
	return &Flow{
		store:     store,
		api:       api,
		hydrator:  hydrator,
		sessionID: sessionID,
		navigate:  navigate,
		delay:     NavigationDelay,
		state:     StateLoading,
	}
}

// SetNavigationDelay overrides the post-success delay. Zero navigates
// synchronously.
func (f *Flow) SetNavigationDelay(d time.Duration) { f.delay = d }

func (f *Flow) State() State              { return f.state }
func (f *Flow) Items() []models.CartItem  { return f.items }
func (f *Flow) Subtotal() decimal.Decimal { return cart.Subtotal(f.items) }

// Hydrate loads the cart and moves the screen to Ready. Hydration failures
// have already been degraded to an empty cart by the builder.
func (f *Flow) Hydrate(ctx context.Context) {
	f.items = f.hydrator.Hydrate(ctx, f.sessionID)
	f.state = StateReady
}

// PlaceOrder validates preconditions, assembles the payload from session
// values and submits it. Preconditions abort before any network call.
func (f *Flow) PlaceOrder(ctx context.Context) Outcome {
	var user models.UserDetails
	hasUser := session.GetJSON(ctx, f.store, f.sessionID, models.SessionKeyUserDetails, &user) == nil && user.ID != 0

	rawCart, err := f.store.Get(ctx, f.sessionID, models.SessionKeyCart)
	if err != nil && !errors.Is(err, session.ErrNotFound) {
		log.Printf("[checkout] session read failed: %v", err)
	}
	var guest models.GuestCart
	if rawCart != "" {
		if err := json.Unmarshal([]byte(rawCart), &guest); err != nil {
			log.Printf("[checkout] malformed guest cart ignored: %v", err)
			guest.CartItems = nil
		}
	}

	if !hasUser && len(guest.CartItems) == 0 {
		return Outcome{Warning: WarnCartEmpty}
	}

	addressID, _ := f.store.Get(ctx, f.sessionID, models.SessionKeyAddressID)
	paymentMode, _ := f.store.Get(ctx, f.sessionID, models.SessionKeyPaymentMethod)
	if addressID == "" || paymentMode == "" {
		return Outcome{Warning: WarnSelectAddrPayment}
	}

	payload := models.OrderPayload{
		DeliveryAddressID: addressID,
		PaymentMode:       paymentMode,
	}
	if hasUser {
		payload.UserID = &user.ID
	}
	if len(guest.CartItems) > 0 {
		payload.Cart = json.RawMessage(rawCart)
	}
	if code, err := f.store.Get(ctx, f.sessionID, models.SessionKeyCouponCode); err == nil && code != "" {
		payload.CouponCode = &code
	}

	f.state = StateSubmitting
	result, err := f.api.PlaceOrder(ctx, payload)
	if err != nil {
		f.state = StateReady
		log.Printf("[checkout] place-order failed: %v", err)
		msg := MsgPlaceOrderFailed
		var apiErr *commerce.APIError
		if errors.As(err, &apiErr) && apiErr.Message != "" {
			msg = apiErr.Message
		}
		return Outcome{ErrMessage: msg}
	}

	f.state = StatePlaced
	if err := f.store.Delete(ctx, f.sessionID, models.CheckoutKeys...); err != nil {
		// The order is placed; a stale coupon key is an annoyance, not a failure.
		log.Printf("[checkout] failed to clear checkout keys: %v", err)
	}

	target := fmt.Sprintf("/orders/%d", result.OrderID)
	if f.navigate != nil {
		if f.delay <= 0 {
			f.navigate(target)
		} else {
			time.AfterFunc(f.delay, func() { f.navigate(target) })
		}
	}

	log.Printf("✅ Order placed: %d (session %s)", result.OrderID, f.sessionID)
	return Outcome{
		OrderID:       result.OrderID,
		RedirectTo:    target,
		RedirectAfter: f.delay,
	}
}
