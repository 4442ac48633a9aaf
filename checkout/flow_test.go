package checkout_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/SatpalInfilogix/kular-fashion-web/cart"
	"github.com/SatpalInfilogix/kular-fashion-web/checkout"
	"github.com/SatpalInfilogix/kular-fashion-web/commerce"
	"github.com/SatpalInfilogix/kular-fashion-web/models"
	"github.com/SatpalInfilogix/kular-fashion-web/session"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// The flow schedules navigation on a timer; the leak check proves the
// zero-delay path never leaves one behind.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type spyOrderPlacer struct {
	calls    int
	payloads []models.OrderPayload
	result   *models.PlaceOrderResult
	err      error
}

func (s *spyOrderPlacer) PlaceOrder(_ context.Context, payload models.OrderPayload) (*models.PlaceOrderResult, error) {
	s.calls++
	s.payloads = append(s.payloads, payload)
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

type noCartShower struct{}

func (noCartShower) ShowCart(_ context.Context, _ string) (*models.ServerCartResponse, error) {
	return &models.ServerCartResponse{}, nil
}

const sessionID = "sess-1"

func newTestFlow(store session.Store, api checkout.OrderPlacer, navigate checkout.NavigateFunc) *checkout.Flow {
	hydrator := &cart.Hydrator{Store: store, Client: noCartShower{}, ImageRoot: ""}
	f := checkout.NewFlow(store, api, hydrator, sessionID, navigate)
	f.SetNavigationDelay(0)
	return f
}

func setGuestCart(t *testing.T, store session.Store) {
	t.Helper()
	guest := models.GuestCart{CartItems: []models.GuestCartItem{
		{ID: 1, Price: decimal.NewFromInt(20), Quantity: 2},
	}}
	require.NoError(t, session.SetJSON(context.Background(), store, sessionID, models.SessionKeyCart, guest))
}

func TestPlaceOrderEmptyCartWarning(t *testing.T) {
	store := session.NewMemoryStore()
	api := &spyOrderPlacer{}
	f := newTestFlow(store, api, nil)

	out := f.PlaceOrder(context.Background())

	assert.Equal(t, checkout.WarnCartEmpty, out.Warning)
	assert.Zero(t, api.calls, "precondition failures must not reach the commerce API")
}

func TestPlaceOrderMissingAddressWarning(t *testing.T) {
	store := session.NewMemoryStore()
	setGuestCart(t, store)
	api := &spyOrderPlacer{}
	f := newTestFlow(store, api, nil)

	out := f.PlaceOrder(context.Background())

	assert.Equal(t, checkout.WarnSelectAddrPayment, out.Warning)
	assert.Zero(t, api.calls)
}

func TestPlaceOrderMissingPaymentWarning(t *testing.T) {
	store := session.NewMemoryStore()
	ctx := context.Background()
	setGuestCart(t, store)
	require.NoError(t, store.Set(ctx, sessionID, models.SessionKeyAddressID, "addr-1"))
	api := &spyOrderPlacer{}
	f := newTestFlow(store, api, nil)

	out := f.PlaceOrder(ctx)

	assert.Equal(t, checkout.WarnSelectAddrPayment, out.Warning)
	assert.Zero(t, api.calls)
}

func TestPlaceOrderGuestSuccess(t *testing.T) {
	store := session.NewMemoryStore()
	ctx := context.Background()
	setGuestCart(t, store)
	require.NoError(t, store.Set(ctx, sessionID, models.SessionKeyAddressID, "addr-1"))
	require.NoError(t, store.Set(ctx, sessionID, models.SessionKeyPaymentMethod, "card"))

	api := &spyOrderPlacer{result: &models.PlaceOrderResult{OrderID: 555}}
	var navigations []string
	f := newTestFlow(store, api, func(path string) { navigations = append(navigations, path) })

	out := f.PlaceOrder(ctx)

	require.Empty(t, out.Warning)
	require.Empty(t, out.ErrMessage)
	assert.Equal(t, int64(555), out.OrderID)
	assert.Equal(t, "/orders/555", out.RedirectTo)
	assert.Equal(t, checkout.StatePlaced, f.State())

	require.Equal(t, 1, api.calls)
	payload := api.payloads[0]
	assert.Nil(t, payload.UserID)
	assert.Equal(t, "addr-1", payload.DeliveryAddressID)
	assert.Equal(t, "card", payload.PaymentMode)

	var sent models.GuestCart
	require.NoError(t, json.Unmarshal(payload.Cart, &sent))
	require.Len(t, sent.CartItems, 1)
	assert.Equal(t, 2, sent.CartItems[0].Quantity)

	// Checkout keys are gone, selections survive.
	for _, key := range models.CheckoutKeys {
		_, err := store.Get(ctx, sessionID, key)
		assert.ErrorIs(t, err, session.ErrNotFound, "key %q should be cleared", key)
	}
	addr, err := store.Get(ctx, sessionID, models.SessionKeyAddressID)
	require.NoError(t, err)
	assert.Equal(t, "addr-1", addr)

	assert.Equal(t, []string{"/orders/555"}, navigations, "exactly one navigation")
}

func TestPlaceOrderAuthenticatedWithoutGuestCart(t *testing.T) {
	store := session.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, session.SetJSON(ctx, store, sessionID, models.SessionKeyUserDetails, models.UserDetails{ID: 12}))
	require.NoError(t, store.Set(ctx, sessionID, models.SessionKeyAddressID, "addr-1"))
	require.NoError(t, store.Set(ctx, sessionID, models.SessionKeyPaymentMethod, "card"))
	require.NoError(t, store.Set(ctx, sessionID, models.SessionKeyCouponCode, "SAVE10"))

	api := &spyOrderPlacer{result: &models.PlaceOrderResult{OrderID: 9}}
	f := newTestFlow(store, api, nil)

	out := f.PlaceOrder(ctx)

	require.Empty(t, out.Warning)
	require.Equal(t, 1, api.calls)
	payload := api.payloads[0]
	require.NotNil(t, payload.UserID)
	assert.Equal(t, 12, *payload.UserID)
	assert.Nil(t, payload.Cart, "server-held cart is resolved by the backend")
	require.NotNil(t, payload.CouponCode)
	assert.Equal(t, "SAVE10", *payload.CouponCode)
}

func TestPlaceOrderBackendErrorSurfacesMessage(t *testing.T) {
	store := session.NewMemoryStore()
	ctx := context.Background()
	setGuestCart(t, store)
	require.NoError(t, store.Set(ctx, sessionID, models.SessionKeyAddressID, "addr-1"))
	require.NoError(t, store.Set(ctx, sessionID, models.SessionKeyPaymentMethod, "card"))

	api := &spyOrderPlacer{err: &commerce.APIError{StatusCode: 422, Message: "Coupon has expired"}}
	f := newTestFlow(store, api, nil)

	out := f.PlaceOrder(ctx)

	assert.Equal(t, "Coupon has expired", out.ErrMessage)
	assert.Equal(t, checkout.StateReady, f.State())

	// Nothing was cleared on failure.
	_, err := store.Get(ctx, sessionID, models.SessionKeyCart)
	assert.NoError(t, err)
}

func TestPlaceOrderBackendErrorWithoutMessageUsesFallback(t *testing.T) {
	store := session.NewMemoryStore()
	ctx := context.Background()
	setGuestCart(t, store)
	require.NoError(t, store.Set(ctx, sessionID, models.SessionKeyAddressID, "addr-1"))
	require.NoError(t, store.Set(ctx, sessionID, models.SessionKeyPaymentMethod, "card"))

	api := &spyOrderPlacer{err: &commerce.APIError{StatusCode: 500}}
	f := newTestFlow(store, api, nil)

	out := f.PlaceOrder(ctx)
	assert.Equal(t, checkout.MsgPlaceOrderFailed, out.ErrMessage)
}

func TestHydrateMovesToReady(t *testing.T) {
	store := session.NewMemoryStore()
	f := newTestFlow(store, &spyOrderPlacer{}, nil)

	assert.Equal(t, checkout.StateLoading, f.State())
	f.Hydrate(context.Background())
	assert.Equal(t, checkout.StateReady, f.State())
	assert.True(t, decimal.Zero.Equal(f.Subtotal()))
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "loading", checkout.StateLoading.String())
	assert.Equal(t, "ready", checkout.StateReady.String())
	assert.Equal(t, "submitting", checkout.StateSubmitting.String())
	assert.Equal(t, "placed", checkout.StatePlaced.String())
}
