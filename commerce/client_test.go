package commerce_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/SatpalInfilogix/kular-fashion-web/commerce"
	"github.com/SatpalInfilogix/kular-fashion-web/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowCartSendsBearerToken(t *testing.T) {
	var gotAuth, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		_ = json.NewEncoder(w).Encode(models.ServerCartResponse{Cart: &models.ServerCart{ID: 1}})
	}))
	defer srv.Close()

	client := commerce.NewClient(srv.URL + "/api/")
	resp, err := client.ShowCart(context.Background(), "token-abc")
	require.NoError(t, err)

	assert.Equal(t, "Bearer token-abc", gotAuth)
	assert.Equal(t, "/api/cart/show", gotPath)
	require.NotNil(t, resp.Cart)
	assert.Equal(t, 1, resp.Cart.ID)
}

func TestPlaceOrderPostsPayload(t *testing.T) {
	var got models.OrderPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(models.PlaceOrderResult{OrderID: 555})
	}))
	defer srv.Close()

	userID := 12
	client := commerce.NewClient(srv.URL + "/api/")
	result, err := client.PlaceOrder(context.Background(), models.OrderPayload{
		UserID:            &userID,
		DeliveryAddressID: "addr-1",
		PaymentMode:       "card",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(555), result.OrderID)
	require.NotNil(t, got.UserID)
	assert.Equal(t, 12, *got.UserID)
	assert.Equal(t, "addr-1", got.DeliveryAddressID)
}

func TestNon2xxBecomesAPIErrorWithBackendMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message": "Coupon has expired"}`))
	}))
	defer srv.Close()

	client := commerce.NewClient(srv.URL + "/api/")
	_, err := client.ApplyCoupon(context.Background(), "tok", "SAVE10", "40.00")
	require.Error(t, err)

	var apiErr *commerce.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	assert.Equal(t, "Coupon has expired", apiErr.Message)
	assert.Contains(t, apiErr.Error(), "Coupon has expired")
}

func TestNon2xxWithoutMessageBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream blew up"))
	}))
	defer srv.Close()

	client := commerce.NewClient(srv.URL + "/api/")
	_, err := client.FilterMetadata(context.Background())
	require.Error(t, err)

	var apiErr *commerce.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Empty(t, apiErr.Message)
}

func TestShowOrderBuildsPath(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewEncoder(w).Encode(models.OrderDetails{
			OrderID: 555,
			Status:  "processing",
			Total:   decimal.NewFromInt(40),
		})
	}))
	defer srv.Close()

	client := commerce.NewClient(srv.URL + "/api/")
	order, err := client.ShowOrder(context.Background(), "tok", 555)
	require.NoError(t, err)

	assert.Equal(t, "/api/orders/555", gotPath)
	assert.Equal(t, int64(555), order.OrderID)
	assert.True(t, decimal.NewFromInt(40).Equal(order.Total))
}

func TestUpdateAccountFlattensForm(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	fields := url.Values{}
	fields.Set("name", "Asha")
	fields.Set("phone", "07700900000")

	client := commerce.NewClient(srv.URL + "/api/")
	require.NoError(t, client.UpdateAccount(context.Background(), "tok", fields))

	assert.Equal(t, map[string]string{"name": "Asha", "phone": "07700900000"}, got)
}

func TestTrackOrderIsAnonymous(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "555", body["order_id"])
		assert.Equal(t, "shopper@example.com", body["billing_email"])
		_ = json.NewEncoder(w).Encode(models.OrderDetails{OrderID: 555})
	}))
	defer srv.Close()

	client := commerce.NewClient(srv.URL + "/api/")
	order, err := client.TrackOrder(context.Background(), "555", "shopper@example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(555), order.OrderID)
}
