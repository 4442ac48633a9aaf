package session_test

import (
	"context"
	"testing"

	"github.com/SatpalInfilogix/kular-fashion-web/models"
	"github.com/SatpalInfilogix/kular-fashion-web/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreGetMissingKey(t *testing.T) {
	store := session.NewMemoryStore()
	_, err := store.Get(context.Background(), "s1", "cart")
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestMemoryStoreSetGetRoundTrip(t *testing.T) {
	store := session.NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "s1", "coupon_code", "SAVE10"))
	got, err := store.Get(ctx, "s1", "coupon_code")
	require.NoError(t, err)
	assert.Equal(t, "SAVE10", got)

	// Sessions are isolated.
	_, err = store.Get(ctx, "s2", "coupon_code")
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestMemoryStoreDelete(t *testing.T) {
	store := session.NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "s1", "a", "1"))
	require.NoError(t, store.Set(ctx, "s1", "b", "2"))
	require.NoError(t, store.Set(ctx, "s1", "c", "3"))

	require.NoError(t, store.Delete(ctx, "s1", "a", "b", "missing"))

	_, err := store.Get(ctx, "s1", "a")
	assert.ErrorIs(t, err, session.ErrNotFound)
	_, err = store.Get(ctx, "s1", "b")
	assert.ErrorIs(t, err, session.ErrNotFound)
	got, err := store.Get(ctx, "s1", "c")
	require.NoError(t, err)
	assert.Equal(t, "3", got)
}

func TestMemoryStoreClear(t *testing.T) {
	store := session.NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "s1", "a", "1"))
	require.NoError(t, store.Clear(ctx, "s1"))

	_, err := store.Get(ctx, "s1", "a")
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestJSONHelpers(t *testing.T) {
	store := session.NewMemoryStore()
	ctx := context.Background()

	user := models.UserDetails{ID: 12, Name: "Asha", Email: "asha@example.com"}
	require.NoError(t, session.SetJSON(ctx, store, "s1", models.SessionKeyUserDetails, user))

	var got models.UserDetails
	require.NoError(t, session.GetJSON(ctx, store, "s1", models.SessionKeyUserDetails, &got))
	assert.Equal(t, user, got)
}

func TestGetJSONMissingKeyPassesErrNotFound(t *testing.T) {
	store := session.NewMemoryStore()

	var got models.UserDetails
	err := session.GetJSON(context.Background(), store, "s1", models.SessionKeyUserDetails, &got)
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestGetJSONMalformedValue(t *testing.T) {
	store := session.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "s1", models.SessionKeyCart, "{broken"))

	var got models.GuestCart
	err := session.GetJSON(ctx, store, "s1", models.SessionKeyCart, &got)
	require.Error(t, err)
	assert.NotErrorIs(t, err, session.ErrNotFound)
}
