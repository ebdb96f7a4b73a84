// internal/session/store_test.go
package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Memory Store Tests
// ==========================

func TestMemoryStore_RoundTrip(t *testing.T) {
	store := NewMemoryStore(0)
	ctx := context.Background()

	state := &State{SessionID: "s-1", Turns: 2, UpdatedAt: time.Now().UTC()}
	require.NoError(t, store.Save(ctx, state))

	got, err := store.Get(ctx, "s-1")
	require.NoError(t, err)
	assert.Equal(t, 2, got.Turns)

	// The returned state is a copy; mutating it must not affect the store.
	got.Turns = 99
	again, err := store.Get(ctx, "s-1")
	require.NoError(t, err)
	assert.Equal(t, 2, again.Turns)
}

func TestMemoryStore_GetMissing(t *testing.T) {
	store := NewMemoryStore(0)

	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_Delete(t *testing.T) {
	store := NewMemoryStore(0)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &State{SessionID: "s-1", Turns: 1}))
	require.NoError(t, store.Delete(ctx, "s-1"))

	_, err := store.Get(ctx, "s-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_TTLExpiry(t *testing.T) {
	store := NewMemoryStore(5 * time.Millisecond)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &State{SessionID: "s-1", Turns: 1}))
	time.Sleep(15 * time.Millisecond)

	_, err := store.Get(ctx, "s-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

// ==========================
// Redis Store Tests
// ==========================

func TestRedisStore_RoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewRedisStore(client, time.Hour)
	ctx := context.Background()

	state := &State{SessionID: "s-2", Turns: 3, UpdatedAt: time.Now().UTC()}
	require.NoError(t, store.Save(ctx, state))

	got, err := store.Get(ctx, "s-2")
	require.NoError(t, err)
	assert.Equal(t, "s-2", got.SessionID)
	assert.Equal(t, 3, got.Turns)
}

func TestRedisStore_GetMissing(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewRedisStore(client, time.Hour)

	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisStore_TTLExpiry(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewRedisStore(client, time.Minute)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &State{SessionID: "s-3", Turns: 1}))

	mr.FastForward(2 * time.Minute)

	_, err := store.Get(ctx, "s-3")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisStore_Delete(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewRedisStore(client, time.Hour)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &State{SessionID: "s-4", Turns: 1}))
	require.NoError(t, store.Delete(ctx, "s-4"))

	_, err := store.Get(ctx, "s-4")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisStore_BackendError(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := NewRedisStore(client, time.Hour)

	mock.ExpectGet(keyPrefix + "s-5").SetErr(assert.AnError)

	_, err := store.Get(context.Background(), "s-5")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}
