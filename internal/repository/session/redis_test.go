package session

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisStore_RoundTripAndTTL(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set")
	}
	ctx := context.Background()
	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = client.Close() })

	prefix := "test:" + uuid.NewString() + ":"
	store := NewRedisWithClient(client, prefix, time.Minute)
	require.NoError(t, store.Ping(ctx))

	require.NoError(t, store.Set(ctx, "sess-1", KeyCartItems, "[]"))
	require.NoError(t, store.Set(ctx, "sess-1", KeyCheckoutURL, "https://shop.example.com/c/1"))
	t.Cleanup(func() { client.Del(ctx, prefix+"sess-1") })

	entries, err := store.Load(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		KeyCartItems:   "[]",
		KeyCheckoutURL: "https://shop.example.com/c/1",
	}, entries)

	ttl, err := client.TTL(ctx, prefix+"sess-1").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	require.NoError(t, store.Delete(ctx, "sess-1", KeyCheckoutURL))
	entries, err = store.Load(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{KeyCartItems: "[]"}, entries)

	removed, err := store.Expire(ctx, time.Hour)
	require.NoError(t, err)
	assert.Zero(t, removed)
}
