package session

import (
	"context"
	"time"
)

// Entry keys kept per visitor session.
const (
	KeyCartItems   = "cart_items"
	KeyCheckoutID  = "shopify_checkout_id"
	KeyCheckoutURL = "shopify_checkout_url"
)

// Store is a durable string key/value store scoped by session id. Values are
// opaque to the store.
type Store interface {
	// Load returns every entry of the session. An unknown session yields an
	// empty map.
	Load(ctx context.Context, sessionID string) (map[string]string, error)
	Set(ctx context.Context, sessionID, key, value string) error
	// Delete removes the named entries. Missing entries are ignored.
	Delete(ctx context.Context, sessionID string, keys ...string) error
	// Expire drops sessions untouched for longer than ttl and reports how many
	// entries were removed. Stores with native expiry return 0.
	Expire(ctx context.Context, ttl time.Duration) (int64, error)
	Ping(ctx context.Context) error
}
