package session

import (
	"context"
	"os"
	"testing"
	"time"

	"coffee-storefront/internal/migrate"
	"github.com/jackc/pgx/v5/pgxpool"
)

func TestPostgres_RoundTrip(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	resetTables(ctx, t, pool)

	store := NewPostgres(pool, nil)
	if err := store.Set(ctx, "sess-1", KeyCartItems, `[]`); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := store.Set(ctx, "sess-1", KeyCheckoutID, "co-1"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := store.Set(ctx, "sess-1", KeyCheckoutID, "co-2"); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}

	entries, err := store.Load(ctx, "sess-1")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(entries) != 2 || entries[KeyCheckoutID] != "co-2" {
		t.Fatalf("unexpected entries %+v", entries)
	}

	if err := store.Delete(ctx, "sess-1", KeyCheckoutID, KeyCheckoutURL); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	entries, err = store.Load(ctx, "sess-1")
	if err != nil {
		t.Fatalf("Load after delete: %v", err)
	}
	if len(entries) != 1 || entries[KeyCartItems] != "[]" {
		t.Fatalf("unexpected entries after delete %+v", entries)
	}
}

func TestPostgres_Expire(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	resetTables(ctx, t, pool)

	store := NewPostgres(pool, nil)
	_ = store.Set(ctx, "stale", KeyCartItems, "[]")
	_ = store.Set(ctx, "live", KeyCartItems, "[]")
	if _, err := pool.Exec(ctx, `UPDATE session_entries SET updated_at = now() - interval '2 hours' WHERE session_id = 'stale'`); err != nil {
		t.Fatalf("age entries: %v", err)
	}

	removed, err := store.Expire(ctx, time.Hour)
	if err != nil {
		t.Fatalf("Expire: %v", err)
	}
	if removed != 1 {
		t.Fatalf("expected 1 removed entry, got %d", removed)
	}
	if entries, _ := store.Load(ctx, "live"); len(entries) != 1 {
		t.Fatalf("live session expired")
	}
}

func testPool(ctx context.Context, t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	return pool
}

func resetTables(ctx context.Context, t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	if _, err := pool.Exec(ctx, `TRUNCATE session_entries`); err != nil {
		t.Fatalf("truncate tables: %v", err)
	}
}
