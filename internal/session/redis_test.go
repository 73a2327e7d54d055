package session

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// newLiveRedisStore skips the test when no Redis answers on REDIS_ADDR
// (default localhost:6379).
func newLiveRedisStore(t *testing.T, ttl time.Duration) *RedisStore {
	t.Helper()

	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	store, err := NewRedisStore(context.Background(), RedisConfig{Addr: addr, TTL: ttl})
	if err != nil {
		t.Skipf("redis not reachable at %s: %v", addr, err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestRedisStore_InvalidIDSkipsRedis(t *testing.T) {
	// Nothing listens on this port, so any network round trip would fail
	// with a connection error instead of ErrNotFound.
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
	store := NewRedisStoreWithClient(client, time.Minute)
	defer store.Close()
	ctx := context.Background()

	if _, err := store.Get(ctx, "not-a-uuid"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for a malformed id, got %v", err)
	}
	if err := store.Save(ctx, &Session{ID: "../../etc"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound when saving a malformed id, got %v", err)
	}
}

func TestRedisStore_MissingKey(t *testing.T) {
	store := newLiveRedisStore(t, time.Minute)

	if _, err := store.Get(context.Background(), uuid.NewString()); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for an unknown session, got %v", err)
	}
}

func TestRedisStore_CreateGetAndRefreshTTL(t *testing.T) {
	store := newLiveRedisStore(t, time.Minute)
	ctx := context.Background()

	s := newTestSession()
	if err := store.Create(ctx, s); err != nil {
		t.Fatalf("Create: %v", err)
	}
	t.Cleanup(func() { store.client.Del(context.Background(), keyPrefix+s.ID) })

	got, err := store.Get(ctx, s.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(got.Flights) != 2 || got.Request.Origin != "HKG" {
		t.Errorf("unexpected session contents: %+v", got)
	}

	if err := store.client.Expire(ctx, keyPrefix+s.ID, 5*time.Second).Err(); err != nil {
		t.Fatalf("Expire: %v", err)
	}
	if err := store.Save(ctx, got); err != nil {
		t.Fatalf("Save: %v", err)
	}

	ttl, err := store.client.TTL(ctx, keyPrefix+s.ID).Result()
	if err != nil {
		t.Fatalf("TTL: %v", err)
	}
	if ttl <= 30*time.Second {
		t.Errorf("expected Save to refresh the TTL to about a minute, got %v", ttl)
	}
}
