package cache

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// The Redis cache tests require a running Redis/Valkey server.
// Set REDIS_ADDRESS (e.g., "localhost:6379") to enable them.
// They are skipped by default.

func skipIfNoRedis(t *testing.T) string {
	t.Helper()
	addr := os.Getenv("REDIS_ADDRESS")
	if addr == "" {
		t.Skip("Skipping Redis tests: set REDIS_ADDRESS to enable")
	}
	return addr
}

// flushTestRedisDB clears DB 15 so each test starts with a clean slate.
func flushTestRedisDB(t *testing.T, addr string) {
	t.Helper()
	client := redis.NewClient(&redis.Options{Addr: addr, DB: 15})
	defer client.Close()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.FlushDB(ctx).Err(); err != nil {
		t.Fatalf("Failed to flush Redis test DB: %v", err)
	}
}

func newTestRedisCache(t *testing.T, ttl time.Duration) Cache {
	t.Helper()
	addr := skipIfNoRedis(t)
	flushTestRedisDB(t, addr)
	c, err := New("redis", ProviderConfig{
		Size:         100,
		TTL:          ttl,
		RedisAddress: addr,
		RedisDB:      15, // high DB number reserved for tests
	})
	if err != nil {
		t.Fatalf("New redis cache: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestRedisCacheGetSet(t *testing.T) {
	c := newTestRedisCache(t, 10*time.Second)

	if _, ok := c.Get("missing"); ok {
		t.Error("Get on empty cache reported a hit")
	}

	c.Set("a", []byte("manifest-a"))
	got, ok := c.Get("a")
	if !ok {
		t.Fatal("Get after Set reported a miss")
	}
	if string(got) != "manifest-a" {
		t.Errorf("Get returned %q, want %q", got, "manifest-a")
	}

	c.Set("a", []byte("manifest-a2"))
	got, _ = c.Get("a")
	if string(got) != "manifest-a2" {
		t.Errorf("Get after overwrite returned %q, want %q", got, "manifest-a2")
	}
}

func TestRedisCacheLen(t *testing.T) {
	c := newTestRedisCache(t, 10*time.Second)

	if c.Len() != 0 {
		t.Errorf("Len() = %d on empty cache, want 0", c.Len())
	}
	for i := 0; i < 3; i++ {
		c.Set(fmt.Sprintf("key%d", i), []byte("v"))
	}
	if c.Len() != 3 {
		t.Errorf("Len() = %d, want 3", c.Len())
	}
}

func TestRedisCacheTTLExpiry(t *testing.T) {
	c := newTestRedisCache(t, 100*time.Millisecond)

	c.Set("ephemeral", []byte("v"))
	if _, ok := c.Get("ephemeral"); !ok {
		t.Fatal("Get right after Set reported a miss")
	}

	time.Sleep(200 * time.Millisecond)
	if _, ok := c.Get("ephemeral"); ok {
		t.Error("entry survived past its TTL")
	}
}

func TestRedisCacheUnreachableServer(t *testing.T) {
	t.Parallel()

	if _, err := New("redis", ProviderConfig{
		Size:         10,
		TTL:          time.Minute,
		RedisAddress: "127.0.0.1:1",
	}); err == nil {
		t.Error("expected error for unreachable Redis server, got nil")
	}
}
