package redis

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

type fakeStore struct {
	values map[string]string
}

func (f *fakeStore) Ping(ctx context.Context) *redis.StatusCmd {
	return redis.NewStatusResult("PONG", nil)
}

func (f *fakeStore) Set(ctx context.Context, key string, value any, ttl time.Duration) *redis.StatusCmd {
	if f.values == nil {
		f.values = map[string]string{}
	}
	f.values[key] = value.(string)
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeStore) Get(ctx context.Context, key string) *redis.StringCmd {
	if val, ok := f.values[key]; ok {
		return redis.NewStringResult(val, nil)
	}
	return redis.NewStringResult("", redis.Nil)
}

func (f *fakeStore) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	var removed int64
	for _, key := range keys {
		if _, ok := f.values[key]; ok {
			delete(f.values, key)
			removed++
		}
	}
	return redis.NewIntResult(removed, nil)
}

func TestLookupKeyNamespacing(t *testing.T) {
	c := NewWithStore(&fakeStore{})
	if got := c.LookupKey("cep", "01310100"); got != "nexus:lookup:cep:01310100" {
		t.Fatalf("unexpected key %q", got)
	}
}

func TestGetSetDelRoundTrip(t *testing.T) {
	c := NewWithStore(&fakeStore{})
	ctx := context.Background()

	if _, err := c.Get(ctx, "missing"); err != ErrCacheMiss {
		t.Fatalf("expected cache miss, got %v", err)
	}

	if err := c.Set(ctx, "k", "v", time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}
	val, err := c.Get(ctx, "k")
	if err != nil || val != "v" {
		t.Fatalf("get after set: %q %v", val, err)
	}

	if err := c.Del(ctx, "k"); err != nil {
		t.Fatalf("del: %v", err)
	}
	if _, err := c.Get(ctx, "k"); err != ErrCacheMiss {
		t.Fatalf("expected miss after delete, got %v", err)
	}
}
