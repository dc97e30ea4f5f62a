package cache

import (
	"context"
	"os"
	"testing"

	"github.com/redis/go-redis/v9"
)

// Needs a live Redis; set REDIS_URL to run.
func testClient(t *testing.T) *redis.Client {
	t.Helper()

	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("REDIS_URL not set")
	}

	opts, err := redis.ParseURL(url)
	if err != nil {
		t.Fatalf("parse REDIS_URL: %v", err)
	}
	client := redis.NewClient(opts)
	t.Cleanup(func() { client.Close() })

	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Skipf("redis not reachable: %v", err)
	}
	return client
}

func TestRedisViewCache_SeedAndIncrement(t *testing.T) {
	client := testClient(t)
	ctx := context.Background()

	const restaurantID = int64(999001)
	client.Del(ctx, viewKey(restaurantID))
	t.Cleanup(func() { client.Del(ctx, viewKey(restaurantID)) })

	c := NewViewCache(client)

	seeded, err := c.Seeded(ctx, restaurantID)
	if err != nil {
		t.Fatalf("Seeded: %v", err)
	}
	if seeded {
		t.Fatal("counter should start cold")
	}

	if err := c.Seed(ctx, restaurantID, 41); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	total, err := c.Increment(ctx, restaurantID)
	if err != nil {
		t.Fatalf("Increment: %v", err)
	}
	if total != 42 {
		t.Errorf("total = %d, want 42", total)
	}
}

func TestRedisViewCache_SeedDoesNotResetLiveCounter(t *testing.T) {
	client := testClient(t)
	ctx := context.Background()

	const restaurantID = int64(999002)
	client.Del(ctx, viewKey(restaurantID))
	t.Cleanup(func() { client.Del(ctx, viewKey(restaurantID)) })

	c := NewViewCache(client)

	if err := c.Seed(ctx, restaurantID, 10); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	if _, err := c.Increment(ctx, restaurantID); err != nil {
		t.Fatalf("increment: %v", err)
	}

	// A concurrent worker seeding again must not clobber the live value
	if err := c.Seed(ctx, restaurantID, 0); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	total, err := c.Increment(ctx, restaurantID)
	if err != nil {
		t.Fatalf("increment: %v", err)
	}
	if total != 12 {
		t.Errorf("total = %d, want 12", total)
	}
}
