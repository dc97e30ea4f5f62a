package cache

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// ViewCountPrefix is the key prefix for restaurant view counters
	ViewCountPrefix = "views:restaurant:"

	// ViewCountTTL keeps hot counters alive; the database retains the total
	// after expiry, so a cold counter is re-seeded on the next view.
	ViewCountTTL = 7 * 24 * time.Hour
)

// ViewCache is the hot-path counter for restaurant views. The worker
// increments it per view event and writes the running total back to the
// database, so the DB column stays correct even if the cache expires.
type ViewCache interface {
	// Increment bumps the counter and returns the new value.
	// The counter must have been seeded first; Seeded reports whether it was.
	Increment(ctx context.Context, restaurantID int64) (int64, error)

	// Seeded reports whether a counter exists for the restaurant.
	Seeded(ctx context.Context, restaurantID int64) (bool, error)

	// Seed initializes the counter from the database total. Uses SETNX so a
	// concurrent seed never resets a counter that is already live.
	Seed(ctx context.Context, restaurantID, total int64) error
}

// RedisViewCache implements ViewCache using plain Redis counters.
type RedisViewCache struct {
	client *redis.Client
}

// NewViewCache creates a ViewCache backed by Redis.
func NewViewCache(client *redis.Client) ViewCache {
	return &RedisViewCache{client: client}
}

func viewKey(restaurantID int64) string {
	return fmt.Sprintf("%s%d", ViewCountPrefix, restaurantID)
}

func (c *RedisViewCache) Increment(ctx context.Context, restaurantID int64) (int64, error) {
	key := viewKey(restaurantID)

	pipe := c.client.Pipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, ViewCountTTL)

	if _, err := pipe.Exec(ctx); err != nil {
		log.Printf("[ViewCache] Increment FAILED: restaurant=%d err=%v", restaurantID, err)
		return 0, fmt.Errorf("increment view count: %w", err)
	}

	return incr.Val(), nil
}

func (c *RedisViewCache) Seeded(ctx context.Context, restaurantID int64) (bool, error) {
	n, err := c.client.Exists(ctx, viewKey(restaurantID)).Result()
	if err != nil {
		return false, fmt.Errorf("check view counter: %w", err)
	}
	return n > 0, nil
}

func (c *RedisViewCache) Seed(ctx context.Context, restaurantID, total int64) error {
	key := viewKey(restaurantID)

	set, err := c.client.SetNX(ctx, key, total, ViewCountTTL).Result()
	if err != nil {
		log.Printf("[ViewCache] Seed FAILED: restaurant=%d err=%v", restaurantID, err)
		return fmt.Errorf("seed view count: %w", err)
	}
	if set {
		log.Printf("[ViewCache] Seed OK: restaurant=%d total=%d", restaurantID, total)
	}
	return nil
}
