package storage

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const dedupPrefix = "dispatch:dedup:"

// RedisDedupStore backs the consumer idempotency wrapper. Keys are
// namespaced so they can coexist with the garage geo index on the same
// Redis instance.
type RedisDedupStore struct {
	client *redis.Client
}

func NewRedisDedupStore(c *redis.Client) *RedisDedupStore {
	return &RedisDedupStore{client: c}
}

func (r *RedisDedupStore) SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) (bool, error) {
	return r.client.SetNX(ctx, dedupPrefix+key, value, expiration).Result()
}

func (r *RedisDedupStore) Del(ctx context.Context, key string) error {
	return r.client.Del(ctx, dedupPrefix+key).Err()
}
