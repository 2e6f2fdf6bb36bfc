package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// statsCacheTTL bounds staleness for cached aggregates; writes invalidate
// eagerly so the TTL only matters if an invalidation is missed.
const statsCacheTTL = 5 * time.Minute

// StatsCache caches per-user aggregate payloads in Redis. A nil client
// disables caching entirely.
type StatsCache struct {
	client *redis.Client
}

// NewStatsCache creates a new StatsCache. Pass nil to run without Redis.
func NewStatsCache(client *redis.Client) *StatsCache {
	return &StatsCache{client: client}
}

func (c *StatsCache) key(userID uint, name string) string {
	return fmt.Sprintf("stats:%d:%s", userID, name)
}

// Get loads a cached payload into dest. Returns false on miss or when
// caching is disabled.
func (c *StatsCache) Get(ctx context.Context, userID uint, name string, dest interface{}) bool {
	if c.client == nil {
		return false
	}
	data, err := c.client.Get(ctx, c.key(userID, name)).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(data, dest) == nil
}

// Set stores a payload for a user. Failures are ignored, the next read
// recomputes.
func (c *StatsCache) Set(ctx context.Context, userID uint, name string, value interface{}) {
	if c.client == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	c.client.Set(ctx, c.key(userID, name), data, statsCacheTTL)
}

// InvalidateUser drops every cached aggregate of a user. Called whenever a
// trade of theirs is created, closed, edited or deleted.
func (c *StatsCache) InvalidateUser(ctx context.Context, userID uint) {
	if c.client == nil {
		return
	}
	pattern := fmt.Sprintf("stats:%d:*", userID)
	iter := c.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		c.client.Del(ctx, iter.Val())
	}
}
