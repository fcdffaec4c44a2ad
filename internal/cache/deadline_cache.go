package cache

import (
	"context"
	"encoding/json"
	"time"

	dom "github.com/dannykpan999-web/ministerial-command-center-sub002/internal/domain"

	"github.com/redis/go-redis/v9"
)

const keyDefaultList = "deadline:list"

// CachedList is the default (unfiltered, first page) listing with its total.
type CachedList struct {
	Items []dom.Deadline `json:"items"`
	Total int            `json:"total"`
}

// DeadlineCache caches the default deadline listing in Redis. Filtered
// queries always hit Postgres; the unfiltered first page is what the
// dashboard polls.
type DeadlineCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewDeadlineCache(rdb *redis.Client, ttl time.Duration) *DeadlineCache {
	return &DeadlineCache{rdb: rdb, ttl: ttl}
}

// GetDefaultList returns the cached listing or nil on miss.
func (c *DeadlineCache) GetDefaultList(ctx context.Context) (*CachedList, error) {
	b, err := c.rdb.Get(ctx, keyDefaultList).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var out CachedList
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SetDefaultList stores the listing in cache.
func (c *DeadlineCache) SetDefaultList(ctx context.Context, list CachedList) error {
	b, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, keyDefaultList, b, c.ttl).Err()
}

// Invalidate removes the cached listing (cache invalidation on write).
func (c *DeadlineCache) Invalidate(ctx context.Context) error {
	return c.rdb.Del(ctx, keyDefaultList).Err()
}
