package cache

import (
	"context"
	"encoding/json"
	"net/url"
	"time"

	dom "github.com/Dr-Min/Scheduler/internal/domain"

	"github.com/redis/go-redis/v9"
)

const (
	keyList = "schedule:list"
	keyUser = "schedule:user:"
	keyOne  = "schedule:one:"
)

// ScheduleCache caches the full list, per-user lists and user+date lookups in
// Redis. Only found records are cached; absence is always re-checked.
type ScheduleCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewScheduleCache returns a new ScheduleCache.
func NewScheduleCache(rdb *redis.Client, ttl time.Duration) *ScheduleCache {
	return &ScheduleCache{rdb: rdb, ttl: ttl}
}

// GetList returns the cached full list or nil if miss.
func (c *ScheduleCache) GetList(ctx context.Context) ([]dom.Schedule, error) {
	return c.getList(ctx, keyList)
}

// SetList stores the full list in cache.
func (c *ScheduleCache) SetList(ctx context.Context, list []dom.Schedule) error {
	return c.setList(ctx, keyList, list)
}

// GetUser returns the cached list for one user, or nil if miss.
func (c *ScheduleCache) GetUser(ctx context.Context, user string) ([]dom.Schedule, error) {
	return c.getList(ctx, keyUser+user)
}

// SetUser stores one user's list in cache.
func (c *ScheduleCache) SetUser(ctx context.Context, user string, list []dom.Schedule) error {
	return c.setList(ctx, keyUser+user, list)
}

// oneKey escapes both parts so a ":" inside a user name cannot alias
// another user/date pair's key.
func oneKey(user, date string) string {
	return keyOne + url.QueryEscape(user) + ":" + url.QueryEscape(date)
}

// GetOne returns the cached user+date record, or nil if miss.
func (c *ScheduleCache) GetOne(ctx context.Context, user, date string) (*dom.Schedule, error) {
	b, err := c.rdb.Get(ctx, oneKey(user, date)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var s dom.Schedule
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// SetOne stores a user+date record in cache.
func (c *ScheduleCache) SetOne(ctx context.Context, user, date string, s dom.Schedule) error {
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, oneKey(user, date), b, c.ttl).Err()
}

// InvalidateAll removes the list key and every per-user and per-pair key
// (cache invalidation on write).
func (c *ScheduleCache) InvalidateAll(ctx context.Context) error {
	if err := c.rdb.Del(ctx, keyList).Err(); err != nil {
		return err
	}
	for _, pattern := range []string{keyUser + "*", keyOne + "*"} {
		iter := c.rdb.Scan(ctx, 0, pattern, 100).Iterator()
		for iter.Next(ctx) {
			if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
				return err
			}
		}
		if err := iter.Err(); err != nil {
			return err
		}
	}
	return nil
}

func (c *ScheduleCache) getList(ctx context.Context, key string) ([]dom.Schedule, error) {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var list []dom.Schedule
	if err := json.Unmarshal(b, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *ScheduleCache) setList(ctx context.Context, key string, list []dom.Schedule) error {
	b, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, b, c.ttl).Err()
}
