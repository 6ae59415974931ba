package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Guyuepp/go-clean-forum/domain"
	"github.com/Guyuepp/go-clean-forum/internal/repository/cache"
)

const (
	KeyPostStats = "stats:post:%d"
	KeyUserStats = "stats:user:%d"

	// 逻辑过期之后再保留一段时间，留给异步重建
	statsGrace = 5 * time.Minute
)

type statsCache struct {
	client *redis.Client
	ttl    time.Duration
	now    func() time.Time
}

var _ domain.StatsCache = (*statsCache)(nil)

func NewStatsCache(client *redis.Client, ttl time.Duration) *statsCache {
	return &statsCache{
		client: client,
		ttl:    ttl,
		now:    time.Now,
	}
}

func statsKey(k domain.StatsKey) string {
	switch k.Kind {
	case domain.StatsUser:
		return fmt.Sprintf(KeyUserStats, k.ID)
	default:
		return fmt.Sprintf(KeyPostStats, k.ID)
	}
}

func (c *statsCache) GetPostStats(ctx context.Context, postID int64) (domain.PostStats, bool, error) {
	var entry cache.Entry[domain.PostStats]
	if err := c.get(ctx, fmt.Sprintf(KeyPostStats, postID), &entry); err != nil {
		return domain.PostStats{}, false, err
	}
	return entry.Data, entry.IsLogicalExpired(c.now()), nil
}

func (c *statsCache) SetPostStats(ctx context.Context, stats domain.PostStats) error {
	return c.set(ctx, fmt.Sprintf(KeyPostStats, stats.PostID), cache.NewEntry(stats, c.now(), c.ttl))
}

func (c *statsCache) GetUserStats(ctx context.Context, userID int64) (domain.UserStats, bool, error) {
	var entry cache.Entry[domain.UserStats]
	if err := c.get(ctx, fmt.Sprintf(KeyUserStats, userID), &entry); err != nil {
		return domain.UserStats{}, false, err
	}
	return entry.Data, entry.IsLogicalExpired(c.now()), nil
}

func (c *statsCache) SetUserStats(ctx context.Context, stats domain.UserStats) error {
	return c.set(ctx, fmt.Sprintf(KeyUserStats, stats.UserID), cache.NewEntry(stats, c.now(), c.ttl))
}

func (c *statsCache) Delete(ctx context.Context, keys []domain.StatsKey) error {
	if len(keys) == 0 {
		return nil
	}
	ks := make([]string, len(keys))
	for i := range keys {
		ks[i] = statsKey(keys[i])
	}
	return c.client.Del(ctx, ks...).Err()
}

func (c *statsCache) get(ctx context.Context, key string, dst any) error {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.ErrCacheMiss
	} else if err != nil {
		return err
	}
	return json.Unmarshal(data, dst)
}

func (c *statsCache) set(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, c.ttl+statsGrace).Err()
}
