package stats

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	"mountaincottage/utils"
)

// RedisStatsCache implements statsCache on the shared cache Redis database.
type RedisStatsCache struct{}

func NewRedisStatsCache() *RedisStatsCache {
	return &RedisStatsCache{}
}

func (c *RedisStatsCache) Get(ctx context.Context, key string) (string, error) {
	value, err := utils.GetCacheClient().Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	return value, err
}

func (c *RedisStatsCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return utils.GetCacheClient().Set(ctx, key, value, ttl).Err()
}
