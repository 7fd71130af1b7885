package auth

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	"mountaincottage/utils"
)

// SessionStore keeps the hash of each user's active token. A request token is
// valid while its hash matches the stored one.
type SessionStore interface {
	Save(ctx context.Context, userID, tokenHash string, ttl time.Duration) error
	Get(ctx context.Context, userID string) (string, error)
	Revoke(ctx context.Context, userID string) error
}

// RedisSessionStore implements SessionStore on the auth cache Redis database.
type RedisSessionStore struct{}

func NewRedisSessionStore() *RedisSessionStore {
	return &RedisSessionStore{}
}

func (s *RedisSessionStore) Save(ctx context.Context, userID, tokenHash string, ttl time.Duration) error {
	return utils.GetAuthCacheClient().Set(ctx, utils.AuthCachePrefix+userID, tokenHash, ttl).Err()
}

// Get returns the stored token hash, or "" when no session exists.
func (s *RedisSessionStore) Get(ctx context.Context, userID string) (string, error) {
	hash, err := utils.GetAuthCacheClient().Get(ctx, utils.AuthCachePrefix+userID).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return hash, nil
}

func (s *RedisSessionStore) Revoke(ctx context.Context, userID string) error {
	return utils.GetAuthCacheClient().Del(ctx, utils.AuthCachePrefix+userID).Err()
}
