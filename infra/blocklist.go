package infra

import (
	"context"
	"time"
)

// TokenBlocklist records revoked session token ids until their natural
// expiry. Sessions are otherwise stateless; this is the only
// server-side session state and it expires on its own.
type TokenBlocklist interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type RedisBlocklist struct {
	redis *RedisClient
}

func NewRedisBlocklist(redis *RedisClient) *RedisBlocklist {
	return &RedisBlocklist{redis: redis}
}

func (b *RedisBlocklist) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		// Token already expired; nothing to block.
		return nil
	}
	return b.redis.Set(ctx, blocklistKey(tokenID), true, ttl)
}

func (b *RedisBlocklist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	if tokenID == "" {
		return false, nil
	}
	return b.redis.Exists(ctx, blocklistKey(tokenID))
}

func blocklistKey(tokenID string) string {
	return "session:revoked:" + tokenID
}
