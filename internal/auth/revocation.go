package auth

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const revocationPrefix = "revoked_token:"

// RevocationList tracks signed-out tokens until their natural expiry.
type RevocationList interface {
	Revoke(ctx context.Context, tokenID string, until time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type redisRevocationList struct {
	client *redis.Client
}

// NewRedisRevocationList builds a Redis-backed revocation list.
func NewRedisRevocationList(client *redis.Client) RevocationList {
	return &redisRevocationList{client: client}
}

func (l *redisRevocationList) Revoke(ctx context.Context, tokenID string, until time.Time) error {
	ttl := time.Until(until)
	if ttl <= 0 {
		return nil
	}
	return l.client.Set(ctx, revocationPrefix+tokenID, "1", ttl).Err()
}

func (l *redisRevocationList) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := l.client.Exists(ctx, revocationPrefix+tokenID).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
