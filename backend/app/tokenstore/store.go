// Package tokenstore keeps the ids of revoked tokens until they would have
// expired anyway. Without a store the service is fully stateless and a
// logged out token stays valid until its natural expiry.
package tokenstore

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

type Store interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// Noop never revokes anything.
type Noop struct{}

func (Noop) Revoke(context.Context, string, time.Duration) error { return nil }

func (Noop) IsRevoked(context.Context, string) (bool, error) { return false, nil }

const keyPrefix = "news:revoked:"

type RedisStore struct{ rdb *redis.Client }

func NewRedisStore(rdb *redis.Client) *RedisStore { return &RedisStore{rdb: rdb} }

// Connect opens a client and pings it once.
func Connect(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}
	return rdb, nil
}

func (s *RedisStore) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if jti == "" || ttl <= 0 {
		return nil
	}
	return s.rdb.Set(ctx, keyPrefix+jti, 1, ttl).Err()
}

func (s *RedisStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	if jti == "" {
		return false, nil
	}
	err := s.rdb.Get(ctx, keyPrefix+jti).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
