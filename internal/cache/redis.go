package cache

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/redis/go-redis/v9"
)

var _ Cache = (*Redis)(nil)

// Redis is the production Cache implementation backed by a Redis server.
type Redis struct {
	client *redis.Client
}

// NewRedis creates a Redis cache client. The client pools connections; one
// instance is created at startup and shared for the process lifetime.
func NewRedis(address string, port string, password string) *Redis {
	client := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(address, port),
		Password: password,
	})

	return &Redis{client: client}
}

func (r *Redis) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (r *Redis) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return r.client.Set(ctx, key, value, ttl).Err()
}

// Delete removes key. Redis DEL of a missing key returns a zero count, not
// an error, so deletes are naturally idempotent.
func (r *Redis) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *Redis) Close() error {
	return r.client.Close()
}
