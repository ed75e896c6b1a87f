package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"webux_bd/internal/usecase/interfaces"
)

type redisCache struct {
	client      *redis.Client
	serviceName string
}

var _ interfaces.ICache = (*redisCache)(nil)

// NewRedisCache connects to the Redis instance at addr. Keys are namespaced
// with serviceName so several deployments can share one instance.
func NewRedisCache(addr, serviceName string) interfaces.ICache {
	return &redisCache{
		client:      redis.NewClient(&redis.Options{Addr: addr}),
		serviceName: serviceName,
	}
}

func (r *redisCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	return r.client.Set(ctx, key, value, ttl).Err()
}

func (r *redisCache) Get(ctx context.Context, key string) (string, error) {
	value, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

func (r *redisCache) GenerateKey(operation, key string) string {
	return fmt.Sprintf("%s:%s:%s", r.serviceName, operation, key)
}
