package redis

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// pageKeyPrefix namespaces every cached page body; Flush removes
// exactly this namespace.
const pageKeyPrefix = "page:"

// PageCacheRedis implements the PageCache port over Redis. Expiry is
// delegated to Redis TTLs.
type PageCacheRedis struct {
	Client *redis.Client
}

func NewPageCacheRedis(client *redis.Client) *PageCacheRedis {
	return &PageCacheRedis{Client: client}
}

func (r *PageCacheRedis) Get(ctx context.Context, key string) ([]byte, bool, error) {
	body, err := r.Client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return body, true, nil
}

func (r *PageCacheRedis) Set(ctx context.Context, key string, body []byte, ttl time.Duration) error {
	return r.Client.Set(ctx, key, body, ttl).Err()
}

func (r *PageCacheRedis) Flush(ctx context.Context) error {
	keys, err := r.Client.Keys(ctx, pageKeyPrefix+"*").Result()
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return r.Client.Del(ctx, keys...).Err()
}
