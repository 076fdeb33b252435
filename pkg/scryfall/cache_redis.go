package scryfall

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisPrefix namespaces cache keys in a shared Redis.
const DefaultRedisPrefix = "scryfall:cache:"

const redisScanCount = 100

// RedisCacheConfig configures the Redis cache.
type RedisCacheConfig struct {
	Addr     string
	Password string
	DB       int
	// Prefix is prepended to every hashed key.
	Prefix string
	// Client is an existing client. The cache does not close it.
	Client *redis.Client
}

// RedisCache stores raw response bodies in Redis with a per-key TTL derived
// from each entry's policy.
type RedisCache struct {
	client *redis.Client
	owned  bool
	prefix string
	policy ExpirationPolicy
	now    func() time.Time
}

// NewRedisCache creates a Redis cache and verifies the server is reachable.
func NewRedisCache(ctx context.Context, config *RedisCacheConfig, policy ExpirationPolicy) (*RedisCache, error) {
	if config == nil {
		return nil, ErrRedisConfigRequired
	}

	client := config.Client
	owned := false

	if client == nil {
		client = redis.NewClient(&redis.Options{
			Addr:     config.Addr,
			Password: config.Password,
			DB:       config.DB,
		})
		owned = true
	}

	err := client.Ping(ctx).Err()
	if err != nil {
		if owned {
			_ = client.Close()
		}

		return nil, fmt.Errorf("pinging redis: %w", err)
	}

	prefix := config.Prefix
	if prefix == "" {
		prefix = DefaultRedisPrefix
	}

	return &RedisCache{
		client: client,
		owned:  owned,
		prefix: prefix,
		policy: policy,
		now:    time.Now,
	}, nil
}

func (c *RedisCache) key(key string) string {
	return c.prefix + hashKey(key)
}

// Get retrieves an entry from Redis. A sliding entry is written back with
// its lifetime restarted.
func (c *RedisCache) Get(ctx context.Context, key string) (*CacheEntry, error) {
	raw, err := c.client.Get(ctx, c.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}

		return nil, fmt.Errorf("reading redis entry: %w", err)
	}

	value, ok := decodeStoredValue(raw)
	if !ok {
		return nil, ErrCacheMiss
	}

	now := c.now()
	if value.expired(now) {
		return nil, ErrCacheMiss
	}

	if value.touch(now) {
		err = c.client.Set(ctx, c.key(key), value.encode(), value.ttl(now)).Err()
		if err != nil {
			return nil, fmt.Errorf("refreshing redis entry: %w", err)
		}
	}

	return value.entry(), nil
}

// Set stores the raw body of an entry with a TTL taken from the entry's
// policy.
func (c *RedisCache) Set(ctx context.Context, key string, entry *CacheEntry) error {
	if len(entry.Data) == 0 {
		return nil
	}

	now := c.now()
	value := newStoredValue(entry, c.policy, now)

	err := c.client.Set(ctx, c.key(key), value.encode(), value.ttl(now)).Err()
	if err != nil {
		return fmt.Errorf("writing redis entry: %w", err)
	}

	return nil
}

// Clear deletes every key under the cache prefix.
func (c *RedisCache) Clear(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, c.prefix+"*", redisScanCount).Iterator()
	for iter.Next(ctx) {
		err := c.client.Del(ctx, iter.Val()).Err()
		if err != nil {
			return fmt.Errorf("deleting redis key: %w", err)
		}
	}

	err := iter.Err()
	if err != nil {
		return fmt.Errorf("scanning redis keys: %w", err)
	}

	return nil
}

// Close closes the client if the cache created it.
func (c *RedisCache) Close() error {
	if !c.owned {
		return nil
	}

	err := c.client.Close()
	if err != nil {
		return fmt.Errorf("closing redis client: %w", err)
	}

	return nil
}
