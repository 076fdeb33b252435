package scryfall

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// CacheType represents the type of cache backend.
type CacheType string

const (
	// CacheTypeMemory represents in-memory cache.
	CacheTypeMemory CacheType = "memory"

	// CacheTypeNATS represents NATS KV cache.
	CacheTypeNATS CacheType = "nats"

	// CacheTypeRedis represents Redis cache.
	CacheTypeRedis CacheType = "redis"

	// CacheTypeBolt represents an on-disk bbolt cache.
	CacheTypeBolt CacheType = "bolt"

	// CacheTypeNone represents no caching.
	CacheTypeNone CacheType = "none"
)

// DefaultMemoryCacheSize is the entry limit of a default memory cache.
const DefaultMemoryCacheSize = 1000

// ParseCacheType converts a user supplied name into a CacheType.
func ParseCacheType(name string) (CacheType, error) {
	cacheType := CacheType(strings.ToLower(strings.TrimSpace(name)))

	switch cacheType {
	case CacheTypeMemory, CacheTypeNATS, CacheTypeRedis, CacheTypeBolt, CacheTypeNone:
		return cacheType, nil
	case "":
		return CacheTypeMemory, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedCacheType, name)
	}
}

// CacheConfig configures cache backend.
type CacheConfig struct {
	// Type is the cache backend type
	Type CacheType

	// Memory cache configuration
	Memory *MemoryCacheConfig

	// NATS KV cache configuration
	NATS *NATSKVConfig

	// Redis cache configuration
	Redis *RedisCacheConfig

	// Bolt cache configuration
	Bolt *BoltCacheConfig
}

// MemoryCacheConfig configures memory cache.
type MemoryCacheConfig struct {
	// MaxSize is the maximum number of items in the cache
	MaxSize int

	// CleanupInterval is the interval for cleaning up expired entries
	CleanupInterval time.Duration
}

// DefaultCacheConfig returns default cache configuration.
func DefaultCacheConfig() *CacheConfig {
	return &CacheConfig{
		Type: CacheTypeMemory,
		Memory: &MemoryCacheConfig{
			MaxSize:         DefaultMemoryCacheSize,
			CleanupInterval: time.Minute,
		},
	}
}

// NewCacheFromConfig creates a cache backend from configuration.
func NewCacheFromConfig(ctx context.Context, config *CacheConfig, policy ExpirationPolicy) (Cache, error) {
	if config == nil {
		config = DefaultCacheConfig()
	}

	switch config.Type {
	case CacheTypeMemory, "":
		return NewMemoryCacheFromConfig(config.Memory, policy), nil

	case CacheTypeNATS:
		if config.NATS == nil {
			return nil, ErrNATSConfigRequired
		}

		return NewNATSKVCache(ctx, config.NATS, policy)

	case CacheTypeRedis:
		if config.Redis == nil {
			return nil, ErrRedisConfigRequired
		}

		return NewRedisCache(ctx, config.Redis, policy)

	case CacheTypeBolt:
		if config.Bolt == nil {
			return nil, ErrBoltConfigRequired
		}

		return NewBoltCache(config.Bolt, policy)

	case CacheTypeNone:
		return NewNoOpCache(), nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedCacheType, config.Type)
	}
}

// NewMemoryCacheFromConfig creates a memory cache from configuration.
func NewMemoryCacheFromConfig(config *MemoryCacheConfig, policy ExpirationPolicy) *MemoryCache {
	if config == nil {
		config = DefaultCacheConfig().Memory
	}

	return NewMemoryCache(config.MaxSize, policy, WithCleanupInterval(config.CleanupInterval))
}

// NoOpCache is a cache that does nothing (no caching).
type NoOpCache struct{}

// NewNoOpCache creates a new no-op cache.
func NewNoOpCache() *NoOpCache {
	return &NoOpCache{}
}

// Get always misses.
func (c *NoOpCache) Get(ctx context.Context, key string) (*CacheEntry, error) {
	return nil, ErrCacheMiss
}

// Set does nothing.
func (c *NoOpCache) Set(ctx context.Context, key string, entry *CacheEntry) error {
	return nil
}

// Clear does nothing.
func (c *NoOpCache) Clear(ctx context.Context) error {
	return nil
}

// Close does nothing.
func (c *NoOpCache) Close() error {
	return nil
}

// CacheChain implements a chain of cache backends (L1, L2, etc.)
type CacheChain struct {
	caches []Cache
}

// NewCacheChain creates a new cache chain.
func NewCacheChain(caches ...Cache) *CacheChain {
	return &CacheChain{
		caches: caches,
	}
}

// Get retrieves an item from the cache chain.
func (c *CacheChain) Get(ctx context.Context, key string) (*CacheEntry, error) {
	for i, cache := range c.caches {
		entry, err := cache.Get(ctx, key)
		if err == nil {
			// Found in this cache, populate earlier caches
			for j := range i {
				_ = c.caches[j].Set(ctx, key, entry)
			}

			return entry, nil
		}
	}

	return nil, fmt.Errorf("%w: %w", ErrCacheMiss, ErrKeyNotFoundInAnyCache)
}

// Set stores an item in all caches.
func (c *CacheChain) Set(ctx context.Context, key string, entry *CacheEntry) error {
	var errs []error

	for _, cache := range c.caches {
		err := cache.Set(ctx, key, entry)
		if err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// Clear removes all items from all caches.
func (c *CacheChain) Clear(ctx context.Context) error {
	var errs []error

	for _, cache := range c.caches {
		err := cache.Clear(ctx)
		if err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// Close closes every cache in the chain.
func (c *CacheChain) Close() error {
	var errs []error

	for _, cache := range c.caches {
		err := cache.Close()
		if err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
