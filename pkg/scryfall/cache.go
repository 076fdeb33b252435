package scryfall

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"sync/atomic"
	"time"
)

// ExpirationPolicy controls how long a cache entry stays live.
type ExpirationPolicy struct {
	// Duration is the entry lifetime. Zero means entries never expire.
	Duration time.Duration
	// Sliding resets the lifetime on every read when true; otherwise the
	// entry expires Duration after it was stored.
	Sliding bool
}

// expiry returns the deadline of an entry touched at now.
func (p ExpirationPolicy) expiry(now time.Time) time.Time {
	if p.Duration <= 0 {
		return time.Time{}
	}

	return now.Add(p.Duration)
}

// CacheEntry is a cached response.
type CacheEntry struct {
	// Value is the decoded object. Only in-process backends keep it.
	Value interface{}
	// Data is the raw response body, used by backends that serialize.
	Data []byte
	// StoredAt is when the entry was first written.
	StoredAt time.Time
	// Policy is the entry's own lifetime. Backends fall back to the policy
	// they were built with when it is nil. Sliding refreshes use the policy
	// stored with the entry.
	Policy *ExpirationPolicy
}

// policyOr returns the entry's policy, or fallback when it carries none.
func (e *CacheEntry) policyOr(fallback ExpirationPolicy) ExpirationPolicy {
	if e.Policy != nil {
		return *e.Policy
	}

	return fallback
}

// Cache is the storage behind the response cache. Implementations must be
// safe for concurrent use. Get returns ErrCacheMiss for absent or expired keys.
type Cache interface {
	Get(ctx context.Context, key string) (*CacheEntry, error)
	Set(ctx context.Context, key string, entry *CacheEntry) error
	Clear(ctx context.Context) error
	Close() error
}

// hashKey maps an arbitrary cache key onto a token safe for remote stores.
func hashKey(key string) string {
	sum := sha256.Sum256([]byte(key))

	return hex.EncodeToString(sum[:])
}

// CacheStats tracks cache statistics.
type CacheStats struct {
	Hits      int64
	Misses    int64
	Sets      int64
	Evictions int64
}

// GetHitRate returns the cache hit rate.
func (s *CacheStats) GetHitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}

	return float64(s.Hits) / float64(total)
}

type memoryItem struct {
	entry      *CacheEntry
	policy     ExpirationPolicy
	insertedAt time.Time
	expiresAt  time.Time
}

// MemoryCache is an in-process Cache. Entries without their own policy use
// the one the cache was built with.
type MemoryCache struct {
	mu      sync.Mutex
	items   map[string]*memoryItem
	maxSize int
	policy  ExpirationPolicy
	now     func() time.Time

	hits      atomic.Int64
	misses    atomic.Int64
	sets      atomic.Int64
	evictions atomic.Int64

	stop      chan struct{}
	closeOnce sync.Once
}

// MemoryCacheOption configures a MemoryCache.
type MemoryCacheOption func(*MemoryCache)

// WithClock replaces the time source, for tests.
func WithClock(now func() time.Time) MemoryCacheOption {
	return func(c *MemoryCache) {
		c.now = now
	}
}

// WithCleanupInterval starts a janitor that drops expired entries every interval.
func WithCleanupInterval(interval time.Duration) MemoryCacheOption {
	return func(c *MemoryCache) {
		if interval <= 0 {
			return
		}

		go c.janitor(interval)
	}
}

// NewMemoryCache creates a memory cache holding at most maxSize entries.
// A maxSize of zero or less means unbounded.
func NewMemoryCache(maxSize int, policy ExpirationPolicy, opts ...MemoryCacheOption) *MemoryCache {
	cache := &MemoryCache{
		items:   make(map[string]*memoryItem),
		maxSize: maxSize,
		policy:  policy,
		now:     time.Now,
		stop:    make(chan struct{}),
	}

	for _, opt := range opts {
		opt(cache)
	}

	return cache
}

// Get retrieves a live entry. With a sliding policy the read extends the
// entry's lifetime.
func (c *MemoryCache) Get(ctx context.Context, key string) (*CacheEntry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	item, ok := c.items[key]
	if !ok {
		c.misses.Add(1)

		return nil, ErrCacheMiss
	}

	now := c.now()
	if c.expired(item, now) {
		delete(c.items, key)
		c.misses.Add(1)

		return nil, ErrCacheMiss
	}

	if item.policy.Sliding {
		item.expiresAt = item.policy.expiry(now)
	}

	c.hits.Add(1)

	return item.entry, nil
}

// Set stores an entry, evicting the oldest one when the cache is full.
func (c *MemoryCache) Set(ctx context.Context, key string, entry *CacheEntry) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()

	if _, exists := c.items[key]; !exists && c.maxSize > 0 && len(c.items) >= c.maxSize {
		c.evictOldest(now)
	}

	policy := entry.policyOr(c.policy)

	c.items[key] = &memoryItem{
		entry:      entry,
		policy:     policy,
		insertedAt: now,
		expiresAt:  policy.expiry(now),
	}
	c.sets.Add(1)

	return nil
}

// Clear removes every entry.
func (c *MemoryCache) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]*memoryItem)

	return nil
}

// Close stops the janitor, if any.
func (c *MemoryCache) Close() error {
	c.closeOnce.Do(func() {
		close(c.stop)
	})

	return nil
}

// Len returns the number of stored entries, including expired ones not yet swept.
func (c *MemoryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.items)
}

// Cleanup removes expired entries.
func (c *MemoryCache) Cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for key, item := range c.items {
		if c.expired(item, now) {
			delete(c.items, key)
		}
	}
}

// Stats returns a snapshot of the cache counters.
func (c *MemoryCache) Stats() CacheStats {
	return CacheStats{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Sets:      c.sets.Load(),
		Evictions: c.evictions.Load(),
	}
}

func (c *MemoryCache) expired(item *memoryItem, now time.Time) bool {
	return !item.expiresAt.IsZero() && !now.Before(item.expiresAt)
}

// evictOldest drops expired entries first and, if none were expired, the
// entry inserted earliest. Callers hold c.mu.
func (c *MemoryCache) evictOldest(now time.Time) {
	var (
		oldestKey string
		oldest    time.Time
		dropped   bool
	)

	for key, item := range c.items {
		if c.expired(item, now) {
			delete(c.items, key)

			dropped = true

			continue
		}

		if oldestKey == "" || item.insertedAt.Before(oldest) {
			oldestKey = key
			oldest = item.insertedAt
		}
	}

	if !dropped && oldestKey != "" {
		delete(c.items, oldestKey)
		c.evictions.Add(1)
	}
}

func (c *MemoryCache) janitor(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.Cleanup()
		case <-c.stop:
			return
		}
	}
}
