package scryfall_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/fivetwenty-io/scryfall/pkg/scryfall"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock is a manually advanced time source.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}

func entry(value string) *scryfall.CacheEntry {
	return &scryfall.CacheEntry{Value: value, Data: []byte(`"` + value + `"`)}
}

func TestMemoryCache_SetGet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cache := scryfall.NewMemoryCache(10, scryfall.ExpirationPolicy{Duration: time.Minute})

	defer func() { _ = cache.Close() }()

	_, err := cache.Get(ctx, "missing")
	require.ErrorIs(t, err, scryfall.ErrCacheMiss)

	require.NoError(t, cache.Set(ctx, "key", entry("value")))

	got, err := cache.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, "value", got.Value)

	stats := cache.Stats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, int64(1), stats.Sets)
	assert.InDelta(t, 0.5, stats.GetHitRate(), 0.001)
}

func TestMemoryCache_AbsoluteExpiration(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	clock := newFakeClock()
	cache := scryfall.NewMemoryCache(10, scryfall.ExpirationPolicy{Duration: 30 * time.Minute}, scryfall.WithClock(clock.Now))

	require.NoError(t, cache.Set(ctx, "key", entry("value")))

	clock.Advance(20 * time.Minute)

	_, err := cache.Get(ctx, "key")
	require.NoError(t, err)

	// Reads do not extend an absolute lifetime.
	clock.Advance(15 * time.Minute)

	_, err = cache.Get(ctx, "key")
	require.ErrorIs(t, err, scryfall.ErrCacheMiss)
	assert.Equal(t, 0, cache.Len())
}

func TestMemoryCache_SlidingExpiration(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	clock := newFakeClock()
	cache := scryfall.NewMemoryCache(10, scryfall.ExpirationPolicy{Duration: 30 * time.Minute, Sliding: true},
		scryfall.WithClock(clock.Now))

	require.NoError(t, cache.Set(ctx, "key", entry("value")))

	for range 4 {
		clock.Advance(20 * time.Minute)

		_, err := cache.Get(ctx, "key")
		require.NoError(t, err)
	}

	clock.Advance(31 * time.Minute)

	_, err := cache.Get(ctx, "key")
	require.ErrorIs(t, err, scryfall.ErrCacheMiss)
}

func TestMemoryCache_EntryPolicyOverridesDefault(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	clock := newFakeClock()
	cache := scryfall.NewMemoryCache(10, scryfall.ExpirationPolicy{Duration: time.Hour}, scryfall.WithClock(clock.Now))

	sliding := entry("sliding")
	sliding.Policy = &scryfall.ExpirationPolicy{Duration: 10 * time.Minute, Sliding: true}
	require.NoError(t, cache.Set(ctx, "sliding", sliding))

	short := entry("short")
	short.Policy = &scryfall.ExpirationPolicy{Duration: 10 * time.Minute}
	require.NoError(t, cache.Set(ctx, "short", short))

	for range 3 {
		clock.Advance(8 * time.Minute)

		_, err := cache.Get(ctx, "sliding")
		require.NoError(t, err)
	}

	_, err := cache.Get(ctx, "short")
	require.ErrorIs(t, err, scryfall.ErrCacheMiss)

	clock.Advance(11 * time.Minute)

	_, err = cache.Get(ctx, "sliding")
	require.ErrorIs(t, err, scryfall.ErrCacheMiss)
}

func TestMemoryCache_ZeroDurationNeverExpires(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	clock := newFakeClock()
	cache := scryfall.NewMemoryCache(0, scryfall.ExpirationPolicy{}, scryfall.WithClock(clock.Now))

	require.NoError(t, cache.Set(ctx, "key", entry("value")))
	clock.Advance(24 * 365 * time.Hour)

	_, err := cache.Get(ctx, "key")
	require.NoError(t, err)
}

func TestMemoryCache_MaxSizeEvictsOldest(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	clock := newFakeClock()
	cache := scryfall.NewMemoryCache(2, scryfall.ExpirationPolicy{Duration: time.Hour}, scryfall.WithClock(clock.Now))

	require.NoError(t, cache.Set(ctx, "a", entry("a")))
	clock.Advance(time.Second)
	require.NoError(t, cache.Set(ctx, "b", entry("b")))
	clock.Advance(time.Second)
	require.NoError(t, cache.Set(ctx, "c", entry("c")))

	assert.Equal(t, 2, cache.Len())

	_, err := cache.Get(ctx, "a")
	require.ErrorIs(t, err, scryfall.ErrCacheMiss)

	_, err = cache.Get(ctx, "c")
	require.NoError(t, err)
	assert.Equal(t, int64(1), cache.Stats().Evictions)
}

func TestMemoryCache_FullCachePrefersExpiredVictims(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	clock := newFakeClock()
	cache := scryfall.NewMemoryCache(2, scryfall.ExpirationPolicy{Duration: time.Minute}, scryfall.WithClock(clock.Now))

	require.NoError(t, cache.Set(ctx, "old", entry("old")))
	clock.Advance(2 * time.Minute)
	require.NoError(t, cache.Set(ctx, "fresh", entry("fresh")))
	require.NoError(t, cache.Set(ctx, "new", entry("new")))

	assert.Equal(t, 2, cache.Len())
	assert.Equal(t, int64(0), cache.Stats().Evictions)

	_, err := cache.Get(ctx, "fresh")
	require.NoError(t, err)
}

func TestMemoryCache_CleanupAndClear(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	clock := newFakeClock()
	cache := scryfall.NewMemoryCache(10, scryfall.ExpirationPolicy{Duration: time.Minute}, scryfall.WithClock(clock.Now))

	require.NoError(t, cache.Set(ctx, "a", entry("a")))
	clock.Advance(2 * time.Minute)
	require.NoError(t, cache.Set(ctx, "b", entry("b")))

	cache.Cleanup()
	assert.Equal(t, 1, cache.Len())

	require.NoError(t, cache.Clear(ctx))
	assert.Equal(t, 0, cache.Len())
}

func TestMemoryCache_JanitorAndClose(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cache := scryfall.NewMemoryCache(10, scryfall.ExpirationPolicy{Duration: time.Millisecond},
		scryfall.WithCleanupInterval(5*time.Millisecond))

	require.NoError(t, cache.Set(ctx, "key", entry("value")))

	assert.Eventually(t, func() bool { return cache.Len() == 0 }, time.Second, 5*time.Millisecond)

	require.NoError(t, cache.Close())
	require.NoError(t, cache.Close())
}

func TestMemoryCache_Concurrent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cache := scryfall.NewMemoryCache(50, scryfall.ExpirationPolicy{Duration: time.Minute, Sliding: true})

	var wg sync.WaitGroup

	for i := range 8 {
		wg.Add(1)

		go func(worker int) {
			defer wg.Done()

			for j := range 100 {
				key := string(rune('a' + (worker+j)%26))
				_ = cache.Set(ctx, key, entry(key))
				_, _ = cache.Get(ctx, key)
			}
		}(i)
	}

	wg.Wait()
	assert.LessOrEqual(t, cache.Len(), 50)
}

func TestCacheStats_EmptyHitRate(t *testing.T) {
	t.Parallel()

	stats := &scryfall.CacheStats{}
	assert.Zero(t, stats.GetHitRate())
}
