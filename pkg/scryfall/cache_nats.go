package scryfall

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// DefaultNATSBucket is the KV bucket used when none is configured.
const DefaultNATSBucket = "scryfall_cache"

// NATSKVConfig configures the NATS KV cache.
type NATSKVConfig struct {
	// URL of the NATS server. Ignored when Conn is set.
	URL string
	// Bucket is the KV bucket name.
	Bucket string
	// Conn is an existing connection. The cache does not close it.
	Conn *nats.Conn
}

// NATSKVCache stores raw response bodies in a JetStream key-value bucket so
// several processes can share one cache. Each value carries its own expiry
// deadline, checked on read; sliding expiration rewrites the value to restart
// it. The bucket itself has no TTL since entries may carry different
// lifetimes.
type NATSKVCache struct {
	conn   *nats.Conn
	owned  bool
	kv     jetstream.KeyValue
	policy ExpirationPolicy
	now    func() time.Time
}

// NewNATSKVCache connects to NATS and creates or updates the cache bucket.
func NewNATSKVCache(ctx context.Context, config *NATSKVConfig, policy ExpirationPolicy) (*NATSKVCache, error) {
	if config == nil {
		return nil, ErrNATSConfigRequired
	}

	conn := config.Conn
	owned := false

	if conn == nil {
		url := config.URL
		if url == "" {
			url = nats.DefaultURL
		}

		var err error

		conn, err = nats.Connect(url, nats.Name("scryfall-cache"))
		if err != nil {
			return nil, fmt.Errorf("connecting to NATS: %w", err)
		}

		owned = true
	}

	bucket := config.Bucket
	if bucket == "" {
		bucket = DefaultNATSBucket
	}

	js, err := jetstream.New(conn)
	if err != nil {
		closeOwned(conn, owned)

		return nil, fmt.Errorf("creating JetStream context: %w", err)
	}

	kv, err := js.CreateOrUpdateKeyValue(ctx, jetstream.KeyValueConfig{
		Bucket:      bucket,
		Description: "scryfall response cache",
	})
	if err != nil {
		closeOwned(conn, owned)

		return nil, fmt.Errorf("creating KV bucket %s: %w", bucket, err)
	}

	return &NATSKVCache{
		conn:   conn,
		owned:  owned,
		kv:     kv,
		policy: policy,
		now:    time.Now,
	}, nil
}

// Get retrieves an entry from the bucket. Expired entries are deleted and a
// sliding entry is rewritten with its lifetime restarted.
func (c *NATSKVCache) Get(ctx context.Context, key string) (*CacheEntry, error) {
	hashed := hashKey(key)

	kvEntry, err := c.kv.Get(ctx, hashed)
	if err != nil {
		if errors.Is(err, jetstream.ErrKeyNotFound) {
			return nil, ErrCacheMiss
		}

		return nil, fmt.Errorf("reading NATS KV entry: %w", err)
	}

	value, ok := decodeStoredValue(kvEntry.Value())
	if !ok {
		return nil, ErrCacheMiss
	}

	now := c.now()
	if value.expired(now) {
		err = c.kv.Delete(ctx, hashed)
		if err != nil {
			return nil, fmt.Errorf("deleting expired NATS KV entry: %w", err)
		}

		return nil, ErrCacheMiss
	}

	if value.touch(now) {
		_, err = c.kv.Put(ctx, hashed, value.encode())
		if err != nil {
			return nil, fmt.Errorf("refreshing NATS KV entry: %w", err)
		}
	}

	return value.entry(), nil
}

// Set stores the raw body of an entry.
func (c *NATSKVCache) Set(ctx context.Context, key string, entry *CacheEntry) error {
	if len(entry.Data) == 0 {
		return nil
	}

	value := newStoredValue(entry, c.policy, c.now())

	_, err := c.kv.Put(ctx, hashKey(key), value.encode())
	if err != nil {
		return fmt.Errorf("writing NATS KV entry: %w", err)
	}

	return nil
}

// Clear purges every key in the bucket.
func (c *NATSKVCache) Clear(ctx context.Context) error {
	keys, err := c.kv.Keys(ctx)
	if err != nil {
		if errors.Is(err, jetstream.ErrNoKeysFound) {
			return nil
		}

		return fmt.Errorf("listing NATS KV keys: %w", err)
	}

	for _, key := range keys {
		err = c.kv.Purge(ctx, key)
		if err != nil {
			return fmt.Errorf("purging NATS KV key %s: %w", key, err)
		}
	}

	return nil
}

// Close drains the connection if the cache opened it.
func (c *NATSKVCache) Close() error {
	if !c.owned {
		return nil
	}

	err := c.conn.Drain()
	if err != nil {
		return fmt.Errorf("draining NATS connection: %w", err)
	}

	return nil
}

func closeOwned(conn *nats.Conn, owned bool) {
	if owned {
		conn.Close()
	}
}
