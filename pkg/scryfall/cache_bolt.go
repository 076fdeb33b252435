package scryfall

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

const (
	// DefaultBoltBucket is the bucket used when none is configured.
	DefaultBoltBucket = "responses"

	boltOpenTimeout = time.Second
	boltDirPerm     = 0o750
	boltFilePerm    = 0o600
)

// BoltCacheConfig configures the on-disk cache.
type BoltCacheConfig struct {
	// Path of the database file. Parent directories are created.
	Path string
	// Bucket name inside the database.
	Bucket string
}

// BoltCache persists raw response bodies in a bbolt file so the cache
// survives process restarts. Each value is prefixed with the store time, the
// expiry deadline and the entry's policy.
type BoltCache struct {
	db     *bolt.DB
	bucket []byte
	policy ExpirationPolicy
	now    func() time.Time
}

// NewBoltCache opens (or creates) the database at config.Path.
func NewBoltCache(config *BoltCacheConfig, policy ExpirationPolicy) (*BoltCache, error) {
	if config == nil || config.Path == "" {
		return nil, ErrBoltConfigRequired
	}

	dir := filepath.Dir(config.Path)
	if dir != "" && dir != "." {
		err := os.MkdirAll(dir, boltDirPerm)
		if err != nil {
			return nil, fmt.Errorf("creating cache directory: %w", err)
		}
	}

	db, err := bolt.Open(config.Path, boltFilePerm, &bolt.Options{Timeout: boltOpenTimeout})
	if err != nil {
		return nil, fmt.Errorf("opening bbolt db: %w", err)
	}

	bucket := config.Bucket
	if bucket == "" {
		bucket = DefaultBoltBucket
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucket))

		return err
	})
	if err != nil {
		_ = db.Close()

		return nil, fmt.Errorf("initializing bucket: %w", err)
	}

	return &BoltCache{
		db:     db,
		bucket: []byte(bucket),
		policy: policy,
		now:    time.Now,
	}, nil
}

// Get retrieves a live entry. Reads run in a read-only transaction; a write
// transaction is opened only to drop an expired entry or to restart the
// lifetime of a sliding one.
func (c *BoltCache) Get(ctx context.Context, key string) (*CacheEntry, error) {
	var (
		value storedValue
		found bool
	)

	err := c.db.View(func(tx *bolt.Tx) error {
		value, found = decodeStoredValue(tx.Bucket(c.bucket).Get([]byte(key)))

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("reading bbolt entry: %w", err)
	}

	if !found {
		return nil, ErrCacheMiss
	}

	now := c.now()

	if value.expired(now) {
		err = c.db.Update(func(tx *bolt.Tx) error {
			return tx.Bucket(c.bucket).Delete([]byte(key))
		})
		if err != nil {
			return nil, fmt.Errorf("deleting expired bbolt entry: %w", err)
		}

		return nil, ErrCacheMiss
	}

	if value.touch(now) {
		err = c.db.Update(func(tx *bolt.Tx) error {
			return tx.Bucket(c.bucket).Put([]byte(key), value.encode())
		})
		if err != nil {
			return nil, fmt.Errorf("refreshing bbolt entry: %w", err)
		}
	}

	return value.entry(), nil
}

// Set stores the raw body of an entry.
func (c *BoltCache) Set(ctx context.Context, key string, entry *CacheEntry) error {
	if len(entry.Data) == 0 {
		return nil
	}

	value := newStoredValue(entry, c.policy, c.now())

	err := c.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(c.bucket).Put([]byte(key), value.encode())
	})
	if err != nil {
		return fmt.Errorf("writing bbolt entry: %w", err)
	}

	return nil
}

// Clear drops and recreates the bucket.
func (c *BoltCache) Clear(ctx context.Context) error {
	err := c.db.Update(func(tx *bolt.Tx) error {
		err := tx.DeleteBucket(c.bucket)
		if err != nil {
			return err
		}

		_, err = tx.CreateBucket(c.bucket)

		return err
	})
	if err != nil {
		return fmt.Errorf("clearing bbolt bucket: %w", err)
	}

	return nil
}

// Close closes the database file.
func (c *BoltCache) Close() error {
	err := c.db.Close()
	if err != nil {
		return fmt.Errorf("closing bbolt db: %w", err)
	}

	return nil
}
