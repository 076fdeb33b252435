// Package client implements the resource clients on top of a shared
// transport and response cache.
package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/scryfall/internal/http"
	"github.com/fivetwenty-io/scryfall/pkg/scryfall"
)

// Options carries the collaborators a Client is built with.
type Options struct {
	// HTTPOptions configure the transport.
	HTTPOptions []http.Option
	// Cache replaces the cache built from CacheConfig. The caller keeps
	// ownership and must close it. Entries written through the client use
	// the config's expiration policy, not the cache's own default.
	Cache scryfall.Cache
	// CacheConfig selects the cache backend built when Cache is nil.
	CacheConfig *scryfall.CacheConfig
	// Logger receives cache and service error diagnostics.
	Logger scryfall.Logger
}

// Client implements the scryfall.Client interface.
type Client struct {
	core      *Core
	config    *scryfall.Config
	cache     scryfall.Cache
	ownsCache bool
	cards     *CardsClient
	sets      *SetsClient
	rulings   *RulingsClient
	symbology *SymbologyClient
	catalogs  *CatalogsClient
	bulkData  *BulkDataClient
}

// New creates a client. The cache, if any, lives as long as the client and
// is released by Close.
func New(ctx context.Context, config *scryfall.Config, options *Options) (*Client, error) {
	normalized, err := config.Validate()
	if err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	if options == nil {
		options = &Options{}
	}

	var (
		cache     scryfall.Cache
		ownsCache bool
	)

	if normalized.EnableCaching {
		cache = options.Cache
		if cache == nil {
			cache, err = scryfall.NewCacheFromConfig(ctx, options.CacheConfig, normalized.ExpirationPolicy())
			if err != nil {
				return nil, fmt.Errorf("creating cache: %w", err)
			}

			ownsCache = true
		}
	}

	httpClient := http.NewClient(normalized.BaseURL, options.HTTPOptions...)
	core := NewCore(httpClient, cache, normalized.ExpirationPolicy(), options.Logger)

	return &Client{
		core:      core,
		config:    normalized,
		cache:     cache,
		ownsCache: ownsCache,
		cards:     NewCardsClient(core),
		sets:      NewSetsClient(core),
		rulings:   NewRulingsClient(core),
		symbology: NewSymbologyClient(core),
		catalogs:  NewCatalogsClient(core),
		bulkData:  NewBulkDataClient(core),
	}, nil
}

// Config returns the normalized configuration.
func (c *Client) Config() *scryfall.Config {
	return c.config
}

// Cards implements scryfall.Client.Cards.
func (c *Client) Cards() scryfall.CardsClient {
	return c.cards
}

// Sets implements scryfall.Client.Sets.
func (c *Client) Sets() scryfall.SetsClient {
	return c.sets
}

// Rulings implements scryfall.Client.Rulings.
func (c *Client) Rulings() scryfall.RulingsClient {
	return c.rulings
}

// Symbology implements scryfall.Client.Symbology.
func (c *Client) Symbology() scryfall.SymbologyClient {
	return c.symbology
}

// Catalogs implements scryfall.Client.Catalogs.
func (c *Client) Catalogs() scryfall.CatalogsClient {
	return c.catalogs
}

// BulkData implements scryfall.Client.BulkData.
func (c *Client) BulkData() scryfall.BulkDataClient {
	return c.bulkData
}

// ClearCache drops every cached response.
func (c *Client) ClearCache(ctx context.Context) error {
	if c.cache == nil {
		return nil
	}

	err := c.cache.Clear(ctx)
	if err != nil {
		return fmt.Errorf("clearing cache: %w", err)
	}

	return nil
}

// Close implements scryfall.Client.Close.
func (c *Client) Close() error {
	if c.cache == nil || !c.ownsCache {
		return nil
	}

	err := c.cache.Close()
	if err != nil {
		return fmt.Errorf("closing cache: %w", err)
	}

	return nil
}
