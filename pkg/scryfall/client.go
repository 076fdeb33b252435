package scryfall

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is the public Scryfall API endpoint.
const DefaultBaseURL = "https://api.scryfall.com"

// DefaultCacheDuration is the cache lifetime used by DefaultConfig.
const DefaultCacheDuration = 30 * time.Minute

// CardsClient exposes the card endpoints. With caching enabled, repeated
// calls may return the same value to every caller, so results must be
// treated as read-only.
type CardsClient interface {
	GetByID(ctx context.Context, id string) (*Card, error)
	GetRandom(ctx context.Context) (*Card, error)
	GetPage(ctx context.Context, page int) (*CardList, error)
	GetNamed(ctx context.Context, name string, fuzzy bool) (*Card, error)
	GetBySetNumber(ctx context.Context, setCode, collectorNumber string) (*Card, error)
	Collection(ctx context.Context, ids []string) (*CardList, error)
	Search(ctx context.Context, query string, page int, options *SearchOptions) (*CardList, error)
	Autocomplete(ctx context.Context, query string) (*Catalog, error)
	NextPage(ctx context.Context, current *CardList) (*CardList, error)
}

// SetsClient exposes the set endpoints.
type SetsClient interface {
	List(ctx context.Context) (*SetList, error)
	GetByCode(ctx context.Context, code string) (*Set, error)
}

// RulingsClient exposes the ruling endpoints.
type RulingsClient interface {
	ListByCardID(ctx context.Context, cardID string) (*RulingList, error)
}

// SymbologyClient exposes the symbology endpoints.
type SymbologyClient interface {
	List(ctx context.Context) (*CardSymbolList, error)
	ParseMana(ctx context.Context, cost string) (*ManaCost, error)
}

// CatalogsClient exposes the catalog endpoints.
type CatalogsClient interface {
	Get(ctx context.Context, name string) (*Catalog, error)
}

// BulkDataClient exposes the bulk data endpoints.
type BulkDataClient interface {
	List(ctx context.Context) (*BulkDataList, error)
	GetByType(ctx context.Context, bulkType string) (*BulkData, error)
}

// Client provides access to all resource-specific clients.
type Client interface {
	Cards() CardsClient
	Sets() SetsClient
	Rulings() RulingsClient
	Symbology() SymbologyClient
	Catalogs() CatalogsClient
	BulkData() BulkDataClient

	// ClearCache drops every cached response.
	ClearCache(ctx context.Context) error
	// Close releases the cache owned by the client.
	Close() error
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration. A Config is read once when a
// client is built and never mutated afterwards; it is safe to share.
//
// Collaborators such as the HTTP client, logger or a shared cache backend are
// not configuration and are passed to scryfallclient.New as options.
type Config struct {
	// BaseURL is the API root (e.g., "https://api.scryfall.com"). A trailing
	// slash is trimmed.
	BaseURL string
	// EnableCaching turns on the response cache for GET requests.
	EnableCaching bool
	// CacheDuration is the lifetime of a cache entry.
	CacheDuration time.Duration
	// UseSlidingExpiration resets an entry's lifetime on every read instead
	// of expiring it at a fixed time after insertion.
	UseSlidingExpiration bool
}

// DefaultConfig returns a Config for the public API with caching enabled.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:       DefaultBaseURL,
		EnableCaching: true,
		CacheDuration: DefaultCacheDuration,
	}
}

// Validate checks the configuration and returns a normalized copy.
func (c *Config) Validate() (*Config, error) {
	if c == nil {
		return nil, ErrConfigRequired
	}

	baseURL := strings.TrimSuffix(strings.TrimSpace(c.BaseURL), "/")
	if baseURL == "" {
		return nil, ErrBaseURLRequired
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}

	if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, c.BaseURL)
	}

	if c.EnableCaching && c.CacheDuration <= 0 {
		return nil, ErrInvalidCacheDuration
	}

	normalized := *c
	normalized.BaseURL = baseURL

	return &normalized, nil
}

// ExpirationPolicy returns the cache expiration policy described by the config.
func (c *Config) ExpirationPolicy() ExpirationPolicy {
	return ExpirationPolicy{
		Duration: c.CacheDuration,
		Sliding:  c.UseSlidingExpiration,
	}
}
