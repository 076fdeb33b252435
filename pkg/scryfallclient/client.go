package scryfallclient

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/fivetwenty-io/scryfall/internal/client"
	scryhttp "github.com/fivetwenty-io/scryfall/internal/http"
	"github.com/fivetwenty-io/scryfall/pkg/scryfall"
)

type settings struct {
	httpOptions  []scryhttp.Option
	interceptors *scryfall.InterceptorChain
	cache        scryfall.Cache
	cacheConfig  *scryfall.CacheConfig
	logger       scryfall.Logger
}

// Option configures the client built by New.
type Option func(*settings)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(s *settings) {
		s.httpOptions = append(s.httpOptions, scryhttp.WithHTTPClient(httpClient))
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(s *settings) {
		s.httpOptions = append(s.httpOptions, scryhttp.WithTimeout(timeout))
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(s *settings) {
		s.httpOptions = append(s.httpOptions, scryhttp.WithUserAgent(userAgent))
	}
}

// WithLogger sets the logger for transport, cache and service diagnostics.
func WithLogger(logger scryfall.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithDebug logs every request and response at debug level.
func WithDebug(debug bool) Option {
	return func(s *settings) {
		s.httpOptions = append(s.httpOptions, scryhttp.WithDebug(debug))
	}
}

// WithRetry opts into retrying connection errors, 429 and 5xx responses.
func WithRetry(maxRetries int, waitMin, waitMax time.Duration) Option {
	return func(s *settings) {
		s.httpOptions = append(s.httpOptions, scryhttp.WithRetryConfig(maxRetries, waitMin, waitMax))
	}
}

// WithRateLimit spaces requests at least interval apart.
func WithRateLimit(interval time.Duration, burst int) Option {
	return func(s *settings) {
		s.interceptors.AddRequestInterceptor(scryfall.RateLimitInterceptor(interval, burst))
	}
}

// WithRequestInterceptor adds a request interceptor.
func WithRequestInterceptor(interceptor scryfall.RequestInterceptor) Option {
	return func(s *settings) {
		s.interceptors.AddRequestInterceptor(interceptor)
	}
}

// WithResponseInterceptor adds a response interceptor.
func WithResponseInterceptor(interceptor scryfall.ResponseInterceptor) Option {
	return func(s *settings) {
		s.interceptors.AddResponseInterceptor(interceptor)
	}
}

// WithCache uses an existing cache. The caller keeps ownership of it, so
// several clients may share one backend.
func WithCache(cache scryfall.Cache) Option {
	return func(s *settings) {
		s.cache = cache
	}
}

// WithCacheConfig selects the backend the client builds for itself.
func WithCacheConfig(config *scryfall.CacheConfig) Option {
	return func(s *settings) {
		s.cacheConfig = config
	}
}

// New creates a new Scryfall API client.
func New(ctx context.Context, config *scryfall.Config, opts ...Option) (scryfall.Client, error) {
	if config == nil {
		return nil, scryfall.ErrConfigRequired
	}

	s := &settings{interceptors: scryfall.NewInterceptorChain()}
	for _, opt := range opts {
		opt(s)
	}

	if s.logger != nil {
		s.interceptors.AddResponseInterceptor(scryfall.LoggingResponseInterceptor(s.logger))
		s.httpOptions = append(s.httpOptions, scryhttp.WithLogger(s.logger))
	}

	s.httpOptions = append(s.httpOptions, scryhttp.WithInterceptors(s.interceptors))

	cli, err := client.New(ctx, config, &client.Options{
		HTTPOptions: s.httpOptions,
		Cache:       s.cache,
		CacheConfig: s.cacheConfig,
		Logger:      s.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return cli, nil
}

// NewWithBaseURL creates a client for baseURL with the default cache settings.
func NewWithBaseURL(ctx context.Context, baseURL string) (scryfall.Client, error) {
	config := scryfall.DefaultConfig()
	config.BaseURL = baseURL

	return New(ctx, config, WithRateLimit(scryfall.DefaultRequestInterval, 1))
}
