package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fivetwenty-io/scryfall/internal/http"
	"github.com/fivetwenty-io/scryfall/pkg/scryfall"
)

// Core owns the transport and the optional response cache shared by every
// resource client built from the same Client.
type Core struct {
	httpClient *http.Client
	cache      scryfall.Cache
	policy     scryfall.ExpirationPolicy
	baseURL    string
	logger     scryfall.Logger
	now        func() time.Time
}

// NewCore creates a core. A nil cache disables caching. Every entry the core
// stores carries policy, whatever default the cache backend was built with.
func NewCore(httpClient *http.Client, cache scryfall.Cache, policy scryfall.ExpirationPolicy, logger scryfall.Logger) *Core {
	return &Core{
		httpClient: httpClient,
		cache:      cache,
		policy:     policy,
		baseURL:    httpClient.BaseURL(),
		logger:     logger,
		now:        time.Now,
	}
}

// CacheKey returns the cache key of a resource path.
func (c *Core) CacheKey(resourcePath string) string {
	return c.baseURL + normalizePath(resourcePath)
}

// CachingEnabled reports whether the core has a cache.
func (c *Core) CachingEnabled() bool {
	return c.cache != nil
}

// FetchGet issues a GET for resourcePath and decodes the body as T. When
// useCache is set and the core has a cache, a live entry is returned without
// a network call, and a successful decode is stored. Error envelopes are
// never stored.
//
// A cache hit returns the stored value itself, shared with every other caller
// that hits the same key. Callers must treat returned values as read-only.
func FetchGet[T any](ctx context.Context, core *Core, resourcePath string, useCache bool) (*T, error) {
	resourcePath, err := validatePath(resourcePath)
	if err != nil {
		return nil, err
	}

	caching := useCache && core.CachingEnabled()
	key := core.CacheKey(resourcePath)

	if caching {
		cached, ok := lookup[T](ctx, core, key)
		if ok {
			return cached, nil
		}
	}

	resp, err := core.httpClient.Get(ctx, resourcePath, nil)
	if err != nil {
		return nil, err
	}

	result, err := decode[T](core, resp)
	if err != nil {
		return nil, err
	}

	if caching {
		store(ctx, core, key, result, resp.Body)
	}

	return result, nil
}

// FetchPost issues a POST with a JSON body and decodes the response as T.
// POST requests never touch the cache.
func FetchPost[T any](ctx context.Context, core *Core, resourcePath string, body interface{}) (*T, error) {
	resourcePath, err := validatePath(resourcePath)
	if err != nil {
		return nil, err
	}

	resp, err := core.httpClient.Post(ctx, resourcePath, body)
	if err != nil {
		return nil, err
	}

	return decode[T](core, resp)
}

// validatePath rejects empty paths and returns the path in the form used for
// both the request and the cache key.
func validatePath(resourcePath string) (string, error) {
	if strings.TrimSpace(resourcePath) == "" {
		return "", fmt.Errorf("%w: resource path is empty", scryfall.ErrInvalidArgument)
	}

	return normalizePath(resourcePath), nil
}

func normalizePath(resourcePath string) string {
	if strings.HasPrefix(resourcePath, "/") {
		return resourcePath
	}

	return "/" + resourcePath
}

// decode peeks at the discriminator first and only then decodes the body as
// either the error envelope or T. The body is already buffered, so both
// passes read it from the start.
func decode[T any](core *Core, resp *http.Response) (*T, error) {
	var result T

	target := fmt.Sprintf("%T", result)

	var envelope scryfall.Object

	err := json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, newDecodeError(resp, target, err)
	}

	if envelope.ObjectType == "" {
		return nil, newDecodeError(resp, target, scryfall.ErrMissingDiscriminator)
	}

	if envelope.IsError() {
		return nil, serviceError(core, resp)
	}

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, newDecodeError(resp, target, err)
	}

	return &result, nil
}

func serviceError(core *Core, resp *http.Response) error {
	var envelope scryfall.ErrorEnvelope

	err := json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return newDecodeError(resp, "scryfall.ErrorEnvelope", err)
	}

	if core.logger != nil {
		core.logger.Debug("service reported error", map[string]interface{}{
			"method":      resp.RequestMethod,
			"url":         resp.RequestURL.String(),
			"status_code": resp.StatusCode,
			"details":     envelope.Details,
		})
	}

	return &scryfall.ServiceError{
		Details:            envelope.Details,
		ResponseStatusCode: resp.StatusCode,
		RequestURI:         resp.RequestURL,
		RequestMethod:      resp.RequestMethod,
		Envelope:           &envelope,
	}
}

func newDecodeError(resp *http.Response, target string, err error) *scryfall.DecodeError {
	return &scryfall.DecodeError{
		Method:     resp.RequestMethod,
		URL:        resp.RequestURL.String(),
		StatusCode: resp.StatusCode,
		Target:     target,
		Err:        err,
	}
}

// lookup returns a cached T. Cache failures are logged and treated as misses.
func lookup[T any](ctx context.Context, core *Core, key string) (*T, bool) {
	entry, err := core.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, scryfall.ErrCacheMiss) {
			core.warn("cache read failed", key, err)
		}

		core.debug("cache miss", key)

		return nil, false
	}

	if value, ok := entry.Value.(*T); ok {
		core.debug("cache hit", key)

		return value, true
	}

	if len(entry.Data) == 0 {
		return nil, false
	}

	var value T

	err = json.Unmarshal(entry.Data, &value)
	if err != nil {
		core.warn("cached entry undecodable", key, err)

		return nil, false
	}

	core.debug("cache hit", key)

	return &value, true
}

func store[T any](ctx context.Context, core *Core, key string, value *T, body []byte) {
	policy := core.policy

	err := core.cache.Set(ctx, key, &scryfall.CacheEntry{
		Value:    value,
		Data:     body,
		StoredAt: core.now(),
		Policy:   &policy,
	})
	if err != nil {
		core.warn("cache write failed", key, err)
	}
}

func (c *Core) debug(msg, key string) {
	if c.logger != nil {
		c.logger.Debug(msg, map[string]interface{}{"key": key})
	}
}

func (c *Core) warn(msg, key string, err error) {
	if c.logger != nil {
		c.logger.Warn(msg, map[string]interface{}{"key": key, "error": err.Error()})
	}
}
