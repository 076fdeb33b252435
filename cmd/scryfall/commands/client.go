package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fivetwenty-io/scryfall/internal/constants"
	"github.com/fivetwenty-io/scryfall/internal/logging"
	"github.com/fivetwenty-io/scryfall/pkg/scryfall"
	"github.com/fivetwenty-io/scryfall/pkg/scryfallclient"
	"github.com/spf13/viper"
)

// buildConfig turns viper settings into a client configuration.
func buildConfig() (*scryfall.Config, error) {
	config := scryfall.DefaultConfig()

	if api := viper.GetString("api"); api != "" {
		config.BaseURL = api
	}

	if viper.GetBool("no-cache") {
		config.EnableCaching = false
	}

	if duration := viper.GetDuration("cache-duration"); duration > 0 {
		config.CacheDuration = duration
	}

	if viper.IsSet("sliding") {
		config.UseSlidingExpiration = viper.GetBool("sliding")
	}

	validated, err := config.Validate()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return validated, nil
}

// buildCacheConfig selects the cache backend from viper settings.
func buildCacheConfig() (*scryfall.CacheConfig, error) {
	cacheType, err := scryfall.ParseCacheType(viper.GetString("cache-backend"))
	if err != nil {
		return nil, fmt.Errorf("invalid cache backend: %w", err)
	}

	cacheConfig := scryfall.DefaultCacheConfig()
	cacheConfig.Type = cacheType

	switch cacheType {
	case scryfall.CacheTypeBolt:
		path := viper.GetString("bolt.path")
		if path == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, fmt.Errorf("failed to locate home directory: %w", err)
			}

			path = filepath.Join(home, constants.DefaultCacheDirName, constants.DefaultBoltFileName)
		}

		cacheConfig.Bolt = &scryfall.BoltCacheConfig{Path: path, Bucket: viper.GetString("bolt.bucket")}
	case scryfall.CacheTypeRedis:
		addr := viper.GetString("redis.addr")
		if addr == "" {
			return nil, fmt.Errorf("%w: set redis.addr in the config file", constants.ErrCacheBackendNeeded)
		}

		cacheConfig.Redis = &scryfall.RedisCacheConfig{
			Addr:     addr,
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
			Prefix:   viper.GetString("redis.prefix"),
		}
	case scryfall.CacheTypeNATS:
		url := viper.GetString("nats.url")
		if url == "" {
			return nil, fmt.Errorf("%w: set nats.url", constants.ErrCacheBackendNeeded)
		}

		cacheConfig.NATS = &scryfall.NATSKVConfig{URL: url, Bucket: viper.GetString("nats.bucket")}
	case scryfall.CacheTypeMemory, scryfall.CacheTypeNone:
	}

	return cacheConfig, nil
}

// createClient builds a client from the CLI configuration. The caller must Close it.
func createClient(ctx context.Context) (scryfall.Client, error) {
	config, err := buildConfig()
	if err != nil {
		return nil, err
	}

	opts := []scryfallclient.Option{
		scryfallclient.WithRateLimit(scryfall.DefaultRequestInterval, constants.DefaultRateLimitBurst),
		scryfallclient.WithRetry(constants.DefaultRetryMax, constants.DefaultRetryWaitMin, constants.DefaultRetryWaitMax),
	}

	if viper.GetBool("verbose") {
		opts = append(opts,
			scryfallclient.WithLogger(logging.New(os.Stderr, "debug")),
			scryfallclient.WithDebug(true),
		)
	}

	if config.EnableCaching {
		cacheConfig, err := buildCacheConfig()
		if err != nil {
			return nil, err
		}

		opts = append(opts, scryfallclient.WithCacheConfig(cacheConfig))
	}

	client, err := scryfallclient.New(ctx, config, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// withClient runs fn with a fresh client and closes it afterwards.
func withClient(fn func(ctx context.Context, client scryfall.Client) error) error {
	ctx := context.Background()

	client, err := createClient(ctx)
	if err != nil {
		return err
	}

	defer func() { _ = client.Close() }()

	return fn(ctx, client)
}

func outputFormat() (string, error) {
	format := strings.ToLower(viper.GetString("output"))
	switch format {
	case "", constants.FormatTable:
		return constants.FormatTable, nil
	case constants.FormatJSON, constants.FormatYAML:
		return format, nil
	default:
		return "", fmt.Errorf("%w: %q", constants.ErrInvalidOutput, format)
	}
}
