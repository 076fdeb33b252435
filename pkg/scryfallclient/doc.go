// Package scryfallclient provides the main entry point for creating Scryfall
// API clients.
//
// Basic usage:
//
//	cli, err := scryfallclient.New(ctx, scryfall.DefaultConfig())
//	if err != nil { log.Fatal(err) }
//	defer cli.Close()
//
// Collaborators are passed as options:
//
//	cli, err := scryfallclient.New(ctx, cfg,
//		scryfallclient.WithLogger(logger),
//		scryfallclient.WithRateLimit(scryfall.DefaultRequestInterval, 1),
//		scryfallclient.WithCacheConfig(&scryfall.CacheConfig{
//			Type:  scryfall.CacheTypeRedis,
//			Redis: &scryfall.RedisCacheConfig{Addr: "localhost:6379"},
//		}),
//	)
package scryfallclient
