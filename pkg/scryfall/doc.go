// Package scryfall provides types, interfaces, and helpers for working with
// the Scryfall card catalog API.
//
// # Overview
//
// The scryfall package defines the payload types (Card, Set, Ruling,
// CardSymbol, Catalog, BulkData and the generic ResultPage), the resource
// client interfaces (CardsClient, SetsClient, ...), the error taxonomy and the
// cache backends. A concrete client is built by the scryfallclient package:
//
//	cli, err := scryfallclient.New(ctx, scryfall.DefaultConfig())
//	if err != nil { log.Fatal(err) }
//	defer cli.Close()
//
//	card, err := cli.Cards().GetByID(ctx, "56ebc372-aabd-4174-a943-c7bf59e5028d")
//
// # Errors
//
// Every call fails with one of four disjoint kinds:
//
//   - ErrInvalidArgument: the caller's input was rejected before any I/O.
//   - *TransportError: the request never produced a response.
//   - *DecodeError: the body could not be parsed.
//   - *ServiceError: the service answered with an "error" envelope.
//
// None of them are retried by the client. IsNotFound, IsServiceError,
// IsTransportError and IsDecodeError help branching at the call site.
//
// # Caching
//
// GET responses are cached per client when Config.EnableCaching is set. The
// key is the base URL followed by the resource path and query string, so
// clients pointed at different base URLs never share entries. Entries expire
// Config.CacheDuration after insertion, or after the last read when
// Config.UseSlidingExpiration is set. Error envelopes are never cached.
//
// The Cache interface has in-memory, NATS KV, Redis and bbolt
// implementations, which can be layered with CacheChain.
package scryfall
