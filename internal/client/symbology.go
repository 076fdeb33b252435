package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/scryfall/pkg/scryfall"
)

var (
	symbolList = get[scryfall.CardSymbolList]("/symbology")
	parseMana  = get[scryfall.ManaCost]("/symbology/parse-mana")
)

// SymbologyClient implements scryfall.SymbologyClient.
type SymbologyClient struct {
	core *Core
}

// NewSymbologyClient creates a new symbology client.
func NewSymbologyClient(core *Core) *SymbologyClient {
	return &SymbologyClient{core: core}
}

// List implements scryfall.SymbologyClient.List.
func (c *SymbologyClient) List(ctx context.Context) (*scryfall.CardSymbolList, error) {
	return symbolList.call(ctx, c.core, "", nil)
}

// ParseMana implements scryfall.SymbologyClient.ParseMana.
func (c *SymbologyClient) ParseMana(ctx context.Context, cost string) (*scryfall.ManaCost, error) {
	if cost == "" {
		return nil, fmt.Errorf("%w: mana cost is empty", scryfall.ErrInvalidArgument)
	}

	return parseMana.call(ctx, c.core, "cost="+url.QueryEscape(cost), nil)
}
