package client

import (
	"context"

	"github.com/fivetwenty-io/scryfall/pkg/scryfall"
)

var (
	setList   = get[scryfall.SetList]("/sets")
	setByCode = get[scryfall.Set]("/sets/%s")
)

// SetsClient implements scryfall.SetsClient.
type SetsClient struct {
	core *Core
}

// NewSetsClient creates a new sets client.
func NewSetsClient(core *Core) *SetsClient {
	return &SetsClient{core: core}
}

// List implements scryfall.SetsClient.List.
func (c *SetsClient) List(ctx context.Context) (*scryfall.SetList, error) {
	return setList.call(ctx, c.core, "", nil)
}

// GetByCode implements scryfall.SetsClient.GetByCode.
func (c *SetsClient) GetByCode(ctx context.Context, code string) (*scryfall.Set, error) {
	return setByCode.call(ctx, c.core, "", nil, code)
}
