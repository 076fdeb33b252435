package client

import (
	"context"

	"github.com/fivetwenty-io/scryfall/pkg/scryfall"
)

var catalogByName = get[scryfall.Catalog]("/catalog/%s")

// CatalogsClient implements scryfall.CatalogsClient.
type CatalogsClient struct {
	core *Core
}

// NewCatalogsClient creates a new catalogs client.
func NewCatalogsClient(core *Core) *CatalogsClient {
	return &CatalogsClient{core: core}
}

// Get implements scryfall.CatalogsClient.Get.
func (c *CatalogsClient) Get(ctx context.Context, name string) (*scryfall.Catalog, error) {
	return catalogByName.call(ctx, c.core, "", nil, name)
}
