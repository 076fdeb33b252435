package client

import (
	"context"

	"github.com/fivetwenty-io/scryfall/pkg/scryfall"
)

var (
	bulkDataList   = get[scryfall.BulkDataList]("/bulk-data")
	bulkDataByType = get[scryfall.BulkData]("/bulk-data/%s")
)

// BulkDataClient implements scryfall.BulkDataClient.
type BulkDataClient struct {
	core *Core
}

// NewBulkDataClient creates a new bulk data client.
func NewBulkDataClient(core *Core) *BulkDataClient {
	return &BulkDataClient{core: core}
}

// List implements scryfall.BulkDataClient.List.
func (c *BulkDataClient) List(ctx context.Context) (*scryfall.BulkDataList, error) {
	return bulkDataList.call(ctx, c.core, "", nil)
}

// GetByType implements scryfall.BulkDataClient.GetByType.
func (c *BulkDataClient) GetByType(ctx context.Context, bulkType string) (*scryfall.BulkData, error) {
	return bulkDataByType.call(ctx, c.core, "", nil, bulkType)
}
