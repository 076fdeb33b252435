package client

import (
	"context"

	"github.com/fivetwenty-io/scryfall/pkg/scryfall"
)

var rulingsByCardID = get[scryfall.RulingList]("/cards/%s/rulings")

// RulingsClient implements scryfall.RulingsClient.
type RulingsClient struct {
	core *Core
}

// NewRulingsClient creates a new rulings client.
func NewRulingsClient(core *Core) *RulingsClient {
	return &RulingsClient{core: core}
}

// ListByCardID implements scryfall.RulingsClient.ListByCardID.
func (c *RulingsClient) ListByCardID(ctx context.Context, cardID string) (*scryfall.RulingList, error) {
	return rulingsByCardID.call(ctx, c.core, "", nil, cardID)
}
