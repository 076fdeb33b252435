package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/fivetwenty-io/scryfall/pkg/scryfall"
)

var (
	cardByID         = get[scryfall.Card]("/cards/%s")
	cardRandom       = getUncached[scryfall.Card]("/cards/random")
	cardPage         = get[scryfall.CardList]("/cards")
	cardNamed        = get[scryfall.Card]("/cards/named")
	cardBySetNumber  = get[scryfall.Card]("/cards/%s/%s")
	cardCollection   = post[scryfall.CardList]("/cards/collection")
	cardSearch       = get[scryfall.CardList]("/cards/search")
	cardAutocomplete = get[scryfall.Catalog]("/cards/autocomplete")
)

const randomCardID = "random"

// CardsClient implements scryfall.CardsClient. Cached results are shared
// between callers and must not be modified.
type CardsClient struct {
	core *Core
}

// NewCardsClient creates a new cards client.
func NewCardsClient(core *Core) *CardsClient {
	return &CardsClient{core: core}
}

// GetByID implements scryfall.CardsClient.GetByID. The id "random" names the
// random card endpoint and is served uncached like GetRandom.
func (c *CardsClient) GetByID(ctx context.Context, id string) (*scryfall.Card, error) {
	if strings.EqualFold(strings.TrimSpace(id), randomCardID) {
		return c.GetRandom(ctx)
	}

	return cardByID.call(ctx, c.core, "", nil, id)
}

// GetRandom implements scryfall.CardsClient.GetRandom. Random results are
// never cached.
func (c *CardsClient) GetRandom(ctx context.Context) (*scryfall.Card, error) {
	return cardRandom.call(ctx, c.core, "", nil)
}

// GetPage implements scryfall.CardsClient.GetPage.
func (c *CardsClient) GetPage(ctx context.Context, page int) (*scryfall.CardList, error) {
	return cardPage.call(ctx, c.core, "page="+strconv.Itoa(page), nil)
}

// GetNamed implements scryfall.CardsClient.GetNamed.
func (c *CardsClient) GetNamed(ctx context.Context, name string, fuzzy bool) (*scryfall.Card, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: card name is empty", scryfall.ErrInvalidArgument)
	}

	mode := "exact"
	if fuzzy {
		mode = "fuzzy"
	}

	return cardNamed.call(ctx, c.core, mode+"="+url.QueryEscape(name), nil)
}

// GetBySetNumber implements scryfall.CardsClient.GetBySetNumber.
func (c *CardsClient) GetBySetNumber(ctx context.Context, setCode, collectorNumber string) (*scryfall.Card, error) {
	return cardBySetNumber.call(ctx, c.core, "", nil, setCode, collectorNumber)
}

// Collection implements scryfall.CardsClient.Collection.
func (c *CardsClient) Collection(ctx context.Context, ids []string) (*scryfall.CardList, error) {
	return cardCollection.call(ctx, c.core, "", scryfall.NewCollectionRequest(ids))
}

// Search implements scryfall.CardsClient.Search. Pages below 1 are treated
// as page 1.
func (c *CardsClient) Search(ctx context.Context, query string, page int, options *scryfall.SearchOptions) (*scryfall.CardList, error) {
	if page < 1 {
		page = 1
	}

	rawQuery := "q=" + url.QueryEscape(query) + "&page=" + strconv.Itoa(page)
	if extra := options.BuildQueryString(); extra != "" {
		rawQuery += "&" + extra
	}

	return cardSearch.call(ctx, c.core, rawQuery, nil)
}

// Autocomplete implements scryfall.CardsClient.Autocomplete.
func (c *CardsClient) Autocomplete(ctx context.Context, query string) (*scryfall.Catalog, error) {
	return cardAutocomplete.call(ctx, c.core, "q="+url.QueryEscape(query), nil)
}

// NextPage implements scryfall.CardsClient.NextPage.
func (c *CardsClient) NextPage(ctx context.Context, current *scryfall.CardList) (*scryfall.CardList, error) {
	return fetchNextPage(ctx, c.core, current)
}
