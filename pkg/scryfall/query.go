package scryfall

import (
	"net/url"
	"strconv"
)

// CardSort is the field search results are ordered by.
type CardSort string

// Supported sort orders.
const (
	CardSortName      CardSort = "name"
	CardSortSet       CardSort = "set"
	CardSortReleased  CardSort = "released"
	CardSortRarity    CardSort = "rarity"
	CardSortColor     CardSort = "color"
	CardSortUSD       CardSort = "usd"
	CardSortTix       CardSort = "tix"
	CardSortEUR       CardSort = "eur"
	CardSortCMC       CardSort = "cmc"
	CardSortPower     CardSort = "power"
	CardSortToughness CardSort = "toughness"
	CardSortEDHREC    CardSort = "edhrec"
	CardSortArtist    CardSort = "artist"
)

// UniqueMode controls how duplicate printings are collapsed.
type UniqueMode string

// Supported unique modes.
const (
	UniqueCards  UniqueMode = "cards"
	UniqueArt    UniqueMode = "art"
	UniquePrints UniqueMode = "prints"
)

// SortDirection is the direction of a sort.
type SortDirection string

// Supported sort directions.
const (
	SortDirectionAuto SortDirection = "auto"
	SortDirectionAsc  SortDirection = "asc"
	SortDirectionDesc SortDirection = "desc"
)

// SearchOptions holds the filter and sort options of a card search. Zero
// values are omitted from the query string.
type SearchOptions struct {
	Unique              UniqueMode
	Order               CardSort
	Dir                 SortDirection
	IncludeExtras       bool
	IncludeMultilingual bool
	IncludeVariations   bool
}

// NewSearchOptions returns empty search options.
func NewSearchOptions() *SearchOptions {
	return &SearchOptions{}
}

// WithSort sets the sort order.
func (o *SearchOptions) WithSort(order CardSort) *SearchOptions {
	o.Order = order

	return o
}

// WithDirection sets the sort direction.
func (o *SearchOptions) WithDirection(dir SortDirection) *SearchOptions {
	o.Dir = dir

	return o
}

// WithUnique sets the unique mode.
func (o *SearchOptions) WithUnique(unique UniqueMode) *SearchOptions {
	o.Unique = unique

	return o
}

// ToValues converts the options to url.Values.
func (o *SearchOptions) ToValues() url.Values {
	values := url.Values{}
	if o == nil {
		return values
	}

	if o.Unique != "" {
		values.Set("unique", string(o.Unique))
	}

	if o.Order != "" {
		values.Set("order", string(o.Order))
	}

	if o.Dir != "" {
		values.Set("dir", string(o.Dir))
	}

	if o.IncludeExtras {
		values.Set("include_extras", strconv.FormatBool(true))
	}

	if o.IncludeMultilingual {
		values.Set("include_multilingual", strconv.FormatBool(true))
	}

	if o.IncludeVariations {
		values.Set("include_variations", strconv.FormatBool(true))
	}

	return values
}

// BuildQueryString encodes the options with keys in sorted order, so equal
// options always produce the same string.
func (o *SearchOptions) BuildQueryString() string {
	return o.ToValues().Encode()
}
