package scryfall

import (
	"strings"
)

// ObjectTypeError is the discriminator value carried by error envelopes.
const ObjectTypeError = "error"

// Discriminator values of the list and catalog envelopes.
const (
	ObjectTypeList    = "list"
	ObjectTypeCatalog = "catalog"
)

// CatalogItem is implemented by every decoded payload shape.
type CatalogItem interface {
	GetObjectType() string
}

// Object carries the discriminator shared by every envelope.
type Object struct {
	ObjectType string `json:"object_type" yaml:"object_type"`
}

// GetObjectType implements CatalogItem.
func (o Object) GetObjectType() string {
	return o.ObjectType
}

// IsError reports whether the discriminator names the error kind.
func (o Object) IsError() bool {
	return strings.EqualFold(o.ObjectType, ObjectTypeError)
}

// ErrorEnvelope is the payload the service returns when it rejects a request.
type ErrorEnvelope struct {
	Object `yaml:",inline"`

	Details  string   `json:"details"            yaml:"details"`
	Status   int      `json:"status"             yaml:"status"`
	Code     string   `json:"code,omitempty"     yaml:"code,omitempty"`
	Type     string   `json:"type,omitempty"     yaml:"type,omitempty"`
	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// ResultPage represents one page of a list-returning endpoint.
type ResultPage[T any] struct {
	Object `yaml:",inline"`

	Data       []T      `json:"data"                  yaml:"data"`
	HasMore    bool     `json:"has_more"              yaml:"has_more"`
	NextPage   string   `json:"next_page,omitempty"   yaml:"next_page,omitempty"`
	TotalCards int      `json:"total_cards,omitempty" yaml:"total_cards,omitempty"`
	Warnings   []string `json:"warnings,omitempty"    yaml:"warnings,omitempty"`
}

// Catalog is a flat list of strings such as card names or artist names.
type Catalog struct {
	Object `yaml:",inline"`

	URI         string   `json:"uri,omitempty" yaml:"uri,omitempty"`
	TotalValues int      `json:"total_values"  yaml:"total_values"`
	Data        []string `json:"data"          yaml:"data"`
}

// CardList represents a page of Card results.
type CardList = ResultPage[Card]

// SetList represents a page of Set results.
type SetList = ResultPage[Set]

// RulingList represents a page of Ruling results.
type RulingList = ResultPage[Ruling]

// CardSymbolList represents a page of CardSymbol results.
type CardSymbolList = ResultPage[CardSymbol]

// BulkDataList represents a page of BulkData results.
type BulkDataList = ResultPage[BulkData]
