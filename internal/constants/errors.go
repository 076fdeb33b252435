package constants

import "errors"

// CLI configuration errors.
var (
	ErrInvalidOutput      = errors.New("output must be one of table, json, yaml")
	ErrCacheBackendNeeded = errors.New("cache backend settings missing")
)

// Argument errors.
var (
	ErrCardIDsRequired  = errors.New("at least one card ID is required")
	ErrSetNumberArgs    = errors.New("expected a set code and a collector number")
	ErrQueryRequired    = errors.New("search query is required")
	ErrManaCostRequired = errors.New("mana cost is required")
)
