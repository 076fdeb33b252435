package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750
)

// HTTP timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second
)

// Client identification.
const (
	// DefaultUserAgent is sent when no User-Agent is configured.
	DefaultUserAgent = "scryfall-go/1.0"
)

// Retry limits, used only when a caller opts into retries.
const (
	// DefaultRetryMax is the default maximum number of retries.
	DefaultRetryMax = 3

	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// Rate limiting.
const (
	// DefaultRateLimitBurst is the number of requests allowed back to back.
	DefaultRateLimitBurst = 1
)

// Cache defaults.
const (
	// DefaultCacheDirName is the directory under the user's home holding CLI state.
	DefaultCacheDirName = ".scryfall"

	// DefaultBoltFileName is the name of the CLI's on-disk cache file.
	DefaultBoltFileName = "cache.db"
)

// Output formatting.
const (
	// FormatJSON selects JSON output.
	FormatJSON = "json"

	// FormatYAML selects YAML output.
	FormatYAML = "yaml"

	// FormatTable selects table output.
	FormatTable = "table"

	// JSONIndentSize is the indent used for JSON and YAML output.
	JSONIndentSize = 2

	// StringTruncationLength bounds long cells in table output.
	StringTruncationLength = 80

	// NotAvailable is printed for empty table cells.
	NotAvailable = "N/A"
)

// CLI limits.
const (
	// DefaultMaxPages bounds --all pagination in the CLI.
	DefaultMaxPages = 10
)
