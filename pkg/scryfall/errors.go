package scryfall

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

// Common static errors that can be wrapped with context.
var (
	ErrInvalidArgument       = errors.New("invalid argument")
	ErrMissingDiscriminator  = errors.New("response has no object_type discriminator")
	ErrConfigRequired        = errors.New("config is required")
	ErrBaseURLRequired       = errors.New("base URL is required")
	ErrInvalidBaseURL        = errors.New("base URL must be an absolute http or https URL")
	ErrInvalidCacheDuration  = errors.New("cache duration must be positive when caching is enabled")
	ErrCacheMiss             = errors.New("cache miss")
	ErrUnsupportedCacheType  = errors.New("unsupported cache type")
	ErrNATSConfigRequired    = errors.New("NATS configuration required for NATS cache")
	ErrRedisConfigRequired   = errors.New("redis configuration required for redis cache")
	ErrBoltConfigRequired    = errors.New("bolt configuration required for bolt cache")
	ErrKeyNotFoundInAnyCache = errors.New("key not found in any cache")
	ErrNoMorePages           = errors.New("no more pages")
	ErrForeignNextPage       = errors.New("next page URL is not under the configured base URL")
)

// ServiceError is returned when the service reports a failure through the
// error discriminator. It carries the full envelope and the HTTP context of
// the request that produced it.
type ServiceError struct {
	Details            string
	ResponseStatusCode int
	RequestURI         *url.URL
	RequestMethod      string
	Envelope           *ErrorEnvelope
}

// Error implements the error interface.
func (e *ServiceError) Error() string {
	uri := ""
	if e.RequestURI != nil {
		uri = e.RequestURI.String()
	}

	return fmt.Sprintf("scryfall: %s (status: %d, %s %s)", e.Details, e.ResponseStatusCode, e.RequestMethod, uri)
}

// Warnings returns the warnings attached to the error envelope, if any.
func (e *ServiceError) Warnings() []string {
	if e.Envelope == nil {
		return nil
	}

	return e.Envelope.Warnings
}

// TransportError wraps connection level failures: refused connections,
// timeouts, DNS errors and truncated bodies.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error on %s %s: %v", e.Method, e.URL, e.Err)
}

// Unwrap returns the underlying cause.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError is returned when a body parses neither as the expected shape
// nor as an error envelope.
type DecodeError struct {
	Method     string
	URL        string
	StatusCode int
	Target     string
	Err        error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding %s from %s %s (status: %d): %v", e.Target, e.Method, e.URL, e.StatusCode, e.Err)
}

// Unwrap returns the underlying cause.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IsServiceError checks if the error was reported by the service.
func IsServiceError(err error) bool {
	svcErr := &ServiceError{}

	return errors.As(err, &svcErr)
}

// IsTransportError checks if the error is a connection level failure.
func IsTransportError(err error) bool {
	transportErr := &TransportError{}

	return errors.As(err, &transportErr)
}

// IsDecodeError checks if the error is a decode failure.
func IsDecodeError(err error) bool {
	decodeErr := &DecodeError{}

	return errors.As(err, &decodeErr)
}

// IsInvalidArgument checks if the error was caused by malformed caller input.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

// IsNotFound checks if the service reported that the resource does not exist.
func IsNotFound(err error) bool {
	svcErr := &ServiceError{}
	if errors.As(err, &svcErr) {
		if svcErr.Envelope != nil && svcErr.Envelope.Status != 0 {
			return svcErr.Envelope.Status == http.StatusNotFound
		}

		return svcErr.ResponseStatusCode == http.StatusNotFound
	}

	return false
}
