package scryfall_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/fivetwenty-io/scryfall/pkg/scryfall"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceError(t *testing.T) {
	t.Parallel()

	uri, err := url.Parse("https://api.example.com/cards/123")
	require.NoError(t, err)

	svcErr := &scryfall.ServiceError{
		Details:            "not found",
		ResponseStatusCode: http.StatusNotFound,
		RequestURI:         uri,
		RequestMethod:      http.MethodGet,
		Envelope: &scryfall.ErrorEnvelope{
			Object:   scryfall.Object{ObjectType: scryfall.ObjectTypeError},
			Details:  "not found",
			Status:   http.StatusNotFound,
			Warnings: []string{"w1"},
		},
	}

	assert.Equal(t, "scryfall: not found (status: 404, GET https://api.example.com/cards/123)", svcErr.Error())
	assert.Equal(t, []string{"w1"}, svcErr.Warnings())

	wrapped := fmt.Errorf("failed to get card: %w", svcErr)
	assert.True(t, scryfall.IsServiceError(wrapped))
	assert.True(t, scryfall.IsNotFound(wrapped))
	assert.False(t, scryfall.IsTransportError(wrapped))
	assert.False(t, scryfall.IsDecodeError(wrapped))

	bare := &scryfall.ServiceError{Details: "x", ResponseStatusCode: http.StatusNotFound}
	assert.Nil(t, bare.Warnings())
	assert.True(t, scryfall.IsNotFound(bare))
}

func TestIsNotFound_PrefersEnvelopeStatus(t *testing.T) {
	t.Parallel()

	err := &scryfall.ServiceError{
		ResponseStatusCode: http.StatusOK,
		Envelope:           &scryfall.ErrorEnvelope{Status: http.StatusNotFound},
	}
	assert.True(t, scryfall.IsNotFound(err))

	err.Envelope.Status = http.StatusBadRequest
	assert.False(t, scryfall.IsNotFound(err))

	assert.False(t, scryfall.IsNotFound(errors.New("plain")))
}

func TestTransportError(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	err := &scryfall.TransportError{Method: http.MethodGet, URL: "https://api.example.com/sets", Err: cause}

	assert.Equal(t, "transport error on GET https://api.example.com/sets: connection refused", err.Error())
	require.ErrorIs(t, err, cause)
	assert.True(t, scryfall.IsTransportError(fmt.Errorf("wrapped: %w", err)))
}

func TestDecodeError(t *testing.T) {
	t.Parallel()

	err := &scryfall.DecodeError{
		Method:     http.MethodGet,
		URL:        "https://api.example.com/cards/123",
		StatusCode: http.StatusOK,
		Target:     "scryfall.Card",
		Err:        scryfall.ErrMissingDiscriminator,
	}

	assert.Contains(t, err.Error(), "decoding scryfall.Card from GET https://api.example.com/cards/123 (status: 200)")
	require.ErrorIs(t, err, scryfall.ErrMissingDiscriminator)
	assert.True(t, scryfall.IsDecodeError(err))
}

func TestIsInvalidArgument(t *testing.T) {
	t.Parallel()

	assert.True(t, scryfall.IsInvalidArgument(fmt.Errorf("%w: empty", scryfall.ErrInvalidArgument)))
	assert.False(t, scryfall.IsInvalidArgument(scryfall.ErrCacheMiss))
}
