package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	scryhttp "github.com/fivetwenty-io/scryfall/internal/http"
	"github.com/fivetwenty-io/scryfall/pkg/scryfall"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockLogger for testing.
type MockLogger struct {
	logs []map[string]interface{}
}

func (l *MockLogger) Debug(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "debug", "msg": msg, "fields": fields})
}

func (l *MockLogger) Info(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "info", "msg": msg, "fields": fields})
}

func (l *MockLogger) Warn(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "warn", "msg": msg, "fields": fields})
}

func (l *MockLogger) Error(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "error", "msg": msg, "fields": fields})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Do(t *testing.T) {
	t.Parallel()
	t.Run("successful GET", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/cards/123", request.URL.Path)
			assert.Equal(t, http.MethodGet, request.Method)
			assert.Equal(t, "application/json", request.Header.Get("Accept"))
			assert.Equal(t, "scryfall-go/1.0", request.Header.Get("User-Agent"))
			assert.Empty(t, request.Header.Get("Content-Type"))

			_, _ = writer.Write([]byte(`{"object_type":"card","id":"123"}`))
		}))
		defer server.Close()

		client := scryhttp.NewClient(server.URL)

		resp, err := client.Do(context.Background(), &scryhttp.Request{Method: http.MethodGet, Path: "/cards/123"})
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.JSONEq(t, `{"object_type":"card","id":"123"}`, string(resp.Body))
		assert.Equal(t, http.MethodGet, resp.RequestMethod)
		assert.Equal(t, server.URL+"/cards/123", resp.RequestURL.String())
	})

	t.Run("POST with JSON body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, http.MethodPost, request.Method)
			assert.Equal(t, "application/json", request.Header.Get("Content-Type"))

			body, err := io.ReadAll(request.Body)
			assert.NoError(t, err)
			assert.JSONEq(t, `{"identifiers":[{"id":"a"},{"id":"b"}]}`, string(body))

			_, _ = writer.Write([]byte(`{"object_type":"list","data":[]}`))
		}))
		defer server.Close()

		client := scryhttp.NewClient(server.URL)

		resp, err := client.Post(context.Background(), "/cards/collection", scryfall.NewCollectionRequest([]string{"a", "b"}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("query from path and values are merged", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/cards/search", request.URL.Path)
			assert.Equal(t, "bolt", request.URL.Query().Get("q"))
			assert.Equal(t, "2", request.URL.Query().Get("page"))

			_, _ = writer.Write([]byte(`{}`))
		}))
		defer server.Close()

		client := scryhttp.NewClient(server.URL + "/")

		_, err := client.Get(context.Background(), "cards/search?q=bolt", url.Values{"page": []string{"2"}})
		require.NoError(t, err)
	})

	t.Run("error statuses are returned, not raised", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusInternalServerError)
			_, _ = writer.Write([]byte(`{"object_type":"error","status":500,"details":"boom"}`))
		}))
		defer server.Close()

		client := scryhttp.NewClient(server.URL)

		resp, err := client.Get(context.Background(), "/cards/123", nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.Contains(t, string(resp.Body), "boom")
	})

	t.Run("custom headers and user agent", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "my-app/2.0", request.Header.Get("User-Agent"))
			assert.Equal(t, "yes", request.Header.Get("X-Test"))
			_, _ = writer.Write([]byte(`{}`))
		}))
		defer server.Close()

		client := scryhttp.NewClient(server.URL, scryhttp.WithUserAgent("my-app/2.0"))

		_, err := client.Do(context.Background(), &scryhttp.Request{
			Method:  http.MethodGet,
			Path:    "/sets",
			Headers: map[string]string{"X-Test": "yes"},
		})
		require.NoError(t, err)
	})
}

func TestClient_TransportError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {}))
	baseURL := server.URL
	server.Close()

	client := scryhttp.NewClient(baseURL)

	_, err := client.Get(context.Background(), "/cards/123", nil)
	require.Error(t, err)
	assert.True(t, scryfall.IsTransportError(err))

	var transportErr *scryfall.TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, http.MethodGet, transportErr.Method)
	assert.Equal(t, baseURL+"/cards/123", transportErr.URL)
}

func TestClient_ContextCanceled(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		_, _ = writer.Write([]byte(`{}`))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := scryhttp.NewClient(server.URL)

	_, err := client.Get(ctx, "/cards/123", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestClient_NoRetryByDefault(t *testing.T) {
	t.Parallel()

	var attempts atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		attempts.Add(1)
		writer.WriteHeader(http.StatusServiceUnavailable)
		_, _ = writer.Write([]byte(`{"object_type":"error","status":503,"details":"down"}`))
	}))
	defer server.Close()

	client := scryhttp.NewClient(server.URL)

	resp, err := client.Get(context.Background(), "/cards/random", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, int32(1), attempts.Load())
}

func TestClient_RetryConfig(t *testing.T) {
	t.Parallel()

	var attempts atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if attempts.Add(1) < 3 {
			writer.WriteHeader(http.StatusServiceUnavailable)

			return
		}

		_, _ = writer.Write([]byte(`{"object_type":"card","id":"123"}`))
	}))
	defer server.Close()

	logger := &MockLogger{}
	client := scryhttp.NewClient(server.URL,
		scryhttp.WithRetryConfig(3, time.Millisecond, 5*time.Millisecond),
		scryhttp.WithLogger(logger),
	)

	resp, err := client.Get(context.Background(), "/cards/123", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int32(3), attempts.Load())
}

func TestClient_DebugLogging(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		_, _ = writer.Write([]byte(`{"object_type":"card"}`))
	}))
	defer server.Close()

	logger := &MockLogger{}
	client := scryhttp.NewClient(server.URL, scryhttp.WithLogger(logger), scryhttp.WithDebug(true))

	_, err := client.Get(context.Background(), "/cards/123", nil)
	require.NoError(t, err)

	var messages []string
	for _, entry := range logger.logs {
		messages = append(messages, entry["msg"].(string))
	}

	assert.Contains(t, messages, "HTTP Request")
	assert.Contains(t, messages, "HTTP Response")
}

func TestClient_Interceptors(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "intercepted", request.Header.Get("X-Trace"))
		writer.WriteHeader(http.StatusTeapot)
		_, _ = writer.Write([]byte(`{}`))
	}))
	defer server.Close()

	var seenStatus int

	chain := scryfall.NewInterceptorChain()
	chain.AddRequestInterceptor(scryfall.HeaderInterceptor("X-Trace", "intercepted"))
	chain.AddResponseInterceptor(func(ctx context.Context, req *scryfall.Request, resp *scryfall.Response) error {
		seenStatus = resp.StatusCode

		return nil
	})

	client := scryhttp.NewClient(server.URL, scryhttp.WithInterceptors(chain))

	_, err := client.Get(context.Background(), "/cards/123", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusTeapot, seenStatus)
}

func TestClient_RequestInterceptorFailure(t *testing.T) {
	t.Parallel()

	var called atomic.Bool

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		called.Store(true)
	}))
	defer server.Close()

	blocked := errors.New("blocked")

	chain := scryfall.NewInterceptorChain()
	chain.AddRequestInterceptor(func(ctx context.Context, req *scryfall.Request) error {
		return blocked
	})

	client := scryhttp.NewClient(server.URL, scryhttp.WithInterceptors(chain))

	_, err := client.Get(context.Background(), "/cards/123", nil)
	require.ErrorIs(t, err, blocked)
	assert.True(t, scryfall.IsTransportError(err))
	assert.False(t, called.Load())
}

func TestClient_RateLimitWaitCanceled(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		hits.Add(1)
	}))
	defer server.Close()

	chain := scryfall.NewInterceptorChain()
	chain.AddRequestInterceptor(scryfall.RateLimitInterceptor(time.Hour, 1))

	client := scryhttp.NewClient(server.URL, scryhttp.WithInterceptors(chain))

	_, err := client.Get(context.Background(), "/cards/1", nil)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = client.Get(ctx, "/cards/2", nil)
	require.Error(t, err)
	assert.True(t, scryfall.IsTransportError(err))
	assert.Equal(t, int32(1), hits.Load())
}

func TestClient_ResponseInterceptorFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		_, _ = writer.Write([]byte(`{}`))
	}))
	defer server.Close()

	rejected := errors.New("rejected")

	chain := scryfall.NewInterceptorChain()
	chain.AddResponseInterceptor(func(ctx context.Context, req *scryfall.Request, resp *scryfall.Response) error {
		return rejected
	})

	client := scryhttp.NewClient(server.URL, scryhttp.WithInterceptors(chain))

	_, err := client.Get(context.Background(), "/cards/123", nil)
	require.ErrorIs(t, err, rejected)
	assert.True(t, scryfall.IsTransportError(err))
}

func TestClient_MarshalError(t *testing.T) {
	t.Parallel()

	client := scryhttp.NewClient("https://api.example.com")

	_, err := client.Post(context.Background(), "/cards/collection", map[string]interface{}{"bad": make(chan int)})
	require.Error(t, err)

	var typeErr *json.UnsupportedTypeError
	assert.ErrorAs(t, err, &typeErr)
	assert.True(t, scryfall.IsInvalidArgument(err))
	assert.False(t, scryfall.IsTransportError(err))
}
