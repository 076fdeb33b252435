package scryfallclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fivetwenty-io/scryfall/pkg/scryfall"
	"github.com/fivetwenty-io/scryfall/pkg/scryfallclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockLogger for testing.
type MockLogger struct {
	mu   sync.Mutex
	logs []map[string]interface{}
}

func (l *MockLogger) add(level, msg string, fields map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.logs = append(l.logs, map[string]interface{}{"level": level, "msg": msg, "fields": fields})
}

func (l *MockLogger) Debug(msg string, fields map[string]interface{}) { l.add("debug", msg, fields) }
func (l *MockLogger) Info(msg string, fields map[string]interface{})  { l.add("info", msg, fields) }
func (l *MockLogger) Warn(msg string, fields map[string]interface{})  { l.add("warn", msg, fields) }
func (l *MockLogger) Error(msg string, fields map[string]interface{}) { l.add("error", msg, fields) }

func (l *MockLogger) has(msg string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, entry := range l.logs {
		if entry["msg"] == msg {
			return true
		}
	}

	return false
}

func cardServer(t *testing.T) (*httptest.Server, *atomic.Int32) {
	t.Helper()

	var hits atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		hits.Add(1)
		assert.Equal(t, "scryfall-test/0.1", request.Header.Get("User-Agent"))
		_, _ = writer.Write([]byte(`{"object_type":"card","id":"123","name":"Bolt"}`))
	}))
	t.Cleanup(server.Close)

	return server, &hits
}

func TestNew_RequiresConfig(t *testing.T) {
	t.Parallel()

	_, err := scryfallclient.New(context.Background(), nil)
	require.ErrorIs(t, err, scryfall.ErrConfigRequired)
}

func TestNew_WithOptions(t *testing.T) {
	t.Parallel()

	server, hits := cardServer(t)
	logger := &MockLogger{}

	config := scryfall.DefaultConfig()
	config.BaseURL = server.URL

	client, err := scryfallclient.New(context.Background(), config,
		scryfallclient.WithUserAgent("scryfall-test/0.1"),
		scryfallclient.WithLogger(logger),
		scryfallclient.WithDebug(true),
		scryfallclient.WithTimeout(5*time.Second),
		scryfallclient.WithRateLimit(time.Millisecond, 1),
		scryfallclient.WithRetry(1, time.Millisecond, time.Millisecond),
		scryfallclient.WithRequestInterceptor(scryfall.HeaderInterceptor("X-Test", "1")),
		scryfallclient.WithCacheConfig(&scryfall.CacheConfig{Type: scryfall.CacheTypeMemory}),
	)
	require.NoError(t, err)

	defer func() { _ = client.Close() }()

	for range 2 {
		card, err := client.Cards().GetByID(context.Background(), "123")
		require.NoError(t, err)
		assert.Equal(t, "Bolt", card.Name)
	}

	assert.Equal(t, int32(1), hits.Load())
	assert.True(t, logger.has("HTTP Request"))
	assert.True(t, logger.has("API Response"))
	assert.True(t, logger.has("cache hit"))
}

func TestNew_WithSharedCache(t *testing.T) {
	t.Parallel()

	server, hits := cardServer(t)
	shared := scryfall.NewMemoryCache(100, scryfall.ExpirationPolicy{Duration: time.Minute})

	defer func() { _ = shared.Close() }()

	config := scryfall.DefaultConfig()
	config.BaseURL = server.URL

	for range 2 {
		client, err := scryfallclient.New(context.Background(), config,
			scryfallclient.WithUserAgent("scryfall-test/0.1"),
			scryfallclient.WithCache(shared),
		)
		require.NoError(t, err)

		_, err = client.Cards().GetByID(context.Background(), "123")
		require.NoError(t, err)
		require.NoError(t, client.Close())
	}

	assert.Equal(t, int32(1), hits.Load())
}

func TestNew_InjectedCacheUsesConfigDuration(t *testing.T) {
	t.Parallel()

	server, hits := cardServer(t)
	shared := scryfall.NewMemoryCache(100, scryfall.ExpirationPolicy{Duration: time.Hour})

	defer func() { _ = shared.Close() }()

	config := scryfall.DefaultConfig()
	config.BaseURL = server.URL
	config.CacheDuration = 20 * time.Millisecond

	client, err := scryfallclient.New(context.Background(), config,
		scryfallclient.WithUserAgent("scryfall-test/0.1"),
		scryfallclient.WithCache(shared),
	)
	require.NoError(t, err)

	defer func() { _ = client.Close() }()

	_, err = client.Cards().GetByID(context.Background(), "1")
	require.NoError(t, err)

	time.Sleep(60 * time.Millisecond)

	_, err = client.Cards().GetByID(context.Background(), "1")
	require.NoError(t, err)

	assert.Equal(t, int32(2), hits.Load())
}

func TestNew_BoltCachePersistsAcrossClients(t *testing.T) {
	t.Parallel()

	server, hits := cardServer(t)
	path := filepath.Join(t.TempDir(), "cache.db")

	config := scryfall.DefaultConfig()
	config.BaseURL = server.URL

	for range 2 {
		client, err := scryfallclient.New(context.Background(), config,
			scryfallclient.WithUserAgent("scryfall-test/0.1"),
			scryfallclient.WithCacheConfig(&scryfall.CacheConfig{
				Type: scryfall.CacheTypeBolt,
				Bolt: &scryfall.BoltCacheConfig{Path: path},
			}),
		)
		require.NoError(t, err)

		card, err := client.Cards().GetByID(context.Background(), "123")
		require.NoError(t, err)
		assert.Equal(t, "123", card.ID)
		require.NoError(t, client.Close())
	}

	assert.Equal(t, int32(1), hits.Load())
}

func TestNewWithBaseURL(t *testing.T) {
	t.Parallel()

	client, err := scryfallclient.NewWithBaseURL(context.Background(), "https://api.example.com/")
	require.NoError(t, err)
	require.NoError(t, client.Close())

	_, err = scryfallclient.NewWithBaseURL(context.Background(), "not a url")
	require.ErrorIs(t, err, scryfall.ErrInvalidBaseURL)
}
