// Package http is the transport under the resource clients: one round trip
// per call, body read to completion, interceptors around the exchange.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fivetwenty-io/scryfall/internal/constants"
	"github.com/fivetwenty-io/scryfall/pkg/scryfall"
	"github.com/hashicorp/go-retryablehttp"
)

// Request describes one call relative to the client's base URL.
type Request struct {
	Method string
	// Path is relative to the base URL and may carry a query string.
	Path    string
	Query   url.Values
	Body    interface{}
	Headers map[string]string
}

// Response is a fully buffered HTTP response.
type Response struct {
	StatusCode    int
	Headers       http.Header
	Body          []byte
	RequestURL    *url.URL
	RequestMethod string
}

// Client performs HTTP requests against a base URL.
type Client struct {
	baseURL      string
	httpClient   *retryablehttp.Client
	userAgent    string
	logger       scryfall.Logger
	debug        bool
	interceptors *scryfall.InterceptorChain
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for debug output and retry notices.
func WithLogger(logger scryfall.Logger) Option {
	return func(c *Client) {
		c.logger = logger
		if logger != nil {
			c.httpClient.Logger = &leveledLogger{logger: logger}
		}
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient.HTTPClient = httpClient
		}
	}
}

// WithTimeout sets the per-request timeout of the underlying *http.Client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient.Timeout = timeout
	}
}

// WithRetryConfig enables retries of connection errors, 429 and 5xx
// responses. The client does not retry unless this option is given.
func WithRetryConfig(maxRetries int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = maxRetries
		c.httpClient.RetryWaitMin = waitMin
		c.httpClient.RetryWaitMax = waitMax
	}
}

// WithInterceptors installs an interceptor chain around every request.
func WithInterceptors(chain *scryfall.InterceptorChain) Option {
	return func(c *Client) {
		c.interceptors = chain
	}
}

// NewClient creates a new HTTP client.
func NewClient(baseURL string, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.Logger = nil
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout

	client := &Client{
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		httpClient:   retryClient,
		userAgent:    constants.DefaultUserAgent,
		interceptors: scryfall.NewInterceptorChain(),
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// BaseURL returns the normalized base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do sends the request and buffers the whole response body. Failures to
// reach the server, to read the body or to pass an interceptor are returned
// as *scryfall.TransportError. A body or URL that cannot be encoded wraps
// scryfall.ErrInvalidArgument. Non-2xx statuses are not errors at this layer.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	fullURL, err := c.resolve(req)
	if err != nil {
		return nil, err
	}

	var bodyBytes []byte

	if req.Body != nil {
		bodyBytes, err = json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("%w: marshaling request body: %w", scryfall.ErrInvalidArgument, err)
		}
	}

	intercepted := &scryfall.Request{
		Method:  req.Method,
		URL:     fullURL.String(),
		Headers: c.headers(req, bodyBytes != nil),
		Body:    bodyBytes,
	}

	err = c.interceptors.ExecuteRequestInterceptors(ctx, intercepted)
	if err != nil {
		return nil, &scryfall.TransportError{Method: req.Method, URL: fullURL.String(), Err: err}
	}

	var reqBody interface{}
	if intercepted.Body != nil {
		reqBody = bytes.NewReader(intercepted.Body)
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL.String(), reqBody)
	if err != nil {
		return nil, fmt.Errorf("%w: creating request: %w", scryfall.ErrInvalidArgument, err)
	}

	httpReq.Header = intercepted.Headers

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL.String(),
		})
	}

	start := time.Now()

	resp, err := c.roundTrip(httpReq, req.Method, fullURL)

	respInfo := &scryfall.Response{Duration: time.Since(start), Error: err}

	if resp != nil {
		respInfo.StatusCode = resp.StatusCode
		respInfo.Headers = resp.Headers
		respInfo.Body = resp.Body
	}

	interceptErr := c.interceptors.ExecuteResponseInterceptors(ctx, intercepted, respInfo)
	if err != nil {
		return nil, err
	}

	if interceptErr != nil {
		return nil, &scryfall.TransportError{Method: req.Method, URL: fullURL.String(), Err: interceptErr}
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"method":      req.Method,
			"url":         fullURL.String(),
			"status_code": resp.StatusCode,
			"bytes":       len(resp.Body),
		})
	}

	return resp, nil
}

func (c *Client) roundTrip(httpReq *retryablehttp.Request, method string, fullURL *url.URL) (*Response, error) {
	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &scryfall.TransportError{Method: method, URL: fullURL.String(), Err: err}
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &scryfall.TransportError{
			Method: method,
			URL:    fullURL.String(),
			Err:    fmt.Errorf("reading response body: %w", err),
		}
	}

	return &Response{
		StatusCode:    httpResp.StatusCode,
		Headers:       httpResp.Header,
		Body:          body,
		RequestURL:    fullURL,
		RequestMethod: method,
	}, nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodGet,
		Path:   path,
		Query:  query,
	})
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodPost,
		Path:   path,
		Body:   body,
	})
}

func (c *Client) resolve(req *Request) (*url.URL, error) {
	path := req.Path
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	fullURL, err := url.Parse(c.baseURL + path)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing request URL: %w", scryfall.ErrInvalidArgument, err)
	}

	if len(req.Query) > 0 {
		query := fullURL.Query()
		for key, values := range req.Query {
			for _, value := range values {
				query.Add(key, value)
			}
		}

		fullURL.RawQuery = query.Encode()
	}

	return fullURL, nil
}

func (c *Client) headers(req *Request, hasBody bool) http.Header {
	headers := make(http.Header)
	headers.Set("Accept", "application/json")
	headers.Set("User-Agent", c.userAgent)

	if hasBody {
		headers.Set("Content-Type", "application/json")
	}

	for key, value := range req.Headers {
		headers.Set(key, value)
	}

	return headers
}

// leveledLogger adapts scryfall.Logger to retryablehttp.LeveledLogger.
type leveledLogger struct {
	logger scryfall.Logger
}

func (l *leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, fields(keysAndValues))
}

func (l *leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Info(msg, fields(keysAndValues))
}

func (l *leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, fields(keysAndValues))
}

func (l *leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warn(msg, fields(keysAndValues))
}

func fields(keysAndValues []interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(keysAndValues)/2)

	for i := 0; i+1 < len(keysAndValues); i += 2 {
		out[fmt.Sprint(keysAndValues[i])] = keysAndValues[i+1]
	}

	return out
}
