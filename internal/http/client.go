package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/Panoptic-IT-Solutions/quickbooks-client/internal/constants"
	"github.com/Panoptic-IT-Solutions/quickbooks-client/pkg/quickbooks"
)

// TokenProvider supplies valid bearer credentials for outbound calls.
type TokenProvider interface {
	// Token returns credentials valid for at least the expiry buffer.
	Token(ctx context.Context) (*quickbooks.BearerToken, error)
	// ForceRefresh refreshes regardless of the locally computed expiry.
	ForceRefresh(ctx context.Context) (*quickbooks.BearerToken, error)
}

// Request describes one logical API call. Path is relative to the realm
// prefix (/v3/company/{realmID}). Body is JSON-encoded when set; RawBody is
// sent verbatim with ContentType.
type Request struct {
	Method      string
	Path        string
	Query       url.Values
	Body        interface{}
	RawBody     []byte
	ContentType string
	Headers     map[string]string
}

// Response is a completed API response.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client executes authorized API calls against one realm: it acquires rate
// capacity, attaches valid credentials, issues the call, and applies the 429
// and 401 retry ladders. Transport-level failures and 5xx responses are
// retried by the underlying retryablehttp client.
type Client struct {
	baseURL      string
	tokens       TokenProvider
	httpClient   *retryablehttp.Client
	limiter      *rateLimiter
	logger       quickbooks.Logger
	debug        bool
	userAgent    string
	minorVersion int

	rateRetryMax  int
	rateRetryBase time.Duration
	sleep         func(ctx context.Context, d time.Duration) error

	rateLimit       int
	rateLimitWindow time.Duration
}

// Option configures the client.
type Option func(*Client)

// WithLogger sets a logger for the HTTP layer.
func WithLogger(logger quickbooks.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent sets a custom User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithMinorVersion sets the API minor version sent with every request.
func WithMinorVersion(version int) Option {
	return func(c *Client) {
		c.minorVersion = version
	}
}

// WithRetryConfig tunes transport-level retries (connection errors, 5xx).
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax
		c.httpClient.RetryWaitMin = waitMin
		c.httpClient.RetryWaitMax = waitMax
	}
}

// WithHTTPTimeout bounds each physical HTTP attempt.
func WithHTTPTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient.Timeout = timeout
	}
}

// WithRateLimit overrides the sliding-window budget.
func WithRateLimit(limit int, window time.Duration) Option {
	return func(c *Client) {
		c.rateLimit = limit
		c.rateLimitWindow = window
	}
}

// WithRateRetry tunes the 429 ladder: maximum retries and the initial
// backoff used when the server supplies no Retry-After hint.
func WithRateRetry(retryMax int, baseDelay time.Duration) Option {
	return func(c *Client) {
		c.rateRetryMax = retryMax
		c.rateRetryBase = baseDelay
	}
}

// NewClient creates an API client for baseURL. tokens must not be nil.
func NewClient(baseURL string, tokens TokenProvider, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.Logger = nil
	retryClient.RetryMax = constants.DefaultTransportRetryMax
	retryClient.RetryWaitMin = constants.DefaultRetryWaitMin
	retryClient.RetryWaitMax = constants.DefaultRetryWaitMax
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := &Client{
		baseURL:         baseURL,
		tokens:          tokens,
		httpClient:      retryClient,
		logger:          quickbooks.NopLogger(),
		minorVersion:    constants.DefaultMinorVersion,
		rateRetryMax:    constants.RateRetryMax,
		rateRetryBase:   constants.RateRetryBaseDelay,
		sleep:           sleepContext,
		rateLimit:       constants.RateLimitCeiling,
		rateLimitWindow: constants.RateLimitWindow,
	}

	for _, opt := range opts {
		opt(client)
	}

	client.limiter = newRateLimiter(client.rateLimit, client.rateLimitWindow, client.logger)

	// 429 and 401 belong to the executor's own ladders; the transport layer
	// retries only connection errors and 5xx.
	retryClient.CheckRetry = func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		if resp != nil && (resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode == http.StatusUnauthorized) {
			return false, nil
		}

		//nolint:wrapcheck // policy result propagates unchanged
		return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
	}

	// One rate-window entry per physical HTTP attempt. The initial attempt's
	// slot is taken in doOnce, before token acquisition; this hook covers the
	// transport layer's own retries. A wait cancelled here cannot abort the
	// attempt directly, but the cancelled request context fails it at the
	// transport.
	retryClient.RequestLogHook = func(_ retryablehttp.Logger, req *http.Request, retry int) {
		if retry == 0 {
			return
		}

		_ = client.limiter.Wait(req.Context())
	}

	return client
}

// Do executes one logical API call, applying the retry ladders:
//
//   - 429: up to rateRetryMax retries, delayed by the server's Retry-After
//     hint when present, otherwise exponential backoff doubling from
//     rateRetryBase. Exhaustion surfaces a RateLimited error.
//   - 401: exactly one forced token refresh and reissue. A second 401
//     propagates as Unauthorized without another refresh.
//
// Any other non-2xx response is normalized into a *quickbooks.Error carrying
// the status and the decoded fault payload.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	rateRetries := 0
	authRetried := false

	for {
		resp, err := c.doOnce(ctx, req)
		if err != nil {
			return nil, err
		}

		switch {
		case resp.StatusCode == http.StatusTooManyRequests && rateRetries < c.rateRetryMax:
			delay := c.rateRetryDelay(resp, rateRetries)
			rateRetries++

			c.logger.Warn("rate limited by server, retrying", map[string]interface{}{
				"method":   req.Method,
				"path":     req.Path,
				"attempt":  rateRetries,
				"delay_ms": delay.Milliseconds(),
			})

			err = c.sleep(ctx, delay)
			if err != nil {
				return nil, quickbooks.NewError(quickbooks.ErrorKindNetwork, err.Error())
			}

			continue

		case resp.StatusCode == http.StatusUnauthorized && !authRetried:
			authRetried = true

			c.logger.Warn("unauthorized response, forcing token refresh", map[string]interface{}{
				"method": req.Method,
				"path":   req.Path,
			})

			_, err = c.tokens.ForceRefresh(ctx)
			if err != nil {
				return nil, err
			}

			continue
		}

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return resp, nil
		}

		return resp, quickbooks.NormalizeHTTPError(resp.StatusCode, resp.Body)
	}
}

// Get issues a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post issues a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// rateRetryDelay picks the wait before a 429 retry: the server's Retry-After
// hint (seconds) when present, else exponential backoff.
func (c *Client) rateRetryDelay(resp *Response, attempt int) time.Duration {
	header := resp.Headers.Get("Retry-After")
	if header != "" {
		seconds, err := strconv.Atoi(header)
		if err == nil && seconds >= 0 {
			return time.Duration(seconds) * time.Second
		}
	}

	return c.rateRetryBase << attempt
}

// doOnce performs one pass through rate limiting, token acquisition, and the
// HTTP transport, in that order: the token is fetched only once capacity is
// in hand. Transport retries inside httpClient.Do take their own slots via
// the request hook.
func (c *Client) doOnce(ctx context.Context, req *Request) (*Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, quickbooks.NewError(quickbooks.ErrorKindNetwork, fmt.Sprintf("waiting for rate capacity: %v", err))
	}

	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	fullURL, err := c.buildURL(req, token.RealmID)
	if err != nil {
		return nil, err
	}

	body, contentType, err := encodeBody(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, body)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	httpReq.Header.Set("Authorization", "Bearer "+token.AccessToken)
	httpReq.Header.Set("Accept", "application/json")

	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}

	if c.userAgent != "" {
		httpReq.Header.Set("User-Agent", c.userAgent)
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	// Level filtering belongs to the logger; debug mode only adds detail.
	fields := map[string]interface{}{
		"method": req.Method,
		"url":    fullURL,
	}
	if c.debug && contentType != "" {
		fields["content_type"] = contentType
	}

	c.logger.Debug("HTTP Request", fields)

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, quickbooks.NewError(quickbooks.ErrorKindNetwork, fmt.Sprintf("%s %s: %v", req.Method, req.Path, err))
	}

	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, quickbooks.NewError(quickbooks.ErrorKindNetwork, fmt.Sprintf("reading response body: %v", err))
	}

	respFields := map[string]interface{}{
		"method":      req.Method,
		"url":         fullURL,
		"status_code": httpResp.StatusCode,
	}
	if c.debug {
		respFields["body_bytes"] = len(respBody)
	}

	c.logger.Debug("HTTP Response", respFields)

	return &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
	}, nil
}

func (c *Client) buildURL(req *Request, realmID string) (string, error) {
	parsed, err := url.Parse(c.baseURL + constants.CompanyAPIPath + "/" + realmID + req.Path)
	if err != nil {
		return "", fmt.Errorf("building URL for %s: %w", req.Path, err)
	}

	query := url.Values{}
	for key, values := range req.Query {
		query[key] = values
	}

	if c.minorVersion > 0 {
		query.Set("minorversion", strconv.Itoa(c.minorVersion))
	}

	parsed.RawQuery = query.Encode()

	return parsed.String(), nil
}

func encodeBody(req *Request) (io.Reader, string, error) {
	if req.RawBody != nil {
		contentType := req.ContentType
		if contentType == "" {
			contentType = "application/text"
		}

		return bytes.NewReader(req.RawBody), contentType, nil
	}

	if req.Body == nil {
		return nil, "", nil
	}

	encoded, err := json.Marshal(req.Body)
	if err != nil {
		return nil, "", fmt.Errorf("encoding request body: %w", err)
	}

	return bytes.NewReader(encoded), "application/json", nil
}
