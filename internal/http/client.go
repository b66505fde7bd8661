// Package http wraps the transport with base address resolution, bearer
// authentication, query encoding, and error mapping.
package http

import (
	"bytes"
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/michaelgwelch/metasys-go/internal/auth"
	"github.com/michaelgwelch/metasys-go/pkg/metasys"
)

const defaultUserAgent = "metasys-go"

// Client is the HTTP layer shared by every resource client.
type Client struct {
	baseURL    string
	tokens     auth.TokenManager
	httpClient *nethttp.Client
	userAgent  string
	debug      bool
	logger     metasys.Logger
}

// Option configures the Client.
type Option func(*clientOptions)

type clientOptions struct {
	logger       metasys.Logger
	debug        bool
	userAgent    string
	retryMax     int
	retryWaitMin time.Duration
	retryWaitMax time.Duration
	httpClient   *nethttp.Client
	rootCAs      *x509.CertPool
	timeout      time.Duration
}

// WithLogger sets the logger used for debug logging.
func WithLogger(logger metasys.Logger) Option {
	return func(o *clientOptions) { o.logger = logger }
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(o *clientOptions) { o.debug = debug }
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) { o.userAgent = userAgent }
}

// WithRetryConfig enables retries of transient failures. Retries are off
// unless this option is given.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(o *clientOptions) {
		o.retryMax = retryMax
		o.retryWaitMin = waitMin
		o.retryWaitMax = waitMax
	}
}

// WithHTTPClient injects the transport, replacing the built-in one.
func WithHTTPClient(httpClient *nethttp.Client) Option {
	return func(o *clientOptions) { o.httpClient = httpClient }
}

// WithRootCAs adds trusted roots for the built-in transport.
func WithRootCAs(pool *x509.CertPool) Option {
	return func(o *clientOptions) { o.rootCAs = pool }
}

// WithTimeout bounds each request made by the built-in transport.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) { o.timeout = timeout }
}

// NewClient creates a new HTTP client. An empty baseURL is allowed: requests
// fail with metasys.ErrNotAuthenticated until SetBaseURL is called by the
// login flow.
func NewClient(baseURL string, tokens auth.TokenManager, opts ...Option) *Client {
	options := &clientOptions{}
	for _, opt := range opts {
		opt(options)
	}

	httpClient := options.httpClient
	if httpClient == nil {
		retryClient := retryablehttp.NewClient()
		retryClient.Logger = nil
		// No retries unless asked for: transient failures belong to the
		// consumer, at the point of iteration.
		retryClient.RetryMax = options.retryMax
		// Hand the final response back instead of discarding it, so a 5xx
		// after the last attempt still maps to an APIError.
		retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

		if options.retryWaitMin > 0 {
			retryClient.RetryWaitMin = options.retryWaitMin
		}

		if options.retryWaitMax > 0 {
			retryClient.RetryWaitMax = options.retryWaitMax
		}

		if options.rootCAs != nil {
			transport := nethttp.DefaultTransport.(*nethttp.Transport).Clone()
			transport.TLSClientConfig = &tls.Config{
				RootCAs:    options.rootCAs,
				MinVersion: tls.VersionTLS12,
			}
			retryClient.HTTPClient.Transport = transport
		}

		httpClient = retryClient.StandardClient()
		httpClient.Timeout = options.timeout
	}

	userAgent := options.userAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		tokens:     tokens,
		httpClient: httpClient,
		userAgent:  userAgent,
		debug:      options.debug,
		logger:     options.logger,
	}
}

// SetBaseURL binds the client to an API base. Called exactly once, by the
// login flow; the base is read-only afterwards.
func (c *Client) SetBaseURL(baseURL string) {
	c.baseURL = strings.TrimSuffix(baseURL, "/")
}

// BaseURL returns the bound API base, empty before login.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// HTTPClient returns the underlying transport, shared with the login flow.
func (c *Client) HTTPClient() *nethttp.Client {
	return c.httpClient
}

// Request represents an API request.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    interface{}
	Headers map[string]string
}

// Response represents an API response.
type Response struct {
	StatusCode int
	Headers    nethttp.Header
	Body       []byte
}

// Do executes a request against the bound API base. A response with status
// >= 400 is returned together with a *metasys.APIError carrying the parsed
// server message.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	if c.baseURL == "" {
		return nil, metasys.ErrNotAuthenticated
	}

	requestURL := c.resolveURL(req.Path, req.Query)

	var bodyReader io.Reader

	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}

		bodyReader = bytes.NewReader(data)
	}

	httpReq, err := nethttp.NewRequestWithContext(ctx, req.Method, requestURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	if c.tokens != nil {
		token, err := c.tokens.GetToken(ctx)
		if err != nil {
			return nil, err
		}

		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    requestURL,
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}

	defer func() { _ = httpResp.Body.Close() }()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status": resp.StatusCode,
			"size":   len(body),
		})
	}

	if resp.StatusCode >= nethttp.StatusBadRequest {
		return resp, parseAPIError(resp)
	}

	return resp, nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodGet, Path: path, Query: query})
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodPost, Path: path, Body: body})
}

// resolveURL joins a path with the base. Absolute URLs pass through, and
// paths carrying their own query string (server-supplied next links) are
// joined without mangling it.
func (c *Client) resolveURL(path string, query url.Values) string {
	requestURL := path
	if !strings.HasPrefix(path, "http://") && !strings.HasPrefix(path, "https://") {
		if !strings.HasPrefix(path, "/") {
			path = "/" + path
		}

		requestURL = c.baseURL + path
	}

	if len(query) > 0 {
		separator := "?"
		if strings.Contains(requestURL, "?") {
			separator = "&"
		}

		requestURL += separator + query.Encode()
	}

	return requestURL
}

// parseAPIError maps an error response to *metasys.APIError. Bodies are
// expected to be JSON {"message": ...} but anything else degrades to the
// raw body text.
func parseAPIError(resp *Response) error {
	apiErr := &metasys.APIError{StatusCode: resp.StatusCode}

	var parsed struct {
		Message string `json:"message"`
	}

	if err := json.Unmarshal(resp.Body, &parsed); err == nil && parsed.Message != "" {
		apiErr.Message = parsed.Message
	} else if len(resp.Body) > 0 {
		apiErr.Message = strings.TrimSpace(string(resp.Body))
	}

	return apiErr
}
