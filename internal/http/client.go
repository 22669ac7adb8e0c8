// Package http provides the pooled, authenticated HTTP session shared by
// every operation of a Connector.
package http

import (
	"context"
	"crypto/tls"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/gridpoint-io/nios/internal/constants"
	"github.com/gridpoint-io/nios/pkg/wapi"
	"github.com/hashicorp/go-retryablehttp"
)

// Client is a persistent HTTP session bound to credentials and TLS policy.
// One Client is created per Connector and reused for every request; it is
// safe for concurrent use within the configured pool bounds.
type Client struct {
	base      *retryablehttp.Client
	username  string
	password  string
	logger    wapi.Logger
	logAsInfo bool
	timeout   time.Duration
	sslVerify bool
	userAgent string
}

// Response is the raw outcome of one request.
type Response struct {
	StatusCode int
	Body       []byte
}

type options struct {
	logger            wapi.Logger
	logAsInfo         bool
	timeout           time.Duration
	poolConnections   int
	poolMaxSize       int
	sslVerify         bool
	silentSSLWarnings bool
	userAgent         string
}

// Option configures the client.
type Option func(*options)

// WithLogger sets the logger used for request logging.
func WithLogger(logger wapi.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogCallsAsInfo logs each request at info severity instead of debug.
func WithLogCallsAsInfo(enabled bool) Option {
	return func(o *options) {
		o.logAsInfo = enabled
	}
}

// WithTimeout bounds every request issued by the client.
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) {
		o.timeout = timeout
	}
}

// WithPoolSize bounds the connection pool.
func WithPoolSize(connections, maxSize int) Option {
	return func(o *options) {
		o.poolConnections = connections
		o.poolMaxSize = maxSize
	}
}

// WithTLSVerify toggles TLS certificate verification.
func WithTLSVerify(verify bool) Option {
	return func(o *options) {
		o.sslVerify = verify
	}
}

// WithSilentSSLWarnings suppresses the warning logged at setup when TLS
// verification is disabled.
func WithSilentSSLWarnings(silent bool) Option {
	return func(o *options) {
		o.silentSSLWarnings = silent
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(o *options) {
		o.userAgent = userAgent
	}
}

// NewClient creates a pooled HTTP session with basic authentication. The
// transport performs no retries of its own; the only retry in the system
// is the connector's bounded cloud-proxy second GET.
func NewClient(username, password string, opts ...Option) *Client {
	resolved := options{
		logger:          wapi.NoopLogger(),
		timeout:         constants.DefaultHTTPTimeout,
		poolConnections: constants.DefaultPoolConnections,
		poolMaxSize:     constants.DefaultPoolMaxSize,
	}

	for _, opt := range opts {
		opt(&resolved)
	}

	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        resolved.poolConnections,
		MaxIdleConnsPerHost: resolved.poolMaxSize,
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: !resolved.sslVerify, // #nosec G402 -- Controlled by the ssl_verify option
		},
	}

	if !resolved.sslVerify && !resolved.silentSSLWarnings {
		resolved.logger.Warn("TLS certificate verification is disabled", map[string]interface{}{
			"ssl_verify": false,
		})
	}

	base := retryablehttp.NewClient()
	base.HTTPClient = &http.Client{
		Transport: transport,
		Timeout:   resolved.timeout,
	}
	base.RetryMax = 0
	base.Logger = nil

	return &Client{
		base:      base,
		username:  username,
		password:  password,
		logger:    resolved.logger,
		logAsInfo: resolved.logAsInfo,
		timeout:   resolved.timeout,
		sslVerify: resolved.sslVerify,
		userAgent: resolved.userAgent,
	}
}

// Do issues one request against an absolute URL and returns the raw
// response. Transport-level failures are remapped: timeouts become
// *wapi.TimeoutError and everything else *wapi.ConnectionError.
func (c *Client) Do(ctx context.Context, method, url string, body []byte) (*Response, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, &wapi.ConnectionError{Reason: err}
	}

	req.Header.Set("Content-Type", constants.ContentTypeJSON)

	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	req.SetBasicAuth(c.username, c.password)

	c.logRequest(method, url, len(body))

	resp, err := c.base.Do(req)
	if err != nil {
		return nil, remapTransportError(err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &wapi.ConnectionError{Reason: err}
	}

	return &Response{StatusCode: resp.StatusCode, Body: content}, nil
}

// Get issues a GET request.
func (c *Client) Get(ctx context.Context, url string) (*Response, error) {
	return c.Do(ctx, http.MethodGet, url, nil)
}

// Post issues a POST request with an optional JSON body.
func (c *Client) Post(ctx context.Context, url string, body []byte) (*Response, error) {
	return c.Do(ctx, http.MethodPost, url, body)
}

// Put issues a PUT request with an optional JSON body.
func (c *Client) Put(ctx context.Context, url string, body []byte) (*Response, error) {
	return c.Do(ctx, http.MethodPut, url, body)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, url string) (*Response, error) {
	return c.Do(ctx, http.MethodDelete, url, nil)
}

// logRequest emits a single log record per request at info or debug
// severity depending on configuration.
func (c *Client) logRequest(method, url string, bodyLen int) {
	fields := map[string]interface{}{
		"method":     method,
		"url":        url,
		"body_bytes": bodyLen,
		"timeout":    c.timeout.String(),
		"ssl_verify": c.sslVerify,
	}

	if c.logAsInfo {
		c.logger.Info("sending WAPI request", fields)
	} else {
		c.logger.Debug("sending WAPI request", fields)
	}
}

// remapTransportError translates transport failures into the typed errors
// of the wapi package.
func remapTransportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &wapi.TimeoutError{Err: err}
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &wapi.TimeoutError{Err: err}
	}

	return &wapi.ConnectionError{Reason: err}
}
