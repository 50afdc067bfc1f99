package webpurify

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const defaultTimeout = 30 * time.Second

// Doer executes an HTTP request. *http.Client satisfies it, as does any wrapper that adds
// tracing, proxies or test fixtures.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// option is a function that configures the client
type option func(*cfg)

// WithAPIKey sets the WebPurify API key used for every call.
func WithAPIKey(apiKey string) option {
	return func(c *cfg) {
		c.apiKey = apiKey
	}
}

// WithRegion selects the regional endpoint. Defaults to RegionUS.
func WithRegion(region Region) option {
	return func(c *cfg) {
		c.region = region
	}
}

// WithHTTPClient sets the transport used to execute requests. When set, WithTimeout has
// no effect and timeouts are up to the given client.
func WithHTTPClient(doer Doer) option {
	return func(c *cfg) {
		c.httpClient = doer
	}
}

// WithTimeout sets the timeout of the default HTTP client. If not set, the default
// timeout is 30 seconds.
func WithTimeout(timeout time.Duration) option {
	return func(c *cfg) {
		c.timeout = timeout
	}
}

// WithLogger sets the logger for per call debug records. Nothing is logged by default.
func WithLogger(logger *slog.Logger) option {
	return func(c *cfg) {
		c.logger = logger
	}
}

// WithMetrics registers request counters and latency histograms with reg.
func WithMetrics(reg prometheus.Registerer) option {
	return func(c *cfg) {
		c.registerer = reg
	}
}

// cfg holds configuration for the WebPurify client
type cfg struct {
	apiKey     string
	region     Region
	httpClient Doer
	timeout    time.Duration
	logger     *slog.Logger
	registerer prometheus.Registerer
}

// Client calls WebPurify over HTTP. It performs exactly one request per call and never
// retries; every error is returned to the caller. A Client is safe for concurrent use.
type Client struct {
	config  *cfg
	http    Doer
	logger  *slog.Logger
	metrics *metrics
}

// New creates a new WebPurify client
func New(options ...option) (*Client, error) {
	config := &cfg{
		region:  RegionUS,
		timeout: defaultTimeout,
	}

	for _, option := range options {
		option(config)
	}

	if config.apiKey == "" {
		return nil, ErrAPIKeyRequired
	}

	client := &Client{
		config: config,
		http:   config.httpClient,
		logger: config.logger,
	}
	if client.http == nil {
		client.http = &http.Client{Timeout: config.timeout}
	}
	if client.logger == nil {
		client.logger = slog.New(slog.DiscardHandler)
	}

	if config.registerer != nil {
		m, err := newMetrics(config.registerer)
		if err != nil {
			return nil, fmt.Errorf("failed to register metrics: %w", err)
		}
		client.metrics = m
	}

	return client, nil
}

// Region returns the region the client sends requests to.
func (c *Client) Region() Region {
	return c.config.region
}

// do sends one request and returns the status and body for the parsers. Non-2xx bodies
// are drained but not returned.
func (c *Client) do(ctx context.Context, method Method, text string) (int, []byte, error) {
	req, err := NewRequest(ctx, c.config.apiKey, c.config.region, method, text)
	if err != nil {
		return 0, nil, err
	}

	name := MethodName(method)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		c.metrics.observe(name, time.Since(start), err)
		return 0, nil, fmt.Errorf("failed to call webpurify: %w", err)
	}
	defer resp.Body.Close()

	status, body, err := readBody(resp)
	if err != nil {
		c.metrics.observe(name, time.Since(start), err)
		return 0, nil, err
	}
	if !isSuccess(status) {
		_, _ = io.Copy(io.Discard, resp.Body)
	}

	c.logger.DebugContext(ctx, "webpurify call finished",
		"method", name,
		"region", c.config.region.String(),
		"status", status,
		"duration", time.Since(start),
	)
	return status, body, nil
}

// Check returns true if WebPurify finds profanity, email addresses, links or phone numbers in text.
func (c *Client) Check(ctx context.Context, text string) (bool, error) {
	start := time.Now()
	status, body, err := c.do(ctx, Check{}, text)
	if err != nil {
		return false, err
	}

	found, err := ParseCheckResult(status, body)
	c.metrics.observe(MethodCheck, time.Since(start), err)
	return found, err
}

// Replace returns text with every match masked by replaceSymbol.
func (c *Client) Replace(ctx context.Context, text, replaceSymbol string) (string, error) {
	start := time.Now()
	status, body, err := c.do(ctx, Replace{ReplaceSymbol: replaceSymbol}, text)
	if err != nil {
		return "", err
	}

	replaced, err := ParseReplaceResult(status, body)
	c.metrics.observe(MethodReplace, time.Since(start), err)
	return replaced, err
}

// SmartScreen classifies text. Sentiment and topics are only included in the result when
// requested in opts.
func (c *Client) SmartScreen(ctx context.Context, text string, opts SmartScreenOptions) (*SmartScreenResult, error) {
	start := time.Now()
	status, body, err := c.do(ctx, SmartScreen(opts), text)
	if err != nil {
		return nil, err
	}

	result, err := ParseSmartScreenResult(status, body)
	c.metrics.observe(MethodSmartScreen, time.Since(start), err)
	return result, err
}
