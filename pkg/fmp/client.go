// Package fmp is a thin client for the FinancialModelingPrep REST API. It is
// a pure I/O boundary: one GET per call, the full body read and decoded into
// a generic record set, and every failure wrapped as a RetrievalError.
package fmp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

const (
	defaultBaseURL     = "https://financialmodelingprep.com"
	defaultHTTPTimeout = 15 * time.Second
)

// Client wraps access to the FMP endpoints.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *log.Logger
}

// Option configures a new Client.
type Option func(*Client)

// WithHTTPClient injects a custom http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithBaseURL overrides the default API base URL.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		if url != "" {
			c.baseURL = url
		}
	}
}

// WithAPIKey sets the API key appended to every request.
func WithAPIKey(key string) Option {
	return func(c *Client) {
		c.apiKey = key
	}
}

// WithLogger injects a custom logger (defaults to log.Default()).
func WithLogger(l *log.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewClient constructs an FMP API client.
func NewClient(opts ...Option) *Client {
	client := &Client{
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: defaultHTTPTimeout},
		logger:     log.Default(),
	}
	for _, opt := range opts {
		opt(client)
	}
	if client.httpClient == nil {
		client.httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	if client.logger == nil {
		client.logger = log.Default()
	}
	return client
}

// APIKey returns the configured key. Entry points validate it before any
// network call is made.
func (c *Client) APIKey() string {
	return c.apiKey
}

// Records fetches one resource for one ticker and decodes the response into
// a record set. A top-level JSON object decodes as a single-record set.
func (c *Client) Records(ctx context.Context, req Request) ([]*Record, error) {
	body, err := c.get(ctx, req)
	if err != nil {
		return nil, err
	}

	var records []*Record
	if err := json.Unmarshal(body, &records); err == nil {
		return records, nil
	}
	single := &Record{}
	if err := json.Unmarshal(body, single); err != nil {
		return nil, retrievalError(req.Ticker, req.Resource, fmt.Errorf("decode response: %w", err))
	}
	return []*Record{single}, nil
}

func (c *Client) get(ctx context.Context, req Request) ([]byte, error) {
	url := req.url(c.baseURL, c.apiKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, retrievalError(req.Ticker, req.Resource, fmt.Errorf("build request: %w", err))
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return nil, retrievalError(req.Ticker, req.Resource, ctx.Err())
		}
		return nil, retrievalError(req.Ticker, req.Resource, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, retrievalError(req.Ticker, req.Resource, fmt.Errorf("read response: %w", err))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Printf("fmp: %s %s: http status %d", req.Resource, req.Ticker, resp.StatusCode)
		return nil, retrievalError(req.Ticker, req.Resource,
			fmt.Errorf("http status %d: %s", resp.StatusCode, string(body)))
	}
	return body, nil
}
