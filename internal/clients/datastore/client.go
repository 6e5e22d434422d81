// Package datastore provides a client for the pre-generated JSON data files
// published by the Richelieu data pipeline.
package datastore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/pcastera/richelieu/internal/common"
	"github.com/pcastera/richelieu/internal/models"
)

const (
	DefaultTimeout   = 30 * time.Second
	DefaultRateLimit = 10 // requests per second
)

// Client fetches static JSON resources relative to a base URL.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *common.Logger
	limiter    *rate.Limiter
}

// ClientOption configures the client
type ClientOption func(*Client)

// WithLogger sets the logger
func WithLogger(logger *common.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRateLimit sets the rate limit
func WithRateLimit(requestsPerSecond int) ClientOption {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond)
	}
}

// WithTimeout sets the HTTP timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a new data store client for the given base URL.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		limiter: rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
		logger:  common.NewSilentLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// APIError represents a non-OK response from the data store.
type APIError struct {
	StatusCode int
	Message    string
	Path       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("data store error: %s (status: %d, path: %s)", e.Message, e.StatusCode, e.Path)
}

// IsNotFound reports whether err is a 404 from the data store. Optional
// resources (fundamentals, news, history) legitimately 404 for some tickers.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// FilenameForTicker derives the per-ticker data filename: "." and "-" are
// replaced by "_", e.g. "MC.PA" → "MC_PA".
func FilenameForTicker(ticker string) string {
	r := strings.NewReplacer(".", "_", "-", "_")
	return r.Replace(ticker)
}

// get performs a rate-limited GET of a JSON resource.
func (c *Client) get(ctx context.Context, path string, result interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	reqURL := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debug().Str("url", reqURL).Msg("Data store request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(body)),
			Path:       path,
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}

	return nil
}

// GetDirectory retrieves companies.json.
func (c *Client) GetDirectory(ctx context.Context) (*models.Directory, error) {
	var dir models.Directory
	if err := c.get(ctx, "/companies.json", &dir); err != nil {
		return nil, err
	}
	if len(dir.Companies) == 0 {
		return nil, fmt.Errorf("companies.json contains no companies")
	}
	return &dir, nil
}

// GetPrices retrieves prices.json.
func (c *Client) GetPrices(ctx context.Context) (map[string]models.PricePoint, error) {
	var prices map[string]models.PricePoint
	if err := c.get(ctx, "/prices.json", &prices); err != nil {
		return nil, err
	}
	return prices, nil
}

// GetFundamentals retrieves fundamentals for one ticker.
func (c *Client) GetFundamentals(ctx context.Context, ticker string) (*models.Fundamentals, error) {
	var f models.Fundamentals
	path := fmt.Sprintf("/fundamentals/%s.json", FilenameForTicker(ticker))
	if err := c.get(ctx, path, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// GetNews retrieves the news feed for one ticker.
func (c *Client) GetNews(ctx context.Context, ticker string) ([]models.NewsItem, error) {
	var items []models.NewsItem
	path := fmt.Sprintf("/news/%s.json", FilenameForTicker(ticker))
	if err := c.get(ctx, path, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetHistory retrieves daily OHLCV history for one ticker.
func (c *Client) GetHistory(ctx context.Context, ticker string) ([]models.HistoryBar, error) {
	var bars []models.HistoryBar
	path := fmt.Sprintf("/history/%s.json", FilenameForTicker(ticker))
	if err := c.get(ctx, path, &bars); err != nil {
		return nil, err
	}
	return bars, nil
}

// GetIndices retrieves indices.json.
func (c *Client) GetIndices(ctx context.Context) (map[string]models.IndexSeries, error) {
	var indices map[string]models.IndexSeries
	if err := c.get(ctx, "/indices.json", &indices); err != nil {
		return nil, err
	}
	return indices, nil
}

// GetLastUpdated retrieves the pipeline completion stamp.
func (c *Client) GetLastUpdated(ctx context.Context) (*models.LastUpdated, error) {
	var lu models.LastUpdated
	if err := c.get(ctx, "/last_updated.json", &lu); err != nil {
		return nil, err
	}
	return &lu, nil
}
