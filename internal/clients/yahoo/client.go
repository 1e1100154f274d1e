// Package yahoo provides a client for the Yahoo Finance chart API,
// used for US prices and daily close history.
package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/time/rate"

	"github.com/hyeonlee/tansu/internal/common"
	"github.com/hyeonlee/tansu/internal/interfaces"
	"github.com/hyeonlee/tansu/internal/models"
)

const (
	DefaultBaseURL   = "https://query1.finance.yahoo.com"
	DefaultTimeout   = 15 * time.Second
	DefaultRateLimit = 2 // requests per second
	DefaultRange     = "3mo"
)

// Client implements the foreign-market PriceProvider via the v8 chart API.
type Client struct {
	baseURL    string
	histRange  string
	httpClient *http.Client
	logger     *common.Logger
	limiter    *rate.Limiter
}

// ClientOption configures the client
type ClientOption func(*Client)

// WithBaseURL sets the base URL
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithRange sets the history range (e.g. "3mo")
func WithRange(r string) ClientOption {
	return func(c *Client) {
		c.histRange = r
	}
}

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

// NewClient creates a new Yahoo chart client
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		baseURL:   DefaultBaseURL,
		histRange: DefaultRange,
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

// chartResponse mirrors the subset of the v8 chart payload we consume.
// Close values may be null for halted days, hence *float64.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				RegularMarketPrice float64 `json:"regularMarketPrice"`
			} `json:"meta"`
			Indicators struct {
				Quote []struct {
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// GetQuote returns the current price and chronological daily close history
// for a US ticker.
func (c *Client) GetQuote(ctx context.Context, symbol string, market models.Market) (*models.PriceQuote, error) {
	if market != models.MarketForeign {
		return &models.PriceQuote{}, fmt.Errorf("yahoo client only quotes foreign-market symbols, got %s", market)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return &models.PriceQuote{}, fmt.Errorf("rate limit wait: %w", err)
	}

	params := url.Values{}
	params.Set("range", c.histRange)
	params.Set("interval", "1d")
	reqURL := fmt.Sprintf("%s/v8/finance/chart/%s?%s", c.baseURL, url.PathEscape(symbol), params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return &models.PriceQuote{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "tansu/"+common.Version)

	c.logger.Debug().Str("symbol", symbol).Msg("Yahoo chart request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &models.PriceQuote{}, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &models.PriceQuote{}, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return &models.PriceQuote{}, fmt.Errorf("yahoo returned status %d for %s", resp.StatusCode, symbol)
	}

	var parsed chartResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return &models.PriceQuote{}, fmt.Errorf("failed to parse chart response: %w", err)
	}
	if parsed.Chart.Error != nil {
		return &models.PriceQuote{}, fmt.Errorf("yahoo error for %s: %s", symbol, parsed.Chart.Error.Description)
	}
	if len(parsed.Chart.Result) == 0 {
		return &models.PriceQuote{}, fmt.Errorf("no chart result for %s", symbol)
	}

	result := parsed.Chart.Result[0]
	price := decimal.NewFromFloat(result.Meta.RegularMarketPrice)

	var history []float64
	if len(result.Indicators.Quote) > 0 {
		for _, c := range result.Indicators.Quote[0].Close {
			if c != nil {
				history = append(history, *c)
			}
		}
	}

	return &models.PriceQuote{Price: &price, History: history}, nil
}

// Ensure Client implements PriceProvider
var _ interfaces.PriceProvider = (*Client)(nil)
