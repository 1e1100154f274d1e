// Package naver scrapes Naver Finance for KRX prices, the USD/KRW rate,
// the KOSPI index, and economy headlines.
package naver

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/shopspring/decimal"
	"golang.org/x/time/rate"

	"github.com/hyeonlee/tansu/internal/common"
	"github.com/hyeonlee/tansu/internal/interfaces"
	"github.com/hyeonlee/tansu/internal/models"
)

const (
	DefaultBaseURL     = "https://finance.naver.com"
	DefaultNewsBaseURL = "https://news.naver.com"
	DefaultTimeout     = 15 * time.Second
	DefaultRateLimit   = 2 // requests per second

	// Naver serves a degraded page to clients without a browser user agent.
	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/110.0.0.0 Safari/537.36"
)

// Client scrapes finance.naver.com pages.
type Client struct {
	baseURL     string
	newsBaseURL string
	httpClient  *http.Client
	logger      *common.Logger
	limiter     *rate.Limiter
}

// ClientOption configures the client
type ClientOption func(*Client)

// WithBaseURL sets the finance base URL
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithNewsBaseURL sets the news base URL
func WithNewsBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.newsBaseURL = baseURL
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

// NewClient creates a new Naver Finance client
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		baseURL:     DefaultBaseURL,
		newsBaseURL: DefaultNewsBaseURL,
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

// fetch performs a rate-limited GET and parses the response body as HTML.
func (c *Client) fetch(ctx context.Context, url string) (*goquery.Document, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	c.logger.Debug().Str("url", url).Msg("Naver request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("naver returned status %d for %s", resp.StatusCode, url)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return doc, nil
}

// GetQuote returns the current KRX price for a six-digit instrument code.
// KRX holdings carry no price history, so History is always nil — the
// indicator stays profit-only for the local market.
func (c *Client) GetQuote(ctx context.Context, symbol string, market models.Market) (*models.PriceQuote, error) {
	if market != models.MarketLocal {
		return &models.PriceQuote{}, fmt.Errorf("naver client only quotes local-market symbols, got %s", market)
	}

	doc, err := c.fetch(ctx, fmt.Sprintf("%s/item/main.naver?code=%s", c.baseURL, symbol))
	if err != nil {
		return &models.PriceQuote{}, err
	}

	text := doc.Find("p.no_today span.blind").First().Text()
	price, err := parseKoreanNumber(text)
	if err != nil {
		return &models.PriceQuote{}, fmt.Errorf("failed to parse price for %s: %w", symbol, err)
	}

	d := decimal.NewFromFloat(price)
	return &models.PriceQuote{Price: &d}, nil
}

// GetUSDKRW scrapes the USD/KRW rate from the market index page.
func (c *Client) GetUSDKRW(ctx context.Context) (float64, error) {
	doc, err := c.fetch(ctx, c.baseURL+"/marketindex/")
	if err != nil {
		return 0, err
	}

	text := doc.Find("ul#exchangeList span.value").First().Text()
	rate, err := parseKoreanNumber(text)
	if err != nil {
		return 0, fmt.Errorf("failed to parse exchange rate: %w", err)
	}
	return rate, nil
}

// GetKOSPI returns the current KOSPI index level.
func (c *Client) GetKOSPI(ctx context.Context) (float64, error) {
	doc, err := c.fetch(ctx, c.baseURL+"/sise/sise_index.naver?code=KOSPI")
	if err != nil {
		return 0, err
	}

	text := doc.Find("em#now_value").First().Text()
	value, err := parseKoreanNumber(text)
	if err != nil {
		return 0, fmt.Errorf("failed to parse KOSPI value: %w", err)
	}
	return value, nil
}

// TopHeadlines returns up to limit economy-section headlines. The section
// markup shifts between two known layouts, so both are probed.
func (c *Client) TopHeadlines(ctx context.Context, limit int) ([]string, error) {
	doc, err := c.fetch(ctx, c.newsBaseURL+"/section/101")
	if err != nil {
		return nil, err
	}

	section := doc.Find("div._SECTION_HEADLINE_LIST")
	if section.Length() == 0 {
		section = doc.Find("ul.sa_list_news")
	}

	var headlines []string
	section.Find("strong.sa_text_strong").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if text := strings.TrimSpace(s.Text()); text != "" {
			headlines = append(headlines, text)
		}
		return len(headlines) < limit
	})

	return headlines, nil
}

// parseKoreanNumber parses a display number like "61,360" or "1,432.50".
func parseKoreanNumber(s string) (float64, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return 0, fmt.Errorf("empty value")
	}
	return strconv.ParseFloat(s, 64)
}

// Ensure Client implements the provider interfaces
var (
	_ interfaces.PriceProvider  = (*Client)(nil)
	_ interfaces.RateProvider   = (*Client)(nil)
	_ interfaces.NewsProvider   = (*Client)(nil)
	_ interfaces.MarketOverview = (*Client)(nil)
)
