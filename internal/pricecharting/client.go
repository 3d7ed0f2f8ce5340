package pricecharting

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"card_valuation/internal/cards"
	"card_valuation/internal/config"
	"card_valuation/internal/retry"
)

const BaseURL = "https://www.pricecharting.com/game/"

// Client fetches per-card price pages. Fetched quotes are cached so
// duplicate rows in one run cost a single page retrieval.
type Client struct {
	baseURL      string
	client       *http.Client
	retryConfig  retry.Config
	quoteCache   sync.Map
	requestCount int64
	requestMutex sync.Mutex
}

type cachedQuote struct {
	quote     cards.PriceQuote
	timestamp time.Time
}

func NewClient() *Client {
	return &Client{
		baseURL: BaseURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		retryConfig: config.Default.PageFetch,
	}
}

// IncrementRequestCount safely increments the page request counter
func (c *Client) IncrementRequestCount() {
	c.requestMutex.Lock()
	c.requestCount++
	c.requestMutex.Unlock()
}

// GetRequestCount returns the number of page requests made so far
func (c *Client) GetRequestCount() int64 {
	c.requestMutex.Lock()
	defer c.requestMutex.Unlock()
	return c.requestCount
}

// PageURL builds the price page URL for one card.
func PageURL(setID, cardID string) string {
	return BaseURL + setID + "/" + cardID
}

func (c *Client) pageURL(setID, cardID string) string {
	return c.baseURL + setID + "/" + cardID
}

// GetQuote retrieves and parses the price table for one card. A missing
// table on a successfully retrieved page is not an error: it yields the
// unavailable quote. A transport fault, after retries, is.
func (c *Client) GetQuote(ctx context.Context, setID, cardID string) (cards.PriceQuote, error) {
	cacheKey := setID + "/" + cardID
	if cached, ok := c.quoteCache.Load(cacheKey); ok {
		entry := cached.(cachedQuote)
		// Cache valid for 1 hour
		if time.Since(entry.timestamp) < time.Hour {
			return entry.quote, nil
		}
	}

	body, err := retry.WithRetry(ctx, c.retryConfig, func(ctx context.Context) ([]byte, error) {
		return c.fetchPage(ctx, c.pageURL(setID, cardID))
	})
	if err != nil {
		return cards.PriceQuote{}, fmt.Errorf("failed to fetch price page for %s: %w", cacheKey, err)
	}

	quote, err := ParsePriceTable(body)
	if err != nil {
		return cards.PriceQuote{}, fmt.Errorf("failed to parse price page for %s: %w", cacheKey, err)
	}

	c.quoteCache.Store(cacheKey, cachedQuote{
		quote:     quote,
		timestamp: time.Now(),
	})

	return quote, nil
}

func (c *Client) fetchPage(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	c.IncrementRequestCount()

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("page request failed with status %d: %s", resp.StatusCode, string(body[:min(200, len(body))]))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return body, nil
}
