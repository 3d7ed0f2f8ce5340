package notifications

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"card_valuation/internal/config"
	"card_valuation/internal/report"
	"card_valuation/internal/retry"

	"github.com/rs/zerolog/log"
)

// Client pushes run summaries to an ntfy topic. A disabled client is a
// no-op, so callers never need to branch.
type Client struct {
	httpClient *http.Client
	baseURL    string
	topic      string
	enabled    bool
}

func NewClient(baseURL, topic string, enabled bool) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: baseURL,
		topic:   topic,
		enabled: enabled,
	}
}

// NotifyRunSummary sends one message describing the finished run.
func (c *Client) NotifyRunSummary(ctx context.Context, rep report.Report) {
	if !c.enabled {
		log.Debug().Msg("Notifications disabled, skipping")
		return
	}

	message := fmt.Sprintf(
		"Valuation run complete: %d rows (%d cards), %d without price data, %d errors. Total buy $%.2f, total sell $%.2f.",
		len(rep.Rows), rep.TotalCount, len(rep.NoPriceRows), len(rep.ErrorRows), rep.TotalBuy, rep.TotalSell)

	_, err := retry.WithRetry(ctx, config.Default.Notify, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, c.send(ctx, message)
	})
	if err != nil {
		log.Warn().Err(err).Msg("Failed to send run summary notification")
		return
	}

	log.Debug().Str("topic", c.topic).Msg("Run summary notification sent")
}

func (c *Client) send(ctx context.Context, message string) error {
	url := fmt.Sprintf("%s/%s", c.baseURL, c.topic)

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBufferString(message))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "text/plain")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("notification request failed with status %d", resp.StatusCode)
	}

	return nil
}
