package pricecharting

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"card_valuation/internal/cards"
	"card_valuation/internal/retry"
)

func testClient(serverURL string) *Client {
	return &Client{
		baseURL: serverURL + "/",
		client:  &http.Client{Timeout: 5 * time.Second},
		retryConfig: retry.Config{
			MaxRetries: 1,
			BaseDelay:  10 * time.Millisecond,
			MaxDelay:   50 * time.Millisecond,
			Timeout:    2 * time.Second,
		},
	}
}

func TestGetQuote(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/pokemon-base-set/charizard-4" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(samplePage))
	}))
	defer server.Close()

	client := testClient(server.URL)
	quote, err := client.GetQuote(context.Background(), "pokemon-base-set", "charizard-4")
	if err != nil {
		t.Fatalf("GetQuote failed: %v", err)
	}
	if quote.Unavailable() {
		t.Fatal("quote unexpectedly unavailable")
	}
	if got := quote.Prices[cards.Ungraded]; got != 212.50 {
		t.Errorf("ungraded price = %v, want 212.50", got)
	}
}

func TestGetQuoteCachesPages(t *testing.T) {
	var hits atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte(samplePage))
	}))
	defer server.Close()

	client := testClient(server.URL)
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		if _, err := client.GetQuote(ctx, "pokemon-base-set", "charizard-4"); err != nil {
			t.Fatalf("GetQuote failed: %v", err)
		}
	}

	if hits.Load() != 1 {
		t.Errorf("server hit %d times, want 1 (cached)", hits.Load())
	}
	if client.GetRequestCount() != 1 {
		t.Errorf("request count = %d, want 1", client.GetRequestCount())
	}
}

func TestGetQuoteTransportFault(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer server.Close()

	client := testClient(server.URL)
	if _, err := client.GetQuote(context.Background(), "pokemon-base-set", "charizard-4"); err == nil {
		t.Error("expected error for transport fault")
	}
	// One initial attempt plus one retry.
	if client.GetRequestCount() != 2 {
		t.Errorf("request count = %d, want 2", client.GetRequestCount())
	}
}
