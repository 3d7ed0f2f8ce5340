package fetch

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"

	"card_valuation/internal/cards"

	"github.com/rs/zerolog/log"
)

// Func retrieves and parses the price quote for one card. Implementations
// must be safe for concurrent use.
type Func func(ctx context.Context, req cards.ItemRequest) (cards.PriceQuote, error)

// Result pairs one request with whatever its fetch produced. Exactly one
// Result exists per input request; a failed fetch carries Err and leaves
// Quote zero.
type Result struct {
	Request cards.ItemRequest
	Quote   cards.PriceQuote
	Err     error
}

// Pool runs one fetch per request across a bounded number of workers.
type Pool struct {
	workers int
}

// NewPool creates a pool bounded to the given worker count. Zero or
// negative means twice the available cores.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = 2 * runtime.NumCPU()
	}
	return &Pool{workers: workers}
}

// Run dispatches every request and blocks until all fetches have completed,
// then returns the full result set. Completion order is not input order;
// callers needing stable output must reorder. One card's failure never
// cancels or degrades another card's fetch.
func (p *Pool) Run(ctx context.Context, requests []cards.ItemRequest, fetchOne Func) []Result {
	total := len(requests)
	log.Debug().
		Int("requests", total).
		Int("workers", p.workers).
		Msg("Starting fetch pool")

	results := make(chan Result, total)
	sem := make(chan struct{}, p.workers)
	var processed atomic.Int64
	var wg sync.WaitGroup

	for _, req := range requests {
		wg.Add(1)
		go func(req cards.ItemRequest) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			quote, err := fetchOne(ctx, req)
			if err != nil {
				log.Warn().
					Err(err).
					Int("row_id", req.RowID).
					Str("set_id", req.SetID).
					Str("card_id", req.CardID).
					Msg("Fetch failed")
			}
			results <- Result{Request: req, Quote: quote, Err: err}

			log.Info().Msgf("%d/%d processed", processed.Add(1), total)
		}(req)
	}

	wg.Wait()
	close(results)

	collected := make([]Result, 0, total)
	for result := range results {
		collected = append(collected, result)
	}

	log.Debug().
		Int("results", len(collected)).
		Msg("Fetch pool complete")

	return collected
}
