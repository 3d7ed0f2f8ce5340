package pricecharting

import (
	"bytes"
	"errors"
	"fmt"

	"card_valuation/internal/cards"
	"card_valuation/internal/pricing"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"
)

// PriceTableID identifies the price table on a card's page.
const PriceTableID = "price_data"

// ParsePriceTable extracts the per-grade price quote from a retrieved card
// page. Pages without the price table yield the unavailable quote rather
// than an error. Individual cells that fail to normalize degrade to the
// error sentinel for that grade; the rest of the quote is unaffected.
func ParsePriceTable(body []byte) (cards.PriceQuote, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return cards.PriceQuote{}, fmt.Errorf("failed to parse document: %w", err)
	}

	table := doc.Find("table#" + PriceTableID)
	if table.Length() == 0 {
		return cards.UnavailableQuote(), nil
	}

	prices := make(map[cards.Grade]float64, len(cards.AllGrades))
	for _, grade := range cards.AllGrades {
		cell := table.Find("td#" + grade.CellID())
		if cell.Length() == 0 {
			log.Warn().
				Str("grade", grade.String()).
				Str("cell_id", grade.CellID()).
				Msg("Price cell missing from table")
			prices[grade] = cards.ErrorSentinel
			continue
		}

		price, err := pricing.CleanPrice(cell.First().Text())
		if err != nil {
			if errors.Is(err, pricing.ErrMalformedPrice) {
				log.Error().
					Err(err).
					Str("grade", grade.String()).
					Msg("Unexpected price text")
			}
			prices[grade] = cards.ErrorSentinel
			continue
		}

		prices[grade] = price
	}

	return cards.PriceQuote{Prices: prices}, nil
}
